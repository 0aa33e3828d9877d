package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/handler/dto"
	"github.com/yourusername/checkmyxy-api/internal/service"
	"github.com/yourusername/checkmyxy-api/internal/service/grading"
)

// TeacherHandler обрабатывает запросы панели учителя:
// банк вопросов, просмотр результатов, выгрузки и рассылка рекапа.
type TeacherHandler struct {
	questionService *service.QuestionService
	resultService   *service.ResultService
	emailService    service.EmailService
	teacherEmail    string
}

// NewTeacherHandler создает новый обработчик панели учителя
func NewTeacherHandler(
	questionService *service.QuestionService,
	resultService *service.ResultService,
	emailService service.EmailService,
	teacherEmail string,
) *TeacherHandler {
	return &TeacherHandler{
		questionService: questionService,
		resultService:   resultService,
		emailService:    emailService,
		teacherEmail:    teacherEmail,
	}
}

// AddQuestionRequest представляет запрос на добавление вопроса
type AddQuestionRequest struct {
	Stage   int      `json:"stage" binding:"required"`
	Type    string   `json:"type" binding:"required,oneof=mcq tf short"`
	Text    string   `json:"text" binding:"required"`
	Options []string `json:"options"`
	Answer  string   `json:"answer" binding:"required"`
	Score   int      `json:"score" binding:"required,min=1"`
	Explain string   `json:"explain"`
}

// Stats возвращает агрегаты для панели учителя
func (h *TeacherHandler) Stats(c *gin.Context) {
	stats, err := h.resultService.DashboardStats()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListQuestions возвращает весь банк вопросов с ключами и пояснениями
func (h *TeacherHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.List()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": dto.NewQuestionResponses(questions)})
}

// AddQuestion добавляет вопрос в банк
func (h *TeacherHandler) AddQuestion(c *gin.Context) {
	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question := &entity.Question{
		Stage:   req.Stage,
		Type:    req.Type,
		Text:    req.Text,
		Options: entity.StringArray(req.Options),
		Answer:  req.Answer,
		Score:   req.Score,
		Explain: req.Explain,
	}
	// Вопрос Benar/Salah всегда несёт канонические варианты
	if question.Type == entity.QuestionTypeTrueFalse && len(question.Options) == 0 {
		question.Options = entity.TrueFalseOptions()
	}

	if err := h.questionService.AddQuestion(question); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewQuestionResponse(question))
}

// DeleteQuestion удаляет вопрос по идентификатору
func (h *TeacherHandler) DeleteQuestion(c *gin.Context) {
	id := c.Param("id")
	if err := h.questionService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}

// ResetQuestions заменяет банк вопросов стартовым набором
func (h *TeacherHandler) ResetQuestions(c *gin.Context) {
	if err := h.questionService.ResetToSample(); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question bank reset to sample"})
}

// ExportQuestions выгружает банк вопросов файлом JSON
func (h *TeacherHandler) ExportQuestions(c *gin.Context) {
	questions, err := h.questionService.List()
	if err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("questions-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, dto.NewQuestionResponses(questions))
}

// ClassResults возвращает результаты, сгруппированные по классам и ученикам
func (h *TeacherHandler) ClassResults(c *gin.Context) {
	groups, err := h.resultService.ClassGroups()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"classes": dto.NewClassGroupResponses(groups)})
}

// StudentResults возвращает подробные результаты одного ученика
func (h *TeacherHandler) StudentResults(c *gin.Context) {
	identity, ok := entity.NewStudentIdentity(c.Query("name"), c.Query("class_name"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and class_name query parameters are required"})
		return
	}

	results, err := h.resultService.StudentDetail(identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": dto.NewResultResponses(results, grading.Feedback)})
}

// DeleteResult удаляет одну запись результата
func (h *TeacherHandler) DeleteResult(c *gin.Context) {
	id := c.MustGet("resultID").(uint)
	if err := h.resultService.DeleteResult(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Result deleted"})
}

// ExportResultsXLSX выгружает всю историю результатов книгой Excel
func (h *TeacherHandler) ExportResultsXLSX(c *gin.Context) {
	data, err := h.resultService.ExportXLSX()
	if err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("results-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// EmailRecap отправляет учителю письмо со сводкой результатов по классам
func (h *TeacherHandler) EmailRecap(c *gin.Context) {
	groups, err := h.resultService.ClassGroups()
	if err != nil {
		handleError(c, err)
		return
	}

	if err := h.emailService.SendResultsRecap(c.Request.Context(), h.teacherEmail, groups); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recap sent"})
}
