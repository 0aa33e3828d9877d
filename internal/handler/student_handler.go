package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/checkmyxy-api/internal/handler/dto"
	"github.com/yourusername/checkmyxy-api/internal/middleware"
	"github.com/yourusername/checkmyxy-api/internal/service"
	"github.com/yourusername/checkmyxy-api/internal/service/grading"
)

// StudentHandler обрабатывает запросы учеников: вход, панель, прохождение этапов
type StudentHandler struct {
	studentService *service.StudentService
	attemptService *service.AttemptService
}

// NewStudentHandler создает новый обработчик учеников
func NewStudentHandler(
	studentService *service.StudentService,
	attemptService *service.AttemptService,
) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		attemptService: attemptService,
	}
}

// StudentLoginRequest представляет запрос на вход ученика
type StudentLoginRequest struct {
	Name      string `json:"name" binding:"required"`
	ClassName string `json:"class_name" binding:"required"`
}

// AnswerRequest представляет запись ответа на вопрос попытки
type AnswerRequest struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// Login выдает токен сессии по паре {имя, класс}
func (h *StudentHandler) Login(c *gin.Context) {
	var req StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, identity, err := h.studentService.Login(req.Name, req.ClassName)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudentLoginResponse{
		Token:     token,
		Name:      identity.Name,
		ClassName: identity.ClassName,
	})
}

// Logout завершает сессию ученика. Прогресс в базе сохраняется.
func (h *StudentHandler) Logout(c *gin.Context) {
	identity, ok := middleware.StudentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	h.attemptService.Drop(identity)
	if token := c.GetHeader("X-Session-Token"); token != "" {
		if err := h.studentService.Logout(token); err != nil {
			handleError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Dashboard возвращает состояния этапов и накопленный итог.
// Активная попытка при этом бросается.
func (h *StudentHandler) Dashboard(c *gin.Context) {
	identity, ok := middleware.StudentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.attemptService.Dashboard(identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStudentDashboardResponse(view))
}

// StartStage начинает попытку этапа либо возвращает сохранённый результат
// уже пройденного этапа
func (h *StudentHandler) StartStage(c *gin.Context) {
	identity, ok := middleware.StudentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	stage := c.MustGet(middleware.StageKey).(int)

	outcome, err := h.attemptService.StartStage(identity, stage)
	if err != nil {
		handleError(c, err)
		return
	}

	if outcome.Completed != nil {
		c.JSON(http.StatusOK, gin.H{
			"completed": true,
			"result":    dto.NewResultResponse(outcome.Completed, grading.Feedback(outcome.Completed.Percentage)),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"completed": false,
		"question":  dto.NewActiveQuestionResponse(outcome.View),
	})
}

// CurrentQuestion возвращает текущий вопрос активной попытки
func (h *StudentHandler) CurrentQuestion(c *gin.Context) {
	identity, ok := middleware.StudentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.attemptService.CurrentQuestion(identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActiveQuestionResponse(view))
}

// Answer записывает ответ в слот вопроса активной попытки
func (h *StudentHandler) Answer(c *gin.Context) {
	identity, ok := middleware.StudentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.attemptService.RecordAnswer(identity, req.Index, req.Value); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Answer recorded"})
}

// Next переходит к следующему вопросу попытки
func (h *StudentHandler) Next(c *gin.Context) {
	identity, ok := middleware.StudentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.attemptService.Next(identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActiveQuestionResponse(view))
}

// Back возвращается к предыдущему вопросу попытки
func (h *StudentHandler) Back(c *gin.Context) {
	identity, ok := middleware.StudentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.attemptService.Back(identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActiveQuestionResponse(view))
}

// Finish завершает попытку, оценивает ответы и возвращает результат с разбором
func (h *StudentHandler) Finish(c *gin.Context) {
	identity, ok := middleware.StudentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.attemptService.Finish(identity)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResultResponse(result, grading.Feedback(result.Percentage)))
}
