package dto

import (
	"time"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/service"
)

// AnswerDetailResponse — разбор одного вопроса завершённого этапа
type AnswerDetailResponse struct {
	QuestionText  string `json:"question_text"`
	GivenAnswer   string `json:"given_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// ResultResponse представляет сохранённый результат этапа
type ResultResponse struct {
	ID          uint                   `json:"id"`
	Student     string                 `json:"student"`
	ClassName   string                 `json:"class_name"`
	Stage       int                    `json:"stage"`
	Correct     int                    `json:"correct"`
	Wrong       int                    `json:"wrong"`
	Total       int                    `json:"total"`
	Percentage  int                    `json:"percentage"`
	Feedback    string                 `json:"feedback"`
	Detail      []AnswerDetailResponse `json:"detail"`
	CompletedAt time.Time              `json:"completed_at"`
}

// NewResultResponse создает DTO результата с разбором и отзывом
func NewResultResponse(r *entity.Result, feedback string) *ResultResponse {
	detail := make([]AnswerDetailResponse, 0, len(r.Detail))
	for _, d := range r.Detail {
		detail = append(detail, AnswerDetailResponse{
			QuestionText:  d.QuestionText,
			GivenAnswer:   d.GivenAnswer,
			CorrectAnswer: d.CorrectAnswer,
			IsCorrect:     d.IsCorrect,
			Explanation:   d.Explanation,
		})
	}
	return &ResultResponse{
		ID:          r.ID,
		Student:     r.Student,
		ClassName:   r.ClassName,
		Stage:       r.Stage,
		Correct:     r.Correct,
		Wrong:       r.Wrong,
		Total:       r.Total,
		Percentage:  r.Percentage,
		Feedback:    feedback,
		Detail:      detail,
		CompletedAt: r.CompletedAt,
	}
}

// NewResultResponses создает список DTO результатов
func NewResultResponses(results []entity.Result, feedbackFor func(int) string) []*ResultResponse {
	responses := make([]*ResultResponse, 0, len(results))
	for i := range results {
		responses = append(responses, NewResultResponse(&results[i], feedbackFor(results[i].Percentage)))
	}
	return responses
}

// ClassStudentResponse — сводка по ученику в результатах класса
type ClassStudentResponse struct {
	Name    string `json:"name"`
	Stages  []int  `json:"stages"`
	Average int    `json:"average"`
}

// ClassGroupResponse — результаты одного класса
type ClassGroupResponse struct {
	ClassName string                 `json:"class_name"`
	Students  []ClassStudentResponse `json:"students"`
}

// NewClassGroupResponses создает DTO сгруппированных результатов
func NewClassGroupResponses(groups []service.ClassGroup) []ClassGroupResponse {
	responses := make([]ClassGroupResponse, 0, len(groups))
	for _, g := range groups {
		students := make([]ClassStudentResponse, 0, len(g.Students))
		for _, st := range g.Students {
			students = append(students, ClassStudentResponse{
				Name:    st.Name,
				Stages:  st.Stages,
				Average: st.Average,
			})
		}
		responses = append(responses, ClassGroupResponse{ClassName: g.ClassName, Students: students})
	}
	return responses
}
