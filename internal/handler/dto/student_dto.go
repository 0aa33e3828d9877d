package dto

import (
	"github.com/yourusername/checkmyxy-api/internal/service"
)

// StudentLoginResponse — ответ на вход ученика
type StudentLoginResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	ClassName string `json:"class_name"`
}

// StageStatusResponse — состояние одного этапа на панели ученика
type StageStatusResponse struct {
	Stage      int    `json:"stage"`
	State      string `json:"state"`
	Percentage *int   `json:"percentage,omitempty"`
}

// StudentDashboardResponse — панель ученика
type StudentDashboardResponse struct {
	Stages   []StageStatusResponse `json:"stages"`
	Average  *int                  `json:"average,omitempty"`
	Feedback string                `json:"feedback,omitempty"`
}

// NewStudentDashboardResponse создает DTO панели ученика
func NewStudentDashboardResponse(view *service.DashboardView) *StudentDashboardResponse {
	stages := make([]StageStatusResponse, 0, len(view.Statuses))
	for _, status := range view.Statuses {
		resp := StageStatusResponse{
			Stage: status.Stage,
			State: string(status.State),
		}
		if status.Result != nil {
			p := status.Result.Percentage
			resp.Percentage = &p
		}
		stages = append(stages, resp)
	}

	dashboard := &StudentDashboardResponse{Stages: stages}
	if view.HasAverage {
		avg := view.Average
		dashboard.Average = &avg
		dashboard.Feedback = view.Feedback
	}
	return dashboard
}

// NewActiveQuestionResponse создает DTO текущего вопроса попытки.
// Ключ и пояснение вопроса не копируются.
func NewActiveQuestionResponse(view *service.QuestionView) *ActiveQuestionResponse {
	return &ActiveQuestionResponse{
		Stage:   view.Stage,
		Index:   view.Index,
		Total:   view.Total,
		Type:    view.Question.Type,
		Text:    view.Question.Text,
		Options: view.Question.Options,
		Score:   view.Question.Score,
		Given:   view.Given,
		AtStart: view.AtStart,
		AtEnd:   view.AtEnd,
	}
}
