package dto

import (
	"time"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для панели учителя.
// Содержит ключ и пояснение, поэтому отдается только учителю.
type QuestionResponse struct {
	ID        string    `json:"id"`
	Stage     int       `json:"stage"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	Options   []string  `json:"options,omitempty"`
	Answer    string    `json:"answer"`
	Score     int       `json:"score"`
	Explain   string    `json:"explain,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveQuestionResponse представляет вопрос активной попытки для ученика.
// Ключ и пояснение намеренно отсутствуют: до завершения этапа ученик
// не должен их видеть.
type ActiveQuestionResponse struct {
	Stage   int      `json:"stage"`
	Index   int      `json:"index"`
	Total   int      `json:"total"`
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
	Score   int      `json:"score"`
	Given   string   `json:"given"`
	AtStart bool     `json:"at_start"`
	AtEnd   bool     `json:"at_end"`
}

// NewQuestionResponse создает DTO вопроса для учителя
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:        q.ID,
		Stage:     q.Stage,
		Type:      q.Type,
		Text:      q.Text,
		Options:   q.Options,
		Answer:    q.Answer,
		Score:     q.Score,
		Explain:   q.Explain,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// NewQuestionResponses создает список DTO вопросов
func NewQuestionResponses(questions []entity.Question) []*QuestionResponse {
	responses := make([]*QuestionResponse, 0, len(questions))
	for i := range questions {
		responses = append(responses, NewQuestionResponse(&questions[i]))
	}
	return responses
}
