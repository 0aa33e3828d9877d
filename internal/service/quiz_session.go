package service

import (
	"fmt"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

// FlowState — именованное состояние потока ученика.
// Переходы выполняются только командами AttemptService, без внешних механизмов.
type FlowState string

const (
	FlowLogin     FlowState = "login"
	FlowDashboard FlowState = "dashboard"
	FlowQuiz      FlowState = "quiz"
	FlowResult    FlowState = "result"
)

// QuizSession — эфемерное состояние одной попытки: этап, упорядоченный список
// вопросов, текущая позиция и слоты ответов, выровненные по вопросам.
// Живёт только в памяти на время попытки; брошенная попытка просто исчезает.
type QuizSession struct {
	Stage     int
	questions []entity.Question
	index     int
	answers   []string
}

// NewQuizSession создает попытку для этапа. Пустой набор вопросов означает,
// что этап не настроен — попытка не создаётся.
func NewQuizSession(stage int, questions []entity.Question) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, apperrors.ErrNoQuestions
	}
	return &QuizSession{
		Stage:     stage,
		questions: questions,
		index:     0,
		answers:   make([]string, len(questions)),
	}, nil
}

// Len возвращает количество вопросов попытки
func (s *QuizSession) Len() int {
	return len(s.questions)
}

// Index возвращает текущую позицию
func (s *QuizSession) Index() int {
	return s.index
}

// Current возвращает текущий вопрос и ранее записанный ответ для предзаполнения
func (s *QuizSession) Current() (entity.Question, string) {
	return s.questions[s.index], s.answers[s.index]
}

// RecordAnswer безусловно перезаписывает слот ответа: ученик может
// возвращаться и исправлять ответы до завершения. Значение не проверяется
// против типа вопроса.
func (s *QuizSession) RecordAnswer(index int, value string) error {
	if index < 0 || index >= len(s.answers) {
		return fmt.Errorf("%w: answer index %d out of range [0, %d)", apperrors.ErrValidation, index, len(s.answers))
	}
	s.answers[index] = value
	return nil
}

// Next сдвигает позицию вперёд. На последнем вопросе — no-op, не ошибка:
// границу обозначает выключенная кнопка, а не отказ движка.
func (s *QuizSession) Next() {
	if s.index < len(s.questions)-1 {
		s.index++
	}
}

// Back сдвигает позицию назад. На первом вопросе — no-op.
func (s *QuizSession) Back() {
	if s.index > 0 {
		s.index--
	}
}

// AtStart сообщает, что позиция на первом вопросе
func (s *QuizSession) AtStart() bool {
	return s.index == 0
}

// AtEnd сообщает, что позиция на последнем вопросе
func (s *QuizSession) AtEnd() bool {
	return s.index == len(s.questions)-1
}

// Snapshot возвращает вопросы и копию ответов для оценивания
func (s *QuizSession) Snapshot() ([]entity.Question, []string) {
	answers := make([]string, len(s.answers))
	copy(answers, s.answers)
	return s.questions, answers
}
