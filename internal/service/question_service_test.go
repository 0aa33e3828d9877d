package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

func TestEnsureSampleQuestions_SeedsEmptyBank(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("Count").Return(int64(0), nil)
	questionRepo.On("CreateBatch", mock.MatchedBy(func(questions []entity.Question) bool {
		if len(questions) != 15 {
			return false
		}
		for _, q := range questions {
			if q.ID == "" {
				return false
			}
		}
		return true
	})).Return(nil)
	svc := NewQuestionService(questionRepo)

	// Act
	err := svc.EnsureSampleQuestions()

	// Assert
	require.NoError(t, err)
	questionRepo.AssertExpectations(t)
}

func TestEnsureSampleQuestions_SkipsNonEmptyBank(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("Count").Return(int64(3), nil)
	svc := NewQuestionService(questionRepo)

	err := svc.EnsureSampleQuestions()

	require.NoError(t, err)
	questionRepo.AssertNotCalled(t, "CreateBatch", mock.Anything)
}

func TestAddQuestion_AssignsID(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("Create", mock.MatchedBy(func(q *entity.Question) bool {
		return q.ID != ""
	})).Return(nil)
	svc := NewQuestionService(questionRepo)

	question := &entity.Question{
		Stage:   1,
		Type:    entity.QuestionTypeShort,
		Text:    "Berapakah nilai x?",
		Answer:  "5",
		Score:   4,
		Explain: "x = 5",
	}

	require.NoError(t, svc.AddQuestion(question))
	assert.NotEmpty(t, question.ID)
	questionRepo.AssertExpectations(t)
}

func TestAddQuestion_RejectsInvalid(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	svc := NewQuestionService(questionRepo)

	tests := []struct {
		name     string
		question entity.Question
	}{
		{"этап вне диапазона", entity.Question{Stage: 4, Type: entity.QuestionTypeShort, Text: "q", Answer: "a", Score: 4}},
		{"пустой текст", entity.Question{Stage: 1, Type: entity.QuestionTypeShort, Answer: "a", Score: 4}},
		{"нулевой вес", entity.Question{Stage: 1, Type: entity.QuestionTypeShort, Text: "q", Answer: "a"}},
		{"mcq без вариантов", entity.Question{Stage: 1, Type: entity.QuestionTypeMCQ, Text: "q", Answer: "a", Score: 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.question
			err := svc.AddQuestion(&q)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
	questionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestResetToSample_ReplacesBank(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("ReplaceAll", mock.MatchedBy(func(questions []entity.Question) bool {
		return len(questions) == 15
	})).Return(nil)
	svc := NewQuestionService(questionRepo)

	require.NoError(t, svc.ResetToSample())
	questionRepo.AssertExpectations(t)
}

// Стартовый набор консистентен: по 5 вопросов на этап, все проходят валидацию
func TestSampleQuestions_AreValid(t *testing.T) {
	sample := SampleQuestions()

	require.Len(t, sample, 15)
	perStage := make(map[int]int)
	for i := range sample {
		q := sample[i]
		q.ID = "x"
		require.NoError(t, q.Validate(), "вопрос %q", q.Text)
		perStage[q.Stage]++
	}
	assert.Equal(t, map[int]int{1: 5, 2: 5, 3: 5}, perStage)
}
