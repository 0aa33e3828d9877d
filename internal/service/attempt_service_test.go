package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

func testIdentity() entity.StudentIdentity {
	return entity.StudentIdentity{Name: "Andi", ClassName: "8A"}
}

func stageQuestions(stage int) []entity.Question {
	return []entity.Question{
		{ID: "q1", Stage: stage, Type: entity.QuestionTypeTrueFalse, Text: "first", Options: entity.TrueFalseOptions(), Answer: "Benar", Score: 4},
		{ID: "q2", Stage: stage, Type: entity.QuestionTypeMCQ, Text: "second", Options: entity.StringArray{"A", "B"}, Answer: "A", Score: 4},
		{ID: "q3", Stage: stage, Type: entity.QuestionTypeShort, Text: "third", Answer: "22", Score: 4},
	}
}

func newAttemptServiceForTest(questionRepo *MockQuestionRepo, resultRepo *MockResultRepo) *AttemptService {
	resultService := NewResultService(resultRepo, questionRepo, nil)
	return NewAttemptService(questionRepo, resultRepo, resultService)
}

func TestStartStage_OutOfRange(t *testing.T) {
	svc := newAttemptServiceForTest(new(MockQuestionRepo), new(MockResultRepo))

	_, err := svc.StartStage(testIdentity(), 4)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestStartStage_LockedStage(t *testing.T) {
	// Arrange: истории нет, этап 2 закрыт
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	svc := newAttemptServiceForTest(new(MockQuestionRepo), resultRepo)

	// Act
	_, err := svc.StartStage(testIdentity(), 2)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrStageLocked)
}

func TestStartStage_CompletedStageReturnsStoredResult(t *testing.T) {
	stored := entity.Result{Stage: 1, Percentage: 80, Student: "Andi", ClassName: "8A"}
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{stored}, nil)
	questionRepo := new(MockQuestionRepo)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	outcome, err := svc.StartStage(testIdentity(), 1)

	require.NoError(t, err)
	require.NotNil(t, outcome.Completed)
	assert.Equal(t, 80, outcome.Completed.Percentage)
	assert.Nil(t, outcome.View)
	// Вопросы не загружались, попытка не создавалась
	questionRepo.AssertNotCalled(t, "GetByStage", mock.Anything)
	_, err = svc.CurrentQuestion(testIdentity())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveAttempt)
}

func TestStartStage_EmptyStage(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("GetByStage", 1).Return([]entity.Question{}, nil)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	_, err := svc.StartStage(testIdentity(), 1)

	assert.ErrorIs(t, err, apperrors.ErrNoQuestions)
	// Попытка не создана
	_, err = svc.CurrentQuestion(testIdentity())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveAttempt)
}

func TestStartStage_BeginsAttemptAtFirstQuestion(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("GetByStage", 1).Return(stageQuestions(1), nil)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	outcome, err := svc.StartStage(testIdentity(), 1)

	require.NoError(t, err)
	require.NotNil(t, outcome.View)
	assert.Equal(t, 0, outcome.View.Index)
	assert.Equal(t, 3, outcome.View.Total)
	assert.Equal(t, "first", outcome.View.Question.Text)
	assert.True(t, outcome.View.AtStart)
	assert.False(t, outcome.View.AtEnd)
}

func TestAttemptNavigation_ClampsAtBounds(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("GetByStage", 1).Return(stageQuestions(1), nil)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	_, err := svc.StartStage(testIdentity(), 1)
	require.NoError(t, err)

	// Назад с первого вопроса - no-op
	view, err := svc.Back(testIdentity())
	require.NoError(t, err)
	assert.Equal(t, 0, view.Index)

	// Вперёд до конца и за край
	for i := 0; i < 5; i++ {
		view, err = svc.Next(testIdentity())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, view.Index)
	assert.True(t, view.AtEnd)
}

func TestRecordAnswer_PrefillsOnRevisit(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("GetByStage", 1).Return(stageQuestions(1), nil)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	_, err := svc.StartStage(testIdentity(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.RecordAnswer(testIdentity(), 0, "Benar"))
	_, err = svc.Next(testIdentity())
	require.NoError(t, err)

	// Возврат к первому вопросу показывает записанный ответ
	view, err := svc.Back(testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "Benar", view.Given)

	// Перезапись ответа разрешена
	require.NoError(t, svc.RecordAnswer(testIdentity(), 0, "Salah"))
	view, err = svc.CurrentQuestion(testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "Salah", view.Given)

	// Индекс за границами - ошибка валидации
	assert.ErrorIs(t, svc.RecordAnswer(testIdentity(), 9, "x"), apperrors.ErrValidation)
}

func TestFinish_GradesAndPersists(t *testing.T) {
	// Arrange
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	resultRepo.On("Create", mock.MatchedBy(func(r *entity.Result) bool {
		return r.Student == "Andi" && r.ClassName == "8A" && r.Stage == 1 &&
			r.Correct == 2 && r.Wrong == 1 && r.Total == 3
	})).Return(nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("GetByStage", 1).Return(stageQuestions(1), nil)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	_, err := svc.StartStage(testIdentity(), 1)
	require.NoError(t, err)
	require.NoError(t, svc.RecordAnswer(testIdentity(), 0, "Benar"))
	require.NoError(t, svc.RecordAnswer(testIdentity(), 1, "B"))
	require.NoError(t, svc.RecordAnswer(testIdentity(), 2, "22"))

	// Act
	result, err := svc.Finish(testIdentity())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 67, result.Percentage)
	resultRepo.AssertExpectations(t)

	// Попытка уничтожена
	_, err = svc.CurrentQuestion(testIdentity())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveAttempt)
}

func TestFinish_WithoutActiveAttempt(t *testing.T) {
	svc := newAttemptServiceForTest(new(MockQuestionRepo), new(MockResultRepo))

	_, err := svc.Finish(testIdentity())

	assert.ErrorIs(t, err, apperrors.ErrNoActiveAttempt)
}

func TestFinish_DuplicateRaceReturnsStoredResult(t *testing.T) {
	stored := &entity.Result{Stage: 1, Percentage: 100, Student: "Andi", ClassName: "8A"}
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	resultRepo.On("Create", mock.Anything).Return(apperrors.ErrStageCompleted)
	resultRepo.On("GetByStudentAndStage", testIdentity(), 1).Return(stored, nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("GetByStage", 1).Return(stageQuestions(1), nil)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	_, err := svc.StartStage(testIdentity(), 1)
	require.NoError(t, err)

	result, err := svc.Finish(testIdentity())

	require.NoError(t, err)
	assert.Same(t, stored, result)
}

func TestDashboard_DropsActiveAttempt(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("GetByStage", 1).Return(stageQuestions(1), nil)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	_, err := svc.StartStage(testIdentity(), 1)
	require.NoError(t, err)
	require.NoError(t, svc.RecordAnswer(testIdentity(), 0, "Benar"))

	// Переход на панель бросает попытку, ответы не сохраняются
	view, err := svc.Dashboard(testIdentity())
	require.NoError(t, err)
	assert.Equal(t, StageUnlocked, view.Statuses[0].State)
	assert.False(t, view.HasAverage)

	_, err = svc.CurrentQuestion(testIdentity())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveAttempt)
}

func TestDashboard_AccumulatedAverage(t *testing.T) {
	history := []entity.Result{
		{Stage: 1, Percentage: 80},
		{Stage: 2, Percentage: 60},
	}
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return(history, nil)
	svc := newAttemptServiceForTest(new(MockQuestionRepo), resultRepo)

	view, err := svc.Dashboard(testIdentity())

	require.NoError(t, err)
	require.True(t, view.HasAverage)
	assert.Equal(t, 70, view.Average)
	assert.NotEmpty(t, view.Feedback)
	assert.Equal(t, StageCompleted, view.Statuses[0].State)
	assert.Equal(t, StageCompleted, view.Statuses[1].State)
	assert.Equal(t, StageUnlocked, view.Statuses[2].State)
}

func TestDrop_ForgetsFlow(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetByStudent", testIdentity()).Return([]entity.Result{}, nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("GetByStage", 1).Return(stageQuestions(1), nil)
	svc := newAttemptServiceForTest(questionRepo, resultRepo)

	_, err := svc.StartStage(testIdentity(), 1)
	require.NoError(t, err)

	svc.Drop(testIdentity())

	_, err = svc.CurrentQuestion(testIdentity())
	assert.ErrorIs(t, err, apperrors.ErrNoActiveAttempt)
}
