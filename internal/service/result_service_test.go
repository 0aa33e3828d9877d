package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/domain/repository"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyResultCreated(result *entity.Result) {
	m.Called(result)
}

func TestRecordAttempt_PersistsAndNotifies(t *testing.T) {
	// Arrange
	resultRepo := new(MockResultRepo)
	resultRepo.On("Create", mock.MatchedBy(func(r *entity.Result) bool {
		return r.Stage == 1 && r.Percentage == 100 && !r.CompletedAt.IsZero()
	})).Return(nil)
	notifier := new(mockNotifier)
	notifier.On("NotifyResultCreated", mock.Anything).Return()
	svc := NewResultService(resultRepo, new(MockQuestionRepo), notifier)

	questions := []entity.Question{
		{Type: entity.QuestionTypeTrueFalse, Text: "q", Options: entity.TrueFalseOptions(), Answer: "Benar", Score: 4},
	}

	// Act
	result, err := svc.RecordAttempt(testIdentity(), 1, questions, []string{"Benar"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, "Andi", result.Student)
	resultRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestClassGroups_GroupsByClassAndStudent(t *testing.T) {
	// Репозиторий отдаёт историю упорядоченной по (класс, ученик, этап)
	all := []entity.Result{
		{ClassName: "8A", Student: "Andi", Stage: 1, Percentage: 80},
		{ClassName: "8A", Student: "Andi", Stage: 2, Percentage: 60},
		{ClassName: "8A", Student: "Budi", Stage: 1, Percentage: 100},
		{ClassName: "8B", Student: "Citra", Stage: 1, Percentage: 50},
	}
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetAll").Return(all, nil)
	svc := NewResultService(resultRepo, new(MockQuestionRepo), nil)

	groups, err := svc.ClassGroups()

	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "8A", groups[0].ClassName)
	require.Len(t, groups[0].Students, 2)
	assert.Equal(t, "Andi", groups[0].Students[0].Name)
	assert.Equal(t, []int{1, 2}, groups[0].Students[0].Stages)
	assert.Equal(t, 70, groups[0].Students[0].Average)
	assert.Equal(t, "Budi", groups[0].Students[1].Name)
	assert.Equal(t, 100, groups[0].Students[1].Average)

	assert.Equal(t, "8B", groups[1].ClassName)
	require.Len(t, groups[1].Students, 1)
	assert.Equal(t, 50, groups[1].Students[0].Average)
}

func TestClassGroups_EmptyHistory(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetAll").Return([]entity.Result{}, nil)
	svc := NewResultService(resultRepo, new(MockQuestionRepo), nil)

	groups, err := svc.ClassGroups()

	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestDashboardStats_CombinesResultAndQuestionCounts(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("Stats").Return(&repository.DashboardStats{Classes: 2, Students: 5, Results: 9}, nil)
	questionRepo := new(MockQuestionRepo)
	questionRepo.On("Count").Return(int64(15), nil)
	svc := NewResultService(resultRepo, questionRepo, nil)

	stats, err := svc.DashboardStats()

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Classes)
	assert.Equal(t, int64(5), stats.Students)
	assert.Equal(t, int64(9), stats.Results)
	assert.Equal(t, int64(15), stats.Questions)
}

func TestDeleteResult_Delegates(t *testing.T) {
	resultRepo := new(MockResultRepo)
	resultRepo.On("Delete", uint(7)).Return(nil)
	svc := NewResultService(resultRepo, new(MockQuestionRepo), nil)

	require.NoError(t, svc.DeleteResult(7))
	resultRepo.AssertExpectations(t)
}

func TestExportXLSX_ProducesWorkbook(t *testing.T) {
	all := []entity.Result{
		{ClassName: "8A", Student: "Andi", Stage: 1, Correct: 3, Wrong: 1, Total: 4, Percentage: 75},
	}
	resultRepo := new(MockResultRepo)
	resultRepo.On("GetAll").Return(all, nil)
	svc := NewResultService(resultRepo, new(MockQuestionRepo), nil)

	data, err := svc.ExportXLSX()

	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// Файлы xlsx - zip-архивы с сигнатурой PK
	assert.Equal(t, byte('P'), data[0])
	assert.Equal(t, byte('K'), data[1])
}
