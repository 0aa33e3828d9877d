package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

func resultForStage(stage, percentage int) entity.Result {
	return entity.Result{
		Student:    "Andi",
		ClassName:  "8A",
		Stage:      stage,
		Percentage: percentage,
	}
}

func TestStageStatuses_FreshStudent(t *testing.T) {
	statuses := StageStatuses(nil)

	require.Len(t, statuses, 3)
	assert.Equal(t, StageUnlocked, statuses[0].State)
	assert.Equal(t, StageLocked, statuses[1].State)
	assert.Equal(t, StageLocked, statuses[2].State)
	for _, s := range statuses {
		assert.Nil(t, s.Result)
	}
}

func TestStageStatuses_FirstStageCompleted(t *testing.T) {
	history := []entity.Result{resultForStage(1, 80)}

	statuses := StageStatuses(history)

	assert.Equal(t, StageCompleted, statuses[0].State)
	require.NotNil(t, statuses[0].Result)
	assert.Equal(t, 80, statuses[0].Result.Percentage)
	assert.Equal(t, StageUnlocked, statuses[1].State)
	assert.Equal(t, StageLocked, statuses[2].State)
}

func TestStageStatuses_AllCompleted(t *testing.T) {
	history := []entity.Result{
		resultForStage(1, 80),
		resultForStage(2, 60),
		resultForStage(3, 100),
	}

	statuses := StageStatuses(history)

	for i, s := range statuses {
		assert.Equal(t, StageCompleted, s.State)
		require.NotNil(t, s.Result)
		assert.Equal(t, i+1, s.Result.Stage)
	}
}

// Монотонность разблокировки: этап N+1 никогда не открыт без результата этапа N.
// Даже если в истории есть "осиротевший" результат этапа 3 (грязные данные),
// этап 2 остаётся закрытым, а этап 3 считается пройденным.
func TestStageStatuses_UnlockMonotonicity(t *testing.T) {
	history := []entity.Result{resultForStage(3, 90)}

	statuses := StageStatuses(history)

	assert.Equal(t, StageUnlocked, statuses[0].State)
	assert.Equal(t, StageLocked, statuses[1].State)
	assert.Equal(t, StageCompleted, statuses[2].State)
}

func TestStageStatuses_IgnoresOutOfRangeStages(t *testing.T) {
	history := []entity.Result{
		resultForStage(0, 50),
		resultForStage(4, 50),
		resultForStage(1, 70),
	}

	statuses := StageStatuses(history)

	assert.Equal(t, StageCompleted, statuses[0].State)
	assert.Equal(t, StageUnlocked, statuses[1].State)
	assert.Equal(t, StageLocked, statuses[2].State)
}

func TestStageStatusFor(t *testing.T) {
	history := []entity.Result{resultForStage(1, 80)}

	assert.Equal(t, StageCompleted, stageStatusFor(history, 1).State)
	assert.Equal(t, StageUnlocked, stageStatusFor(history, 2).State)
	assert.Equal(t, StageLocked, stageStatusFor(history, 3).State)
}
