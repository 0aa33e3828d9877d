package service

import (
	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

// StageState — состояние этапа для конкретного ученика
type StageState string

const (
	// StageLocked — этап закрыт: предыдущий этап не пройден
	StageLocked StageState = "locked"
	// StageUnlocked — этап открыт, но ещё не пройден
	StageUnlocked StageState = "unlocked"
	// StageCompleted — этап пройден, сохранённый результат прилагается
	StageCompleted StageState = "completed"
)

// StageStatus — вычисленное состояние одного этапа.
// Result заполнен только для пройденных этапов.
type StageStatus struct {
	Stage  int
	State  StageState
	Result *entity.Result
}

// StageStatuses вычисляет состояние этапов 1..3 по истории результатов ученика.
// Чистая функция без побочных эффектов: история уже отфильтрована по идентичности.
// Правила:
//   - этап N пройден, если для него есть результат;
//   - этап N открыт, если N == 1 или этап N-1 пройден;
//   - иначе этап закрыт.
func StageStatuses(history []entity.Result) []StageStatus {
	byStage := make(map[int]*entity.Result, len(history))
	for i := range history {
		r := &history[i]
		if r.Stage < entity.MinStage || r.Stage > entity.MaxStage {
			continue
		}
		// При дублях (защита от грязных данных) берём первый: история упорядочена
		if _, ok := byStage[r.Stage]; !ok {
			byStage[r.Stage] = r
		}
	}

	statuses := make([]StageStatus, 0, entity.MaxStage)
	for stage := entity.MinStage; stage <= entity.MaxStage; stage++ {
		status := StageStatus{Stage: stage, State: StageLocked}
		if r, ok := byStage[stage]; ok {
			status.State = StageCompleted
			status.Result = r
		} else if stage == entity.MinStage || byStage[stage-1] != nil {
			status.State = StageUnlocked
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// stageStatusFor возвращает состояние одного этапа из истории
func stageStatusFor(history []entity.Result, stage int) StageStatus {
	statuses := StageStatuses(history)
	return statuses[stage-entity.MinStage]
}
