package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/domain/repository"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
	"github.com/yourusername/checkmyxy-api/internal/service/grading"
)

// ResultNotifier рассылает событие о новом результате подписчикам панели учителя.
// Зависимость опциональна: без менеджера WebSocket события просто не уходят.
type ResultNotifier interface {
	NotifyResultCreated(result *entity.Result)
}

// ResultService предоставляет методы для работы с историей результатов
type ResultService struct {
	resultRepo   repository.ResultRepository
	questionRepo repository.QuestionRepository
	notifier     ResultNotifier
}

// NewResultService создает новый сервис результатов
func NewResultService(
	resultRepo repository.ResultRepository,
	questionRepo repository.QuestionRepository,
	notifier ResultNotifier,
) *ResultService {
	return &ResultService{
		resultRepo:   resultRepo,
		questionRepo: questionRepo,
		notifier:     notifier,
	}
}

// RecordAttempt оценивает завершённую попытку и сохраняет неизменяемый результат.
// При гонке двух завершений одного этапа срабатывает уникальный индекс,
// и вызывающему возвращается уже сохранённый результат без второй записи.
func (s *ResultService) RecordAttempt(identity entity.StudentIdentity, stage int, questions []entity.Question, answers []string) (*entity.Result, error) {
	report, err := grading.Grade(questions, answers)
	if err != nil {
		return nil, err
	}

	result := &entity.Result{
		Student:     identity.Name,
		ClassName:   identity.ClassName,
		Stage:       stage,
		Correct:     report.Correct,
		Wrong:       report.Wrong,
		Total:       report.Total,
		Percentage:  report.Percentage,
		Detail:      report.Detail,
		CompletedAt: time.Now(),
	}

	if err := s.resultRepo.Create(result); err != nil {
		if errors.Is(err, apperrors.ErrStageCompleted) {
			log.Printf("[ResultService] Этап %d ученика %q уже имеет результат, возвращаю сохранённый", stage, identity.Key())
			return s.resultRepo.GetByStudentAndStage(identity, stage)
		}
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("[ResultService] Сохранён результат ученика %q: этап %d, %d%% (%d/%d)",
		identity.Key(), stage, result.Percentage, result.Correct, result.Total)

	if s.notifier != nil {
		s.notifier.NotifyResultCreated(result)
	}
	return result, nil
}

// HistoryFor возвращает все результаты одного ученика
func (s *ResultService) HistoryFor(identity entity.StudentIdentity) ([]entity.Result, error) {
	return s.resultRepo.GetByStudent(identity)
}

// DashboardStats — агрегаты для панели учителя
type DashboardStats struct {
	Classes   int64 `json:"classes"`
	Students  int64 `json:"students"`
	Results   int64 `json:"results"`
	Questions int64 `json:"questions"`
}

// DashboardStats возвращает агрегаты для панели учителя
func (s *ResultService) DashboardStats() (*DashboardStats, error) {
	stats, err := s.resultRepo.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to load result stats: %w", err)
	}
	questions, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	return &DashboardStats{
		Classes:   stats.Classes,
		Students:  stats.Students,
		Results:   stats.Results,
		Questions: questions,
	}, nil
}

// ClassStudent — сводка по одному ученику внутри класса
type ClassStudent struct {
	Name    string `json:"name"`
	Stages  []int  `json:"stages"`
	Average int    `json:"average"`
}

// ClassGroup — результаты одного класса
type ClassGroup struct {
	ClassName string         `json:"class_name"`
	Students  []ClassStudent `json:"students"`
}

// ClassGroups группирует всю историю результатов по классам и ученикам.
// Накопленный итог ученика — невзвешенное среднее процентов его этапов;
// он каждый раз вычисляется заново и отдельно не хранится.
func (s *ResultService) ClassGroups() ([]ClassGroup, error) {
	all, err := s.resultRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	groups := make([]ClassGroup, 0)
	var group *ClassGroup
	var student *ClassStudent
	var percentages []int

	flushStudent := func() {
		if student == nil {
			return
		}
		student.Average, _ = grading.Average(percentages)
		group.Students = append(group.Students, *student)
		student = nil
		percentages = nil
	}

	// GetAll упорядочен по (class_name, student, stage): группировка одним проходом
	for i := range all {
		r := &all[i]
		if group == nil || group.ClassName != r.ClassName {
			flushStudent()
			groups = append(groups, ClassGroup{ClassName: r.ClassName})
			group = &groups[len(groups)-1]
		}
		if student == nil || student.Name != r.Student {
			flushStudent()
			student = &ClassStudent{Name: r.Student}
		}
		student.Stages = append(student.Stages, r.Stage)
		percentages = append(percentages, r.Percentage)
	}
	flushStudent()
	return groups, nil
}

// StudentDetail возвращает результаты одного ученика для просмотра учителем.
// Пустая история — валидное пустое состояние, а не ошибка.
func (s *ResultService) StudentDetail(identity entity.StudentIdentity) ([]entity.Result, error) {
	return s.resultRepo.GetByStudent(identity)
}

// DeleteResult удаляет одну запись результата
func (s *ResultService) DeleteResult(id uint) error {
	if err := s.resultRepo.Delete(id); err != nil {
		return err
	}
	log.Printf("[ResultService] Результат #%d удалён учителем", id)
	return nil
}

// ExportXLSX выгружает всю историю результатов в книгу Excel
func (s *ResultService) ExportXLSX() ([]byte, error) {
	all, err := s.resultRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[ResultService] Ошибка закрытия книги Excel: %v", err)
		}
	}()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Class", "Student", "Stage", "Correct", "Wrong", "Total", "Percentage", "Completed At"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, r := range all {
		values := []interface{}{
			r.ClassName, r.Student, r.Stage, r.Correct, r.Wrong, r.Total, r.Percentage,
			r.CompletedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
