package repository

import (
	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

// DashboardStats — агрегаты для панели учителя
type DashboardStats struct {
	Classes  int64
	Students int64
	Results  int64
}

// ResultRepository определяет методы для работы с историей результатов.
// История append-only: записи создаются и удаляются, но никогда не изменяются.
type ResultRepository interface {
	// Create сохраняет результат завершённой попытки.
	// Возвращает apperrors.ErrStageCompleted при нарушении уникальности
	// (student, class_name, stage).
	Create(result *entity.Result) error

	// GetByStudent возвращает все результаты одного ученика, упорядоченные по этапу
	GetByStudent(identity entity.StudentIdentity) ([]entity.Result, error)

	// GetByStudentAndStage возвращает результат ученика для конкретного этапа
	GetByStudentAndStage(identity entity.StudentIdentity, stage int) (*entity.Result, error)

	// GetAll возвращает всю историю результатов, упорядоченную по классу, ученику и этапу
	GetAll() ([]entity.Result, error)

	// GetByID возвращает результат по идентификатору
	GetByID(id uint) (*entity.Result, error)

	// Delete удаляет одну запись результата
	Delete(id uint) error

	// Stats возвращает агрегаты для панели учителя
	Stats() (*DashboardStats, error)
}
