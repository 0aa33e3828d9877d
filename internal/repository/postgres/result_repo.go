package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/domain/repository"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Create сохраняет результат завершённой попытки.
// Уникальный индекс (student, class_name, stage) — страховка от гонки двух
// одновременных завершений одного этапа; нарушение транслируется в
// ErrStageCompleted, чтобы вызывающий код отдал сохранённый результат.
func (r *ResultRepo) Create(result *entity.Result) error {
	if err := r.db.Create(result).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrStageCompleted
		}
		return err
	}
	return nil
}

// GetByStudent возвращает все результаты одного ученика, упорядоченные по этапу
func (r *ResultRepo) GetByStudent(identity entity.StudentIdentity) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("student = ? AND class_name = ?", identity.Name, identity.ClassName).
		Order("stage ASC").
		Find(&results).Error
	return results, err
}

// GetByStudentAndStage возвращает результат ученика для конкретного этапа
func (r *ResultRepo) GetByStudentAndStage(identity entity.StudentIdentity, stage int) (*entity.Result, error) {
	var result entity.Result
	err := r.db.Where("student = ? AND class_name = ? AND stage = ?", identity.Name, identity.ClassName, stage).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// GetAll возвращает всю историю результатов, упорядоченную по классу, ученику и этапу
func (r *ResultRepo) GetAll() ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Order("class_name ASC, student ASC, stage ASC").Find(&results).Error
	return results, err
}

// GetByID возвращает результат по идентификатору
func (r *ResultRepo) GetByID(id uint) (*entity.Result, error) {
	var result entity.Result
	err := r.db.First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// Delete удаляет одну запись результата
func (r *ResultRepo) Delete(id uint) error {
	res := r.db.Delete(&entity.Result{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Stats возвращает агрегаты для панели учителя одним запросом
func (r *ResultRepo) Stats() (*repository.DashboardStats, error) {
	var stats repository.DashboardStats

	err := r.db.Model(&entity.Result{}).
		Select(`
			COUNT(DISTINCT class_name) as classes,
			COUNT(DISTINCT (class_name, student)) as students,
			COUNT(*) as results
		`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
