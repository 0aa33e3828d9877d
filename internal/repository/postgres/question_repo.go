package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create сохраняет один вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch сохраняет несколько вопросов за один запрос
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

// GetAll возвращает все вопросы, упорядоченные по этапу и времени создания
func (r *QuestionRepo) GetAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("stage ASC, created_at ASC").Find(&questions).Error
	// Пустой слайс - валидный результат, ErrRecordNotFound здесь не проверяем
	return questions, err
}

// GetByStage возвращает вопросы одного этапа в порядке создания
func (r *QuestionRepo) GetByStage(stage int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("stage = ?", stage).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

// GetByID возвращает вопрос по идентификатору
func (r *QuestionRepo) GetByID(id string) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос по идентификатору
func (r *QuestionRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entity.Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Question{}).Count(&total).Error
	return total, err
}

// ReplaceAll заменяет содержимое банка вопросов в одной транзакции.
// Замена "удалить всё + вставить всё" выполняется атомарно: при сбое
// на любом шаге банк остаётся в прежнем состоянии.
func (r *QuestionRepo) ReplaceAll(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}
