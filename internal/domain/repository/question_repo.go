package repository

import (
	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с банком вопросов
type QuestionRepository interface {
	// Create сохраняет один вопрос
	Create(question *entity.Question) error

	// CreateBatch сохраняет несколько вопросов за один запрос
	CreateBatch(questions []entity.Question) error

	// GetAll возвращает все вопросы, упорядоченные по этапу и времени создания
	GetAll() ([]entity.Question, error)

	// GetByStage возвращает вопросы одного этапа в порядке создания
	GetByStage(stage int) ([]entity.Question, error)

	// GetByID возвращает вопрос по идентификатору
	GetByID(id string) (*entity.Question, error)

	// Delete удаляет вопрос по идентификатору
	Delete(id string) error

	// Count возвращает общее количество вопросов
	Count() (int64, error)

	// ReplaceAll атомарно заменяет содержимое банка вопросов (в одной транзакции)
	ReplaceAll(questions []entity.Question) error
}
