package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/domain/repository"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

// QuestionService предоставляет методы для управления банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис банка вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// EnsureSampleQuestions наполняет пустой банк стартовыми вопросами.
// Непустой банк не трогается: бутстрап выполняется ровно один раз.
func (s *QuestionService) EnsureSampleQuestions() error {
	count, err := s.questionRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	sample := withGeneratedIDs(SampleQuestions())
	if err := s.questionRepo.CreateBatch(sample); err != nil {
		return fmt.Errorf("failed to seed sample questions: %w", err)
	}
	log.Printf("[QuestionService] Банк вопросов пуст, загружено %d стартовых вопросов", len(sample))
	return nil
}

// AddQuestion проверяет и сохраняет новый вопрос учителя
func (s *QuestionService) AddQuestion(question *entity.Question) error {
	if err := question.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if question.ID == "" {
		question.ID = uuid.New().String()
	}
	if err := s.questionRepo.Create(question); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	log.Printf("[QuestionService] Добавлен вопрос %s (этап %d, тип %s)", question.ID, question.Stage, question.Type)
	return nil
}

// List возвращает все вопросы банка, упорядоченные по этапу
func (s *QuestionService) List() ([]entity.Question, error) {
	return s.questionRepo.GetAll()
}

// ListByStage возвращает вопросы одного этапа
func (s *QuestionService) ListByStage(stage int) ([]entity.Question, error) {
	return s.questionRepo.GetByStage(stage)
}

// Delete удаляет вопрос по идентификатору
func (s *QuestionService) Delete(id string) error {
	if err := s.questionRepo.Delete(id); err != nil {
		return err
	}
	log.Printf("[QuestionService] Вопрос %s удалён", id)
	return nil
}

// ResetToSample заменяет весь банк стартовым набором в одной транзакции.
// История результатов при этом не трогается.
func (s *QuestionService) ResetToSample() error {
	sample := withGeneratedIDs(SampleQuestions())
	if err := s.questionRepo.ReplaceAll(sample); err != nil {
		return fmt.Errorf("failed to reset question bank: %w", err)
	}
	log.Printf("[QuestionService] Банк вопросов сброшен к стартовому набору (%d вопросов)", len(sample))
	return nil
}

// withGeneratedIDs назначает свежие идентификаторы вопросам набора
func withGeneratedIDs(questions []entity.Question) []entity.Question {
	for i := range questions {
		questions[i].ID = uuid.New().String()
	}
	return questions
}
