package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	"github.com/yourusername/checkmyxy-api/internal/domain/repository"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

// StudentService управляет сессиями учеников. Вход без пароля:
// идентичность ученика — это пара {имя, класс}, токен сессии
// хранится в Redis и истекает по TTL.
type StudentService struct {
	sessionRepo repository.SessionRepository
	sessionTTL  time.Duration
}

// NewStudentService создает новый сервис учеников
func NewStudentService(sessionRepo repository.SessionRepository, sessionTTL time.Duration) *StudentService {
	return &StudentService{
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

// Login проверяет имя и класс, выдаёт токен сессии.
// Разные пары {имя, класс} — разные ученики с независимым прогрессом.
func (s *StudentService) Login(name, className string) (string, entity.StudentIdentity, error) {
	identity, ok := entity.NewStudentIdentity(name, className)
	if !ok {
		return "", entity.StudentIdentity{}, fmt.Errorf("%w: name and class are required", apperrors.ErrValidation)
	}

	token := uuid.New().String()
	if err := s.sessionRepo.SaveIdentity(token, identity, s.sessionTTL); err != nil {
		return "", entity.StudentIdentity{}, fmt.Errorf("failed to save session: %w", err)
	}

	log.Printf("[StudentService] Вход ученика %q, сессия на %s", identity.Key(), s.sessionTTL)
	return token, identity, nil
}

// IdentityFor возвращает идентичность по токену сессии.
// Для неизвестного или истёкшего токена — apperrors.ErrNotFound.
func (s *StudentService) IdentityFor(token string) (entity.StudentIdentity, error) {
	return s.sessionRepo.GetIdentity(token)
}

// Logout удаляет сессию ученика. Прогресс в базе не трогается:
// повторный вход с той же парой {имя, класс} вернёт его целиком.
func (s *StudentService) Logout(token string) error {
	return s.sessionRepo.DeleteIdentity(token)
}
