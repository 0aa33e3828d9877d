package repository

import (
	"time"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

// SessionRepository определяет хранилище идентичности ученика на время сессии.
// Заменяет локальное браузерное хранилище: токен выдаётся при входе,
// удаляется при выходе, истекает по TTL.
type SessionRepository interface {
	// SaveIdentity сохраняет идентичность ученика под токеном сессии
	SaveIdentity(token string, identity entity.StudentIdentity, ttl time.Duration) error

	// GetIdentity возвращает идентичность по токену.
	// Возвращает apperrors.ErrNotFound для неизвестного или истёкшего токена.
	GetIdentity(token string) (entity.StudentIdentity, error)

	// DeleteIdentity удаляет сессию (выход ученика)
	DeleteIdentity(token string) error
}
