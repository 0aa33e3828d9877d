package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
	apperrors "github.com/yourusername/checkmyxy-api/internal/pkg/errors"
)

// Префикс ключей сессий учеников
const sessionKeyPrefix = "session:student:"

// SessionRepo реализует repository.SessionRepository поверх Redis.
// Хранит пару {имя, класс} под токеном сессии с TTL.
type SessionRepo struct {
	client *redis.Client
	ctx    context.Context
}

// NewSessionRepo создает новый репозиторий сессий
func NewSessionRepo(client *redis.Client) (*SessionRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for SessionRepo")
	}
	return &SessionRepo{
		client: client,
		ctx:    context.Background(),
	}, nil
}

// SaveIdentity сохраняет идентичность ученика под токеном сессии
func (r *SessionRepo) SaveIdentity(token string, identity entity.StudentIdentity, ttl time.Duration) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, sessionKeyPrefix+token, data, ttl).Err()
}

// GetIdentity возвращает идентичность по токену сессии
func (r *SessionRepo) GetIdentity(token string) (entity.StudentIdentity, error) {
	var identity entity.StudentIdentity

	data, err := r.client.Get(r.ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return identity, apperrors.ErrNotFound
		}
		return identity, err
	}
	if err := json.Unmarshal(data, &identity); err != nil {
		return identity, err
	}
	return identity, nil
}

// DeleteIdentity удаляет сессию ученика (выход)
func (r *SessionRepo) DeleteIdentity(token string) error {
	return r.client.Del(r.ctx, sessionKeyPrefix+token).Err()
}
