package redis

import (
	"context"
	"errors"
	"time"

	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/gdugdh24/profile-page/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *goredis.Client
}

func NewSessionRepository(client *goredis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(tokenHash string) string { return "session:" + tokenHash }

func (r *sessionRepository) Create(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(tokenHash), userID, ttl).Err()
}

func (r *sessionRepository) GetUserID(ctx context.Context, tokenHash string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", domain.ErrSessionNotFound
		}
		return "", err
	}
	return userID, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenHash string) error {
	return r.client.Del(ctx, sessionKey(tokenHash)).Err()
}
