package repository

import (
	"context"
	"time"
)

// SessionRepository stores issued viewer sessions keyed by token hash.
type SessionRepository interface {
	Create(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	GetUserID(ctx context.Context, tokenHash string) (string, error)
	Delete(ctx context.Context, tokenHash string) error
}
