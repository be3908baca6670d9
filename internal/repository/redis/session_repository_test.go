package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gdugdh24/profile-page/internal/domain"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*miniredis.Miniredis, *sessionRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &sessionRepository{client: client}
}

func TestSessionRepository_CreateGetDelete(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "hash1", "user-1", time.Hour))

	userID, err := repo.GetUserID(ctx, "hash1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, repo.Delete(ctx, "hash1"))

	_, err = repo.GetUserID(ctx, "hash1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Expires(t *testing.T) {
	mr, repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "hash2", "user-2", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.GetUserID(ctx, "hash2")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
