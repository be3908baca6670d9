package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]string
	err      error
}

func (s *memorySessions) Create(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[tokenHash] = userID
	return nil
}

func (s *memorySessions) GetUserID(ctx context.Context, tokenHash string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	id, ok := s.sessions[tokenHash]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return id, nil
}

func (s *memorySessions) Delete(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenHash)
	return nil
}

func newTestUseCase() (*AuthUseCase, *memorySessions) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"alice1": {ID: "u-alice", Username: "alice1"},
	}}
	sessions := &memorySessions{sessions: map[string]string{}}
	return NewAuthUseCase(users, sessions, testSecret, time.Hour), sessions
}

func TestAuthenticateTest_IssuesVerifiableToken(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	resp, err := uc.AuthenticateTest(ctx, "alice1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u-alice", resp.User.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)

	userID, err := uc.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-alice", userID)
}

func TestAuthenticateTest_UnknownUser(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.AuthenticateTest(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestVerifyToken_AfterLogout(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	resp, err := uc.AuthenticateTest(ctx, "alice1")
	require.NoError(t, err)
	require.NoError(t, uc.Logout(ctx, resp.Token))

	_, err = uc.VerifyToken(ctx, resp.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestVerifyToken_Rejects(t *testing.T) {
	uc, sessions := newTestUseCase()
	ctx := context.Background()

	t.Run("garbage", func(t *testing.T) {
		_, err := uc.VerifyToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u-alice",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("another-secret-another-secret-00"))
		require.NoError(t, err)

		_, err = uc.VerifyToken(ctx, signed)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u-alice",
			"exp": time.Now().Add(-time.Minute).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		sessions.sessions[uc.hashToken(signed)] = "u-alice"

		_, err = uc.VerifyToken(ctx, signed)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("session store failure", func(t *testing.T) {
		resp, err := uc.AuthenticateTest(ctx, "alice1")
		require.NoError(t, err)

		sessions.err = errors.New("redis down")
		defer func() { sessions.err = nil }()

		_, err = uc.VerifyToken(ctx, resp.Token)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidToken)
	})
}
