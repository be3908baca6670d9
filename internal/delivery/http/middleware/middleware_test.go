package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubVerifier struct {
	tokens map[string]string
	err    error
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(v TokenVerifier) *gin.Engine {
	m := NewAuthMiddleware(v, zap.NewNop())

	r := gin.New()
	viewer := func(c *gin.Context) {
		c.String(http.StatusOK, ViewerID(c))
	}
	r.GET("/optional", m.OptionalAuth(), viewer)
	r.GET("/required", m.RequireAuth(), viewer)
	return r
}

func doRequest(r http.Handler, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOptionalAuth(t *testing.T) {
	r := newAuthRouter(&stubVerifier{tokens: map[string]string{"good": "u1"}})

	tests := []struct {
		name   string
		header string
		viewer string
	}{
		{"no header", "", ""},
		{"valid token", "Bearer good", "u1"},
		{"invalid token", "Bearer bad", ""},
		{"wrong scheme", "Basic good", ""},
		{"empty bearer", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, "/optional", tt.header)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.viewer, w.Body.String())
		})
	}
}

func TestOptionalAuth_StoreFailureIsAnonymous(t *testing.T) {
	r := newAuthRouter(&stubVerifier{err: errors.New("redis down")})

	w := doRequest(r, "/optional", "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter(&stubVerifier{tokens: map[string]string{"good": "u1"}})

	t.Run("valid token", func(t *testing.T) {
		w := doRequest(r, "/required", "Bearer good")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(r, "/required", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"missing authorization token"}`, w.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doRequest(r, "/required", "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates", func(t *testing.T) {
		w := doRequest(r, "/", "")
		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := doRequest(r, "/", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
