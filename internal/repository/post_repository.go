package repository

import (
	"context"

	"github.com/gdugdh24/profile-page/internal/domain"
)

type PostRepository interface {
	GetUserPosts(ctx context.Context, userID string) ([]domain.Post, error)
	GetUserLikedPosts(ctx context.Context, userID string) ([]domain.Post, error)
}
