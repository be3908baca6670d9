package postgres

import (
	"context"

	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/gdugdh24/profile-page/internal/repository"
	"github.com/jmoiron/sqlx"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Author columns are aliased with a dotted prefix so sqlx fills Post.Author.
const postColumns = `
	p.id, p.author_id, p.content, p.image, p.created_at,
	u.id AS "author.id", u.username AS "author.username",
	u.name AS "author.name", u.image AS "author.image",
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count
`

func (r *postRepository) GetUserPosts(ctx context.Context, userID string) ([]domain.Post, error) {
	posts := []domain.Post{}
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC
	`
	if err := r.db.SelectContext(ctx, &posts, query, userID); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetUserLikedPosts returns the posts userID liked, most recently liked first.
func (r *postRepository) GetUserLikedPosts(ctx context.Context, userID string) ([]domain.Post, error) {
	posts := []domain.Post{}
	query := `
		SELECT ` + postColumns + `
		FROM likes lk
		JOIN posts p ON p.id = lk.post_id
		JOIN users u ON u.id = p.author_id
		WHERE lk.user_id = $1
		ORDER BY lk.created_at DESC
	`
	if err := r.db.SelectContext(ctx, &posts, query, userID); err != nil {
		return nil, err
	}
	return posts, nil
}
