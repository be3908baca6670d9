package postgres

import (
	"context"
	"errors"

	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/gdugdh24/profile-page/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// foreign_key_violation
const pqForeignKeyViolation = "23503"

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2
		)
	`
	if err := r.db.GetContext(ctx, &exists, query, followerID, followingID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *followRepository) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return domain.ErrCannotFollowSelf
	}

	query := `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`
	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	return err
}
