package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/gdugdh24/profile-page/internal/repository"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const selectUser = `
	SELECT u.id, u.username, u.name, u.bio, u.image, u.location, u.website, u.created_at,
	       (SELECT COUNT(*) FROM follows f WHERE f.following_id = u.id) AS followers_count,
	       (SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.id) AS following_count,
	       (SELECT COUNT(*) FROM posts p WHERE p.author_id = u.id) AS posts_count
	FROM users u
`

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, selectUser+`WHERE u.username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, selectUser+`WHERE u.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, bio = $2, location = $3, website = $4
		WHERE id = $5
	`
	result, err := r.db.ExecContext(ctx, query, user.Name, user.Bio, user.Location, user.Website, user.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
