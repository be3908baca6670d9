package domain

import "time"

type PostAuthor struct {
	ID       string  `json:"id" db:"id"`
	Username string  `json:"username" db:"username"`
	Name     *string `json:"name" db:"name"`
	Image    *string `json:"image" db:"image"`
}

type Post struct {
	ID        string     `json:"id" db:"id"`
	AuthorID  string     `json:"author_id" db:"author_id"`
	Content   *string    `json:"content" db:"content"`
	Image     *string    `json:"image" db:"image"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	Author    PostAuthor `json:"author" db:"author"`
	LikeCount int        `json:"like_count" db:"like_count"`
}
