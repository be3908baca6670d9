package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// schema mirrors migrations/0001_init.up.sql in SQLite dialect.
const schema = `
CREATE TABLE users (
	id         TEXT PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	name       TEXT,
	bio        TEXT,
	image      TEXT,
	location   TEXT,
	website    TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE posts (
	id         TEXT PRIMARY KEY,
	author_id  TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	content    TEXT,
	image      TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE likes (
	user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id    TEXT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (user_id, post_id)
);
CREATE TABLE follows (
	follower_id  TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	following_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (follower_id, following_id)
);
`

// OpenInMemoryDB opens a private in-memory SQLite database with the app schema.
// The queries in repository/postgres only use syntax both engines accept.
func OpenInMemoryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	db, err := sqlx.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared&_foreign_keys=1")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func InsertUser(t *testing.T, db *sqlx.DB, username string, name, bio *string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(`INSERT INTO users (id, username, name, bio) VALUES ($1, $2, $3, $4)`, id, username, name, bio)
	if err != nil {
		t.Fatalf("insert user %s: %v", username, err)
	}
	return id
}

func InsertPost(t *testing.T, db *sqlx.DB, authorID, content string, createdAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.Exec(`INSERT INTO posts (id, author_id, content, created_at) VALUES ($1, $2, $3, $4)`,
		id, authorID, content, createdAt.UTC())
	if err != nil {
		t.Fatalf("insert post: %v", err)
	}
	return id
}

func InsertLike(t *testing.T, db *sqlx.DB, userID, postID string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`, userID, postID); err != nil {
		t.Fatalf("insert like: %v", err)
	}
}

func InsertLikeAt(t *testing.T, db *sqlx.DB, userID, postID string, likedAt time.Time) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO likes (user_id, post_id, created_at) VALUES ($1, $2, $3)`, userID, postID, likedAt.UTC())
	if err != nil {
		t.Fatalf("insert like: %v", err)
	}
}

func InsertFollow(t *testing.T, db *sqlx.DB, followerID, followingID string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO follows (follower_id, following_id) VALUES ($1, $2)`, followerID, followingID); err != nil {
		t.Fatalf("insert follow: %v", err)
	}
}

func Ptr[T any](v T) *T { return &v }
