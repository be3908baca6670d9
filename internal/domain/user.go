package domain

import "time"

// User is the read-only projection of a user record shown on a profile page.
type User struct {
	ID             string    `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	Name           *string   `json:"name" db:"name"`
	Bio            *string   `json:"bio" db:"bio"`
	Image          *string   `json:"image" db:"image"`
	Location       *string   `json:"location" db:"location"`
	Website        *string   `json:"website" db:"website"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	FollowersCount int       `json:"followers_count" db:"followers_count"`
	FollowingCount int       `json:"following_count" db:"following_count"`
	PostsCount     int       `json:"posts_count" db:"posts_count"`
}

// DisplayName returns the name when set, otherwise the username.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Username
}

// ProfileParams is the route input of the profile pages.
type ProfileParams struct {
	Username string `uri:"username" binding:"required"`
}
