package domain

// ProfilePageView is the view-model handed to the profile page renderer.
type ProfilePageView struct {
	User        *User  `json:"user"`
	Posts       []Post `json:"posts"`
	LikedPosts  []Post `json:"likedPosts"`
	IsFollowing bool   `json:"isFollowing"`
}

// PageOutcome tells the caller how a profile page request ended.
type PageOutcome int

const (
	PageFound PageOutcome = iota
	PageNotFound
)

func (o PageOutcome) String() string {
	switch o {
	case PageFound:
		return "found"
	case PageNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// PageResult carries the outcome and, for PageFound, the view-model.
type PageResult struct {
	Outcome PageOutcome
	View    *ProfilePageView
}

func NotFoundPage() *PageResult {
	return &PageResult{Outcome: PageNotFound}
}

// Metadata is the head data of a page.
type Metadata struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Alternates  *Alternates `json:"alternates,omitempty"`
}

type Alternates struct {
	Canonical string `json:"canonical"`
}
