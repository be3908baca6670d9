package render

import (
	"embed"
	"html/template"
	"time"

	"github.com/gdugdh24/profile-page/internal/domain"
)

const (
	ProfileTemplate  = "profile.html"
	NotFoundTemplate = "not_found.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// ProfilePage is the data of profile.html
type ProfilePage struct {
	Meta     domain.Metadata
	View     *domain.ProfilePageView
	ViewerID string
}

// IsOwnProfile reports whether the viewer is looking at their own page
func (p ProfilePage) IsOwnProfile() bool {
	return p.ViewerID != "" && p.View != nil && p.View.User != nil && p.View.User.ID == p.ViewerID
}

// NotFoundPage is the data of not_found.html
type NotFoundPage struct {
	Meta domain.Metadata
}

// NewTemplates parses the embedded page templates for gin's HTML renderer
func NewTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

var funcs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
}
