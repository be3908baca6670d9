package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

var (
	notFoundMetadata = domain.Metadata{
		Title:       "Profile Not Found",
		Description: "The requested profile does not exist.",
	}
	fallbackMetadata = domain.Metadata{
		Title:       "Profile",
		Description: "User profile page",
	}
)

// GenerateMetadata returns the page head data for a profile route. Lookup
// failures, panics included, are logged and answered with generic metadata.
func (uc *ProfileUseCase) GenerateMetadata(ctx context.Context, params domain.ProfileParams) domain.Metadata {
	var meta domain.Metadata

	var pc panics.Catcher
	pc.Try(func() {
		meta = uc.resolveMetadata(ctx, params)
	})
	if rec := pc.Recovered(); rec != nil {
		uc.logger.Error("error generating metadata",
			zap.String("username", params.Username),
			zap.Error(rec.AsError()),
		)
		return fallbackMetadata
	}

	return meta
}

func (uc *ProfileUseCase) resolveMetadata(ctx context.Context, params domain.ProfileParams) domain.Metadata {
	user, err := uc.userRepo.GetByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFoundMetadata
		}
		uc.logger.Error("error generating metadata",
			zap.String("username", params.Username),
			zap.Error(err),
		)
		return fallbackMetadata
	}
	if user == nil {
		return notFoundMetadata
	}

	return MetadataFor(user)
}

// MetadataFor builds the metadata of an existing user's profile page.
func MetadataFor(user *domain.User) domain.Metadata {
	description := fmt.Sprintf("View %s's profile on our platform.", user.Username)
	if user.Bio != nil && *user.Bio != "" {
		description = *user.Bio
	}

	return domain.Metadata{
		Title:       fmt.Sprintf("%s's Profile", user.DisplayName()),
		Description: description,
		Alternates: &domain.Alternates{
			Canonical: ProfilePath(user.Username),
		},
	}
}

// NotFoundMetadata is the metadata of a profile that does not exist.
func NotFoundMetadata() domain.Metadata {
	return notFoundMetadata
}

func ProfilePath(username string) string {
	return "/profile/" + username
}
