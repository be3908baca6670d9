package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/gdugdh24/profile-page/internal/infrastructure/observability"
	"github.com/gdugdh24/profile-page/internal/repository"
	"github.com/gdugdh24/profile-page/pkg/settle"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

type ProfileUseCase struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	logger     *zap.Logger
}

func NewProfileUseCase(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

// UpdateProfileRequest represents profile update request
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=50"`
	Bio      *string `json:"bio" binding:"omitempty,max=160"`
	Location *string `json:"location" binding:"omitempty,max=100"`
	Website  *string `json:"website" binding:"omitempty,weburl,max=200"`
}

// GetProfilePage loads everything the profile page shows for params.Username.
// viewerID is empty for anonymous viewers. It never fails: a missing user or
// any failure while loading the user ends in the not-found outcome, and a
// failed secondary fetch is replaced by its default.
func (uc *ProfileUseCase) GetProfilePage(ctx context.Context, params domain.ProfileParams, viewerID string) *domain.PageResult {
	var result *domain.PageResult

	var pc panics.Catcher
	pc.Try(func() {
		result = uc.loadProfilePage(ctx, params.Username, viewerID)
	})
	if rec := pc.Recovered(); rec != nil {
		uc.logger.Error("error loading profile page",
			zap.String("username", params.Username),
			zap.Error(rec.AsError()),
		)
		result = domain.NotFoundPage()
	}

	observability.ProfilePageOutcomes.WithLabelValues(result.Outcome.String()).Inc()
	return result
}

func (uc *ProfileUseCase) loadProfilePage(ctx context.Context, username, viewerID string) *domain.PageResult {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			uc.logger.Error("error loading profile page",
				zap.String("username", username),
				zap.Error(err),
			)
		}
		return domain.NotFoundPage()
	}
	if user == nil {
		return domain.NotFoundPage()
	}

	var g settle.Group
	posts := settle.Go(&g, func() ([]domain.Post, error) {
		return uc.postRepo.GetUserPosts(ctx, user.ID)
	})
	likedPosts := settle.Go(&g, func() ([]domain.Post, error) {
		return uc.postRepo.GetUserLikedPosts(ctx, user.ID)
	})
	isFollowing := settle.Go(&g, func() (bool, error) {
		if viewerID == "" {
			return false, nil
		}
		return uc.followRepo.IsFollowing(ctx, viewerID, user.ID)
	})
	g.Wait()

	uc.recordFetchFailure("posts", user.ID, posts.Err)
	uc.recordFetchFailure("liked_posts", user.ID, likedPosts.Err)
	uc.recordFetchFailure("is_following", user.ID, isFollowing.Err)

	return &domain.PageResult{
		Outcome: domain.PageFound,
		View: &domain.ProfilePageView{
			User:        user,
			Posts:       postsOrEmpty(posts),
			LikedPosts:  postsOrEmpty(likedPosts),
			IsFollowing: isFollowing.Or(false),
		},
	}
}

func (uc *ProfileUseCase) recordFetchFailure(fetch, userID string, err error) {
	if err == nil {
		return
	}
	observability.ProfileFetchFailures.WithLabelValues(fetch).Inc()
	uc.logger.Debug("profile fetch failed, using default",
		zap.String("fetch", fetch),
		zap.String("user_id", userID),
		zap.Error(err),
	)
}

func postsOrEmpty(r *settle.Result[[]domain.Post]) []domain.Post {
	posts := r.Or(nil)
	if posts == nil {
		return []domain.Post{}
	}
	return posts
}

// ToggleFollow makes the viewer follow the user if they do not yet, and
// unfollow otherwise. It returns the new follow state.
func (uc *ProfileUseCase) ToggleFollow(ctx context.Context, viewerID, username string) (bool, error) {
	target, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if target.ID == viewerID {
		return false, domain.ErrCannotFollowSelf
	}

	following, err := uc.followRepo.IsFollowing(ctx, viewerID, target.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow state: %w", err)
	}

	if following {
		if err := uc.followRepo.Unfollow(ctx, viewerID, target.ID); err != nil {
			return false, fmt.Errorf("failed to unfollow: %w", err)
		}
		return false, nil
	}

	if err := uc.followRepo.Follow(ctx, viewerID, target.ID); err != nil {
		return false, fmt.Errorf("failed to follow: %w", err)
	}
	return true, nil
}

// UpdateProfile updates the viewer's own profile fields. Empty strings clear a field.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = emptyToNil(*req.Name)
	}
	if req.Bio != nil {
		user.Bio = emptyToNil(*req.Bio)
	}
	if req.Location != nil {
		user.Location = emptyToNil(*req.Location)
	}
	if req.Website != nil {
		user.Website = emptyToNil(*req.Website)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
