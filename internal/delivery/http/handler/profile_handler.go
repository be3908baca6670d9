package handler

import (
	"errors"
	"net/http"

	"github.com/gdugdh24/profile-page/internal/delivery/http/middleware"
	"github.com/gdugdh24/profile-page/internal/delivery/http/render"
	"github.com/gdugdh24/profile-page/internal/domain"
	"github.com/gdugdh24/profile-page/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
	logger         *zap.Logger
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// FollowResponse is the follow state after a toggle
type FollowResponse struct {
	IsFollowing bool `json:"is_following"`
}

// ProfilePage handles GET /profile/:username
func (h *ProfileHandler) ProfilePage(c *gin.Context) {
	var params domain.ProfileParams
	if err := c.ShouldBindUri(&params); err != nil {
		h.renderNotFound(c)
		return
	}

	viewerID := middleware.ViewerID(c)
	result := h.profileUseCase.GetProfilePage(c.Request.Context(), params, viewerID)
	if result.Outcome != domain.PageFound {
		h.renderNotFound(c)
		return
	}

	c.HTML(http.StatusOK, render.ProfileTemplate, render.ProfilePage{
		Meta:     profile.MetadataFor(result.View.User),
		View:     result.View,
		ViewerID: viewerID,
	})
}

func (h *ProfileHandler) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, render.NotFoundTemplate, render.NotFoundPage{
		Meta: profile.NotFoundMetadata(),
	})
}

// GetProfile handles GET /api/v1/profile/:username
// @Summary Get profile page data
// @Description Get a user's profile together with posts, liked posts and follow state
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.ProfilePageView
// @Failure 404 {object} ErrorResponse
// @Router /profile/{username} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var params domain.ProfileParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "profile not found",
		})
		return
	}

	result := h.profileUseCase.GetProfilePage(c.Request.Context(), params, middleware.ViewerID(c))
	if result.Outcome != domain.PageFound {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "profile not found",
		})
		return
	}

	c.JSON(http.StatusOK, result.View)
}

// GetMetadata handles GET /api/v1/profile/:username/metadata
// @Summary Get profile page metadata
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.Metadata
// @Router /profile/{username}/metadata [get]
func (h *ProfileHandler) GetMetadata(c *gin.Context) {
	var params domain.ProfileParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusOK, profile.NotFoundMetadata())
		return
	}

	c.JSON(http.StatusOK, h.profileUseCase.GenerateMetadata(c.Request.Context(), params))
}

// ToggleFollow handles POST /api/v1/profile/:username/follow
// @Summary Follow or unfollow a user
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} FollowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/{username}/follow [post]
func (h *ProfileHandler) ToggleFollow(c *gin.Context) {
	viewerID := middleware.ViewerID(c)
	if viewerID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var params domain.ProfileParams
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "user not found",
		})
		return
	}

	following, err := h.profileUseCase.ToggleFollow(c.Request.Context(), viewerID, params.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
		case errors.Is(err, domain.ErrCannotFollowSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot follow yourself",
			})
		default:
			h.logger.Error("failed to toggle follow",
				zap.String("viewer_id", viewerID),
				zap.String("username", params.Username),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to toggle follow",
			})
		}
		return
	}

	c.JSON(http.StatusOK, FollowResponse{IsFollowing: following})
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Update my profile
// @Description Update current user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Profile update data"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID := middleware.ViewerID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	user, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "user not found",
			})
			return
		}
		h.logger.Error("failed to update profile", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
