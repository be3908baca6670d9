package http

import (
	"html/template"

	"github.com/gdugdh24/profile-page/internal/delivery/http/handler"
	"github.com/gdugdh24/profile-page/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	templates      *template.Template
	logger         *zap.Logger
	enableTestAuth bool
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
	templates *template.Template,
	logger *zap.Logger,
	enableTestAuth bool,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		authMiddleware: authMiddleware,
		templates:      templates,
		logger:         logger,
		enableTestAuth: enableTestAuth,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(r.logger),
		middleware.Recovery(r.logger),
		middleware.Metrics(),
	)
	router.SetHTMLTemplate(r.templates)

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Server-rendered profile page
	router.GET("/profile/:username", r.authMiddleware.OptionalAuth(), r.profileHandler.ProfilePage)

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			if r.enableTestAuth {
				auth.POST("/test", r.authHandler.TestAuth)
			}
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		}

		profile := v1.Group("/profile")
		{
			profile.PUT("/me", r.authMiddleware.RequireAuth(), r.profileHandler.UpdateMyProfile)
			profile.GET("/:username", r.authMiddleware.OptionalAuth(), r.profileHandler.GetProfile)
			profile.GET("/:username/metadata", r.profileHandler.GetMetadata)
			profile.POST("/:username/follow", r.authMiddleware.RequireAuth(), r.profileHandler.ToggleFollow)
		}
	}

	return router
}
