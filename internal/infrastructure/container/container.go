package container

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/profile-page/internal/config"
	"github.com/gdugdh24/profile-page/internal/delivery/http"
	"github.com/gdugdh24/profile-page/internal/delivery/http/handler"
	"github.com/gdugdh24/profile-page/internal/delivery/http/middleware"
	"github.com/gdugdh24/profile-page/internal/delivery/http/render"
	"github.com/gdugdh24/profile-page/internal/infrastructure/database"
	"github.com/gdugdh24/profile-page/internal/infrastructure/server"
	"github.com/gdugdh24/profile-page/internal/repository/postgres"
	redisrepo "github.com/gdugdh24/profile-page/internal/repository/redis"
	"github.com/gdugdh24/profile-page/internal/usecase/auth"
	"github.com/gdugdh24/profile-page/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
	}

	router, err := NewRouter(cfg, db, redisClient, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Server = server.NewServer(&cfg.Server, router, logger)

	return c, nil
}

// NewRouter wires repositories, use cases and handlers into a gin engine
func NewRouter(cfg *config.Config, db *sqlx.DB, redisClient *redis.Client, logger *zap.Logger) (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	templates, err := render.NewTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTTL(),
	)

	profileUseCase := profile.NewProfileUseCase(
		userRepo,
		postRepo,
		followRepo,
		logger.Named("profile"),
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase, logger)
	profileHandler := handler.NewProfileHandler(profileUseCase, logger)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase, logger)

	router := http.NewRouter(
		authHandler,
		profileHandler,
		authMiddleware,
		templates,
		logger.Named("http"),
		!cfg.Server.IsProduction(),
	)

	return router.Setup(), nil
}

// Close closes all connections
func (c *Container) Close() error {
	var errs []error

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
