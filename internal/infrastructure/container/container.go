package container

import (
	"context"
	"fmt"

	"github.com/databridge/dating-backend/internal/config"
	"github.com/databridge/dating-backend/internal/delivery/http"
	"github.com/databridge/dating-backend/internal/delivery/http/handler"
	"github.com/databridge/dating-backend/internal/delivery/http/middleware"
	"github.com/databridge/dating-backend/internal/infrastructure/database"
	"github.com/databridge/dating-backend/internal/infrastructure/gemini"
	"github.com/databridge/dating-backend/internal/infrastructure/server"
	"github.com/databridge/dating-backend/internal/infrastructure/storage"
	"github.com/databridge/dating-backend/internal/logger"
	"github.com/databridge/dating-backend/internal/repository/postgres"
	"github.com/databridge/dating-backend/internal/usecase/discovery"
	"github.com/databridge/dating-backend/internal/usecase/interest"
	"github.com/databridge/dating-backend/internal/usecase/like"
	"github.com/databridge/dating-backend/internal/usecase/match"
	"github.com/databridge/dating-backend/internal/usecase/photo"
	"github.com/databridge/dating-backend/internal/usecase/preference"
	"github.com/databridge/dating-backend/internal/usecase/report"
	"github.com/databridge/dating-backend/internal/usecase/subscription"
	"github.com/databridge/dating-backend/internal/usecase/user"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.RunMigrations(&cfg.Database); err != nil {
		return nil, err
	}

	// Redis is optional; without it the interest catalog is read from
	// the database on every request.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
	}

	// Gemini is optional; without an API key matches are not enriched.
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("failed to initialize gemini client, match enrichment disabled", "error", err)
			geminiClient = nil
		}
	}

	photoStorage, err := storage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	interestRepo := postgres.NewInterestRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	preferenceRepo := postgres.NewPreferenceRepository(db)
	subscriptionRepo := postgres.NewSubscriptionRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	txManager := postgres.NewTxManager(db)

	// Initialize use cases
	userUseCase := user.NewUserUseCase(userRepo)
	interestUseCase := interest.NewInterestUseCase(interestRepo, userRepo, txManager, redisClient)
	photoUseCase := photo.NewPhotoUseCase(photoRepo, userRepo, txManager, photoStorage)
	preferenceUseCase := preference.NewPreferenceUseCase(preferenceRepo, userRepo)
	subscriptionUseCase := subscription.NewSubscriptionUseCase(subscriptionRepo, userRepo)
	reportUseCase := report.NewReportUseCase(reportRepo, userRepo)
	matchUseCase := match.NewMatchUseCase(matchRepo, userRepo)

	var enricher like.AIEnricher
	if geminiClient != nil {
		enricher = geminiClient
	}
	likeUseCase := like.NewLikeUseCase(
		likeRepo,
		matchRepo,
		userRepo,
		interestRepo,
		txManager,
		enricher,
	)

	discoveryUseCase := discovery.NewDiscoveryUseCase(
		userRepo,
		likeRepo,
		matchRepo,
		interestRepo,
		cfg.Discovery.EmptyInterestsPolicy,
	)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userUseCase)
	interestHandler := handler.NewInterestHandler(interestUseCase)
	photoHandler := handler.NewPhotoHandler(photoUseCase)
	preferenceHandler := handler.NewPreferenceHandler(preferenceUseCase)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionUseCase)
	likeHandler := handler.NewLikeHandler(likeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase)
	reportHandler := handler.NewReportHandler(reportUseCase)

	// Initialize middleware
	identity := middleware.NewIdentityMiddleware(cfg.Auth.Mode, cfg.Auth.JWTSecret)

	// Initialize router
	router := http.NewRouter(
		userHandler,
		interestHandler,
		photoHandler,
		preferenceHandler,
		subscriptionHandler,
		likeHandler,
		matchHandler,
		discoveryHandler,
		reportHandler,
		identity,
		cfg.Storage.Path,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("error closing redis", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
