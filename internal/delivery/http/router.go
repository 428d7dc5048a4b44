package http

import (
	"github.com/databridge/dating-backend/internal/delivery/http/handler"
	"github.com/databridge/dating-backend/internal/delivery/http/middleware"
	"github.com/databridge/dating-backend/internal/domain"
	"github.com/databridge/dating-backend/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Router struct {
	userHandler         *handler.UserHandler
	interestHandler     *handler.InterestHandler
	photoHandler        *handler.PhotoHandler
	preferenceHandler   *handler.PreferenceHandler
	subscriptionHandler *handler.SubscriptionHandler
	likeHandler         *handler.LikeHandler
	matchHandler        *handler.MatchHandler
	discoveryHandler    *handler.DiscoveryHandler
	reportHandler       *handler.ReportHandler
	identity            *middleware.IdentityMiddleware
	staticDir           string
}

func NewRouter(
	userHandler *handler.UserHandler,
	interestHandler *handler.InterestHandler,
	photoHandler *handler.PhotoHandler,
	preferenceHandler *handler.PreferenceHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	likeHandler *handler.LikeHandler,
	matchHandler *handler.MatchHandler,
	discoveryHandler *handler.DiscoveryHandler,
	reportHandler *handler.ReportHandler,
	identity *middleware.IdentityMiddleware,
	staticDir string,
) *Router {
	return &Router{
		userHandler:         userHandler,
		interestHandler:     interestHandler,
		photoHandler:        photoHandler,
		preferenceHandler:   preferenceHandler,
		subscriptionHandler: subscriptionHandler,
		likeHandler:         likeHandler,
		matchHandler:        matchHandler,
		discoveryHandler:    discoveryHandler,
		reportHandler:       reportHandler,
		identity:            identity,
		staticDir:           staticDir,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/", healthHandler)
	router.HEAD("/", healthHandler)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Uploaded photos are served straight off disk.
	router.Static("/static", r.staticDir)

	// Public routes
	router.POST("/users/signup", r.userHandler.SignUp)
	router.GET("/interests/available", r.interestHandler.Available)

	// Everything else requires a resolved identity
	protected := router.Group("")
	protected.Use(r.identity.RequireIdentity())
	{
		users := protected.Group("/users")
		{
			users.PUT("/profile/:user_id", r.userHandler.UpdateProfile)
			users.GET("/:user_id", r.userHandler.GetUser)
		}

		interests := protected.Group("/interests")
		{
			interests.PUT("/users/:user_id", r.interestHandler.ReplaceUserInterests)
			interests.GET("/users/:user_id", r.interestHandler.GetUserInterests)
		}

		photos := protected.Group("/photos")
		{
			photos.POST("/users/:user_id", r.photoHandler.Upload)
			photos.GET("/users/:user_id", r.photoHandler.List)
			photos.DELETE("/:photo_id", r.photoHandler.Delete)
			photos.PUT("/:photo_id/set_primary", r.photoHandler.SetPrimary)
		}

		preferences := protected.Group("/preferences")
		{
			preferences.PUT("/me", r.preferenceHandler.UpsertMine)
			preferences.GET("/me", r.preferenceHandler.GetMine)
		}

		protected.PUT("/subscriptions/users/:user_id/upgrade", r.subscriptionHandler.Upgrade)
		protected.GET("/subscriptions/users/:user_id", r.subscriptionHandler.Current)

		likes := protected.Group("/likes")
		{
			likes.POST("", r.likeHandler.RecordLike)
			likes.GET("/received", r.likeHandler.LikesReceived)
		}

		matches := protected.Group("/matches")
		{
			matches.GET("", r.matchHandler.ListMatches)
			matches.GET("/potential_by_interest", r.discoveryHandler.PotentialByInterest)
		}

		protected.POST("/reports", r.reportHandler.Create)
		protected.GET("/reports/:report_id", r.reportHandler.Get)
	}

	return router
}

// registerValidations wires custom binding-tag validators into gin's
// validator engine.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
			return domain.ValidGender(fl.Field().String())
		})
	}
}
