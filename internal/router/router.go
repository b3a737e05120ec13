package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tutorlane/tutorlane-backend/internal/config"
	"github.com/tutorlane/tutorlane-backend/internal/handler"
	"github.com/tutorlane/tutorlane-backend/internal/middleware"
	"github.com/tutorlane/tutorlane-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Parent       *handler.ParentHandler
	Student      *handler.StudentHandler
	Class        *handler.ClassHandler
	Registration *handler.RegistrationHandler
	Subscription *handler.SubscriptionHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID and request-scoped logger middleware globally.
	router.Use(response.RequestIDMiddleware())
	router.Use(response.LoggerMiddleware(log))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for mutating endpoints, per IP.
	writeLimiter := middleware.NewRateLimiter(cfg.WriteRatePerMin, time.Minute)
	limited := writeLimiter.Middleware()

	api := router.Group("/api")
	{
		parent := api.Group("/parent")
		{
			parent.POST("", limited, handlers.Parent.Create)
			parent.GET("", handlers.Parent.List)
			parent.GET("/:id", handlers.Parent.GetByID)
		}

		student := api.Group("/student")
		{
			student.POST("", limited, handlers.Student.Create)
			student.GET("", handlers.Student.List)
			student.GET("/:id", handlers.Student.GetByID)
		}

		class := api.Group("/class")
		{
			class.POST("", limited, handlers.Class.Create)
			class.GET("", handlers.Class.List)
		}

		registration := api.Group("/class-registration")
		{
			registration.POST("/:class_id/register", limited, handlers.Registration.Register)
			registration.GET("/student/:student_id", handlers.Registration.ListByStudent)
		}

		subscription := api.Group("/subscription")
		{
			subscription.POST("", limited, handlers.Subscription.Create)
			subscription.PATCH("/:id/use", limited, handlers.Subscription.UseSession)
			subscription.GET("/:id", handlers.Subscription.GetByID)
			subscription.GET("/student/:student_id/subscriptions", handlers.Subscription.ListByStudent)
		}
	}

	return router
}
