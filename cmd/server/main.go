package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/tutorlane/tutorlane-backend/internal/config"
	"github.com/tutorlane/tutorlane-backend/internal/database"
	"github.com/tutorlane/tutorlane-backend/internal/handler"
	"github.com/tutorlane/tutorlane-backend/internal/logger"
	"github.com/tutorlane/tutorlane-backend/internal/repository"
	"github.com/tutorlane/tutorlane-backend/internal/router"
	"github.com/tutorlane/tutorlane-backend/internal/service"
	"github.com/tutorlane/tutorlane-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Tutorlane Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
	} else {
		log.Warn().Msg("REDIS_URL not set, class list caching disabled")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	txManager := repository.NewPgxTxManager(pool)
	classRepo := repository.NewClassRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	parentRepo := repository.NewParentRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	subscriptionRepo := repository.NewSubscriptionRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	parentService := service.NewParentService(parentRepo)
	studentService := service.NewStudentService(studentRepo, parentRepo)
	classService := service.NewClassService(classRepo, rdb, cfg.ClassCacheTTL, log)
	registrationService := service.NewRegistrationService(txManager, registrationRepo, log)
	subscriptionService := service.NewSubscriptionService(txManager, subscriptionRepo, studentRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Parent:       handler.NewParentHandler(parentService),
		Student:      handler.NewStudentHandler(studentService),
		Class:        handler.NewClassHandler(classService),
		Registration: handler.NewRegistrationHandler(registrationService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
