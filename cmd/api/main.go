package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/balitech/backend/internal/config"
	"github.com/balitech/backend/internal/database"
	"github.com/balitech/backend/internal/handlers"
	"github.com/balitech/backend/internal/logger"
	"github.com/balitech/backend/internal/middleware"
	"github.com/balitech/backend/internal/router"
	"github.com/balitech/backend/internal/security"
	"github.com/balitech/backend/internal/services"
	"github.com/balitech/backend/internal/storage"
)

func main() {
	// .env is a local-dev convenience; deployed environments set real
	// environment variables.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.Connect(cfg.DatabaseURL)

	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	contactService := services.NewContactService(db)

	sessions := security.NewSessionProvider(cfg.JWTSecret, cfg.SessionTTL)
	csrf := security.NewCSRFProvider(cfg.JWTSecret)
	credentials := security.NewEnvCredentials(cfg.AdminUsername, cfg.AdminPassword)

	uploader, err := storage.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.UploadFolder)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure Cloudinary")
	}

	var limiter middleware.Limiter
	if cfg.RedisAddr != "" {
		limiter = middleware.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis rate limiter")
	} else {
		limiter = middleware.NewRateLimiter()
	}

	r := router.New(router.Dependencies{
		Jobs:         handlers.NewJobHandler(jobService),
		Applications: handlers.NewApplicationHandler(applicationService),
		Contacts:     handlers.NewContactHandler(contactService),
		Admin:        handlers.NewAdminHandler(credentials, sessions, csrf, cfg.IsProduction()),
		Upload:       handlers.NewUploadHandler(uploader),

		Auth: middleware.NewAuthMiddleware(sessions),
		CSRF: middleware.NewCSRFMiddleware(csrf),

		Limiter:    limiter,
		RateLimit:  cfg.RateLimit,
		RateWindow: cfg.RateWindow,

		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server stopped")
}
