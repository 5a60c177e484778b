package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/redmisiones/news-api/internal/api"
	"github.com/redmisiones/news-api/internal/api/metrics"
	"github.com/redmisiones/news-api/internal/core/auth"
	"github.com/redmisiones/news-api/internal/core/service"
	"github.com/redmisiones/news-api/internal/infrastructure/config"
	"github.com/redmisiones/news-api/internal/infrastructure/db/postgres"
	"github.com/redmisiones/news-api/internal/infrastructure/storage"
	"github.com/redmisiones/news-api/pkg/logger"
)

func main() {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	blobs, err := storage.NewS3Store(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create blob store client")
	}
	if err := blobs.EnsureBucket(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ensure bucket exists")
	}

	userRepo := postgres.NewUserRepository(pool)
	newsRepo := postgres.NewNewsRepository(pool)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.AuthProviderURL)

	e := api.NewRouter(api.Deps{
		Config:   cfg,
		Logger:   log,
		Pool:     pool,
		Users:    userRepo,
		Verifier: verifier,
		Auth:     service.NewAuthService(userRepo, issuer, verifier, log),
		UserSvc:  service.NewUserService(userRepo, log),
		News:     service.NewNewsService(newsRepo, metrics.TimedBlobStore{Next: blobs}, log),
		Blobs:    blobs,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("news api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
