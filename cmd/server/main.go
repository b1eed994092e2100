package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toyland-backend/internal/config"
	"toyland-backend/internal/database"
	"toyland-backend/internal/logging"
	"toyland-backend/internal/notify"
	"toyland-backend/internal/repository"
	"toyland-backend/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB; a failure here is fatal and not retried.
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	categoryRepo := repository.NewCategoryRepo(db)
	toyRepo := repository.NewToyRepo(db)
	feedbackRepo := repository.NewFeedbackRepo(db)

	// Ensure indexes
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := toyRepo.EnsureIndexes(indexCtx); err != nil {
		logging.Warn().Err(err).Msg("failed to create toy indexes")
	}
	if err := feedbackRepo.EnsureIndexes(indexCtx); err != nil {
		logging.Warn().Err(err).Msg("failed to create feedback indexes")
	}
	cancel()

	var notifier notify.Notifier = notify.NewLogNotifier()
	if cfg.Notify.ResendAPIKey != "" {
		notifier = notify.NewResendNotifier(cfg.Notify.ResendAPIKey, cfg.Notify.FromEmail, cfg.Notify.ToEmail)
	}
	if cfg.Auth.JWTSecret == "" {
		logging.Warn().Msg("AUTH_JWT_SECRET not set, listing writes are unauthenticated")
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.New(cfg, router.Deps{
			DB:         db,
			Categories: categoryRepo,
			Toys:       toyRepo,
			Feedback:   feedbackRepo,
			Notifier:   notifier,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if err := db.Close(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("MongoDB disconnect failed")
	}
}
