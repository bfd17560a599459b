package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajaykumar8188/lubes-management/internal/api"
	"github.com/ajaykumar8188/lubes-management/internal/infrastructure/config"
	mongodb "github.com/ajaykumar8188/lubes-management/internal/infrastructure/db/mongo"
	redisdb "github.com/ajaykumar8188/lubes-management/internal/infrastructure/db/redis"
	"github.com/ajaykumar8188/lubes-management/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Run connects the datastores, builds the router, and serves until the
// process receives SIGINT/SIGTERM. When seed is set the starter accounts
// and catalog are loaded before the server accepts traffic.
func Run(ctx context.Context, cfg *config.Config, seed bool) error {
	log := logger.Get()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	if seed {
		if err := mongodb.Seed(ctx, db); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		log.Info().Msg("database seeded")
	}

	e, checkout := api.NewRouter(db, rdb, api.Options{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		CheckoutDelay: cfg.CheckoutDelay,
		Logger:        log,
	})

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront API listening")

	select {
	case err := <-errCh:
		checkout.Shutdown()
		return err
	case <-runCtx.Done():
	}

	log.Info().Msg("shutting down")

	// In-flight settlements first: a checkout timer must never fire into a
	// torn-down router.
	checkout.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
