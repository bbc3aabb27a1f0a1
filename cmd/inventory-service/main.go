// Command inventory-service runs the stock service: public per-product
// stock reads and admin-only record management.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickcart/commerce-platform/internal/api"
	"github.com/quickcart/commerce-platform/internal/infrastructure/config"
	mongodb "github.com/quickcart/commerce-platform/internal/infrastructure/db/mongo"
	"github.com/quickcart/commerce-platform/pkg/logger"
)

const (
	serviceName = "inventory-service"
	defaultPort = "5003"
)

func main() {
	cfg := config.Load(defaultPort)
	log := logger.Init(logger.Options{
		Service: serviceName,
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.NewInventoryRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create inventory indexes")
	}

	e := api.NewInventoryRouter(db, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("inventory service listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
