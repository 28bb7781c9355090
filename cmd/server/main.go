package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"camptrack/internal/delivery"
	"camptrack/internal/infrastructure"
	"camptrack/internal/usecase"
	"camptrack/pkg/config"
	"camptrack/pkg/logger"
	"camptrack/pkg/metrics"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("Starting campaign tracker")

	m := metrics.New()

	store, err := infrastructure.NewSQLiteStore(cfg.Storage.Path, log)
	if err != nil {
		log.WithError(err).Error("Failed to open local store")
		os.Exit(1)
	}
	defer store.Close()

	bridge := infrastructure.NewPersistenceBridge(store, cfg.Storage.Entry, log, m)

	// A failed load is not fatal: the session starts with an empty
	// collection and the store stays usable.
	items, err := bridge.Load(context.Background())
	if err != nil {
		log.WithError(err).Warn("Failed to load persisted campaigns, starting empty")
		items = nil
	}

	campaignStore := usecase.NewCampaignStore(bridge, log, m)
	campaignStore.Initialize(items)

	handlers := delivery.NewHTTPHandlers(campaignStore, log, m)
	router := delivery.NewHTTPRouter(handlers, log, m, cfg.HTTP.RequestTimeout, cfg.HTTP.WriteRatePerSecond)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.SetupRoutes(),
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server shutdown error")
	} else {
		log.Info("Server gracefully stopped")
	}
}
