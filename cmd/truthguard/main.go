package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"truthguard/internal/analyze"
	"truthguard/internal/api"
	"truthguard/internal/config"
	"truthguard/internal/extract"
	"truthguard/internal/monitoring"
	"truthguard/internal/search"
	"truthguard/internal/storage"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	// Initialize Storage Layer
	store, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open report store", zap.Error(err))
	}
	defer store.Close()

	// Initialize Monitoring and Pipeline Components
	metrics := monitoring.NewMetrics()
	fetchTimeout := time.Duration(cfg.FetchTimeout) * time.Second
	extractor := extract.NewExtractor(fetchTimeout, metrics, logger)
	analyzer := analyze.NewAnalyzer(logger)
	searcher := search.NewClient(cfg.SerpAPIKey, cfg.SearchResultLimit, fetchTimeout, metrics, logger)

	// Initialize API Server
	server := api.NewServer(cfg, store, extractor, analyzer, searcher, metrics, logger)

	// Graceful Shutdown
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
