package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"recipe-scraper/internal/api"
	"recipe-scraper/internal/config"
	"recipe-scraper/internal/fetch"
	"recipe-scraper/internal/monitoring"
	"recipe-scraper/internal/scraper"
	"recipe-scraper/internal/storage"
	"recipe-scraper/internal/translate"
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
	pgStore, err := storage.NewPostgresStore(cfg.PostgresURL)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	redisStore := storage.NewRedisStore(cfg.RedisAddr)

	// Initialize Monitoring
	metrics := monitoring.NewMetrics()

	// Initialize Fetcher and Translator
	var fetcher fetch.DocumentFetcher = fetch.NewClient(cfg)
	if cfg.RenderJS {
		renderer := fetch.NewRenderer(cfg)
		defer renderer.Close()
		fetcher = renderer
	}
	translator := translate.NewGoogle(cfg, redisStore, logger, metrics)

	// Initialize Core Scraper
	coreScraper := scraper.NewScraper(cfg, fetcher, translator, pgStore, redisStore, metrics, logger)
	coreScraper.Start()

	// Initialize API Server
	server := api.NewServer(cfg, coreScraper, pgStore, redisStore, metrics, logger)

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

	coreScraper.Stop()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
