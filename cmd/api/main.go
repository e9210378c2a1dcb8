package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/thrishank/jup-ag-sdk/internal/cache"
	"github.com/thrishank/jup-ag-sdk/internal/config"
	"github.com/thrishank/jup-ag-sdk/internal/server"
	"github.com/thrishank/jup-ag-sdk/internal/storage"
	"github.com/thrishank/jup-ag-sdk/jup"
)

// env bootstrap function
func loadEnv(logger *logrus.Logger) {
	// Get the project root directory (where go.mod is)
	_, filename, _, _ := runtime.Caller(0)
	projectRoot := filepath.Join(filepath.Dir(filename), "../..")
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		logger.Warnf("no .env file found at %s, using system environment variables", envPath)
	} else {
		logger.Infof("loaded .env from %s", envPath)
	}
}

// main is the entry point for the API facade
// It initializes all dependencies and starts the HTTP server with graceful shutdown
func main() {
	// Initialize structured logger with custom formatting
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)

	// load .env BEFORE anything reads os.Getenv
	loadEnv(logger)

	// Load and validate configuration from environment variables
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown (Ctrl+C, SIGTERM)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	// Aggregator client shared by all handlers
	jupClient := jup.NewClient(cfg.JupiterBaseURL).
		WithTimeout(cfg.HTTPTimeout).
		WithLogger(logger)

	// Price cache and pub/sub are optional; the facade degrades to
	// upstream-only lookups when Redis is down.
	var priceCache storage.PriceCache
	var pubsub *cache.PubSubManager
	rcache := cache.NewRedisCache(cfg.RedisAddr, cfg.PriceCacheTTL)
	if _, _, err := rcache.GetPrice(ctx, "startup-probe"); err != nil {
		logger.WithError(err).Warn("Redis unavailable, price caching disabled")
		_ = rcache.Close()
	} else {
		priceCache = rcache
		pubsub = cache.NewPubSubManager(cfg.RedisAddr, logger)
		defer func() {
			_ = rcache.Close()
			_ = pubsub.Close()
		}()
	}

	// Quote audit log is opt-in
	var quoteStore storage.QuoteStore
	if cfg.QuoteLogEnabled {
		store, err := storage.NewClickHouseStore(storage.ClickHouseOptions{
			Addr:     cfg.ClickHouseAddr,
			Database: cfg.ClickHouseDatabase,
			Username: cfg.ClickHouseUsername,
			Password: cfg.ClickHousePassword,
		})
		if err != nil {
			logger.WithError(err).Warn("ClickHouse unavailable, quote audit log disabled")
		} else {
			quoteStore = store
			defer func() {
				_ = store.Close()
			}()
		}
	}

	// Create handlers with all dependencies injected
	h := &server.Handlers{
		Jup:     jupClient,
		Cache:   priceCache,
		PubSub:  pubsub,
		Quotes:  quoteStore,
		DevMode: cfg.DevMode,
		Logger:  logger,
	}

	// Create HTTP server with configuration and handlers
	srv, err := server.NewServer(server.ServerDeps{
		Handlers: h,
		Config: server.ServerConfig{
			Addr:    cfg.APIAddr,
			DevMode: cfg.DevMode,
			APIKey:  cfg.APIKey,
		},
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create http server")
	}

	// Setup graceful shutdown in a separate goroutine
	go func() {
		<-sigCh // Wait for shutdown signal
		logger.Info("shutting down")
		cancel()                               // Cancel context to stop ongoing operations
		_ = srv.Shutdown(context.Background()) // Gracefully shutdown HTTP server
	}()

	// Start the HTTP server
	logger.WithField("addr", cfg.APIAddr).Info("api server starting")
	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("api server failed")
	}

	// Wait for server to be fully shut down
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer waitCancel()
	if err := srv.WaitClosed(waitCtx); err != nil {
		fmt.Println(err)
	}
}
