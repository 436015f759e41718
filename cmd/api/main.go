package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cinescope/cinescope/internal/adapter/client"
	"github.com/cinescope/cinescope/internal/adapter/http/router"
	"github.com/cinescope/cinescope/internal/adapter/repository/memory"
	"github.com/cinescope/cinescope/internal/infrastructure/config"
	"github.com/cinescope/cinescope/internal/infrastructure/dataset"
	"github.com/cinescope/cinescope/internal/infrastructure/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Make the corpus available and load it
	dir, err := dataset.Ensure(&cfg.Dataset, log)
	if err != nil {
		log.Error("Failed to prepare dataset", zap.Error(err))
		return fmt.Errorf("failed to prepare dataset: %w", err)
	}
	ds, err := dataset.Load(dir, log)
	if err != nil {
		log.Error("Failed to load dataset", zap.Error(err))
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	store := memory.NewStore(ds)

	// Initialize the inference client. The server still starts when the
	// inference service is down; classification requests fail until the
	// operator starts it.
	ollama := client.NewOllamaClient(
		cfg.Classifier.BaseURL,
		cfg.Classifier.Model,
		time.Duration(cfg.Classifier.TimeoutSeconds)*time.Second,
	)
	classifier := client.NewGenreClassifier(ollama, cfg.Classifier.PromptTemplate)

	probeCtx, probeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := classifier.Ready(probeCtx); err != nil {
		log.Warn("Inference service not reachable, classification will fail until it is started",
			zap.String("base_url", cfg.Classifier.BaseURL), zap.Error(err))
	} else {
		log.Info("Inference service reachable",
			zap.String("base_url", cfg.Classifier.BaseURL),
			zap.String("model", cfg.Classifier.Model))
	}
	probeCancel()

	// Setup router
	r := router.Setup(store, classifier, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(cfg.Classifier.TimeoutSeconds+30) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
