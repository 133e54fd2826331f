package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/clintrovert/readmeforge/internal/api/rest"
	"github.com/clintrovert/readmeforge/internal/config"
	"github.com/clintrovert/readmeforge/internal/generator"
	"github.com/clintrovert/readmeforge/internal/github"
	"github.com/clintrovert/readmeforge/internal/readme"
	"github.com/clintrovert/readmeforge/internal/selector"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer logger.Sync()

	// .env is optional; deployed environments set variables directly.
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded environment from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.SecretGenerated {
		logger.Warn("SECRET_KEY not set, using an ephemeral secret; sessions will not survive restarts")
	}

	// Create generation client
	var gen generator.Generator
	switch cfg.Provider {
	case config.ProviderOpenAI:
		gen = generator.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	default:
		gen, err = generator.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Fatal("failed to create gemini client", zap.Error(err))
		}
	}

	// Create GitHub client and pipeline
	githubClient := github.NewClient(cfg.GitHubToken, cfg.RequestTimeout, logger)
	fileSelector := selector.New(githubClient, logger)
	service := readme.NewService(githubClient, fileSelector, gen, logger)

	// Create REST API handler
	handler := rest.NewHandler(service, rest.NewSessionManager(cfg.SecretKey), logger)

	// Setup REST API
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(cfg.RequestTimeout))
	handler.RegisterRoutes(router)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Start REST server
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		logger.Info("starting REST API server",
			zap.String("address", cfg.ListenAddr),
			zap.String("provider", cfg.Provider),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start REST server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down cleanly", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
