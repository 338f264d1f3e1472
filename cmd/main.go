package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dailyenglish/backend/docs"
	"github.com/dailyenglish/backend/internal/config"
	"github.com/dailyenglish/backend/internal/handlers"
	"github.com/dailyenglish/backend/internal/llm"
	"github.com/dailyenglish/backend/internal/logger"
	"github.com/dailyenglish/backend/internal/middlewares"
	"github.com/dailyenglish/backend/internal/scheduler"
	"github.com/dailyenglish/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 1 * 1024 * 1024 // 1MB is plenty for lesson payloads

// @title Daily English API
// @version 1.0
// @description API for generating translation challenges and sending them to Discord

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Daily English Service")

	// Initialize the generator client
	provider, err := llm.NewClient(llm.Config{
		APIKey:  cfg.OpenRouter.APIKey,
		BaseURL: cfg.OpenRouter.BaseURL,
		Model:   cfg.OpenRouter.Model,
		Referer: cfg.App.BaseURL,
		Title:   cfg.App.Title,
	})
	if err != nil {
		logger.Logger.Fatal("Failed to initialize generator client", zap.Error(err))
	}

	// Initialize services
	generationConfig := services.GenerationConfig{
		MaxTokens:   cfg.OpenRouter.MaxTokens,
		Temperature: cfg.OpenRouter.Temperature,
	}
	lessonService := services.NewLessonService(provider, generationConfig, logger.Logger)
	discordService := services.NewDiscordService(&http.Client{Timeout: 30 * time.Second}, logger.Logger)
	reportService := services.NewReportService(
		discordService,
		cfg.Discord.ReportWebhookURL,
		cfg.Discord.ChallengeStartDate,
		logger.Logger,
	)

	// Initialize handlers
	challengeHandler := handlers.NewChallengeHandler(lessonService, discordService, cfg.Discord.Webhooks, logger.Logger)
	discordHandler := handlers.NewDiscordHandler(discordService, cfg.Discord.Webhooks, logger.Logger)
	reportHandler := handlers.NewReportHandler(reportService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggingMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		challengeHandler.RegisterRoutes(r)
		discordHandler.RegisterRoutes(r)
		reportHandler.RegisterRoutes(r)
	})

	// Start the in-process cron jobs when enabled
	if cfg.Scheduler.Enabled {
		jobs := scheduler.New(
			scheduler.Config{
				ChallengeTime: cfg.Scheduler.ChallengeTime,
				ReportTime:    cfg.Scheduler.ReportTime,
			},
			lessonService,
			discordService,
			reportService,
			cfg.Discord.Webhooks,
			logger.Logger,
		)
		if err := jobs.Start(); err != nil {
			logger.Logger.Fatal("Failed to start scheduler", zap.Error(err))
		}
		defer jobs.Stop()

		logger.Logger.Info("Scheduler started",
			zap.String("challenge_time", cfg.Scheduler.ChallengeTime),
			zap.String("report_time", cfg.Scheduler.ReportTime),
		)
	}

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generation requests can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
