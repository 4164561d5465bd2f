package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"story-platform/internal/config"
	"story-platform/internal/handler"
	"story-platform/internal/infrastructure/storage"
	"story-platform/internal/logger"
	"story-platform/internal/metrics"
	"story-platform/internal/middleware"
	"story-platform/internal/repository"
	"story-platform/internal/service"
	"story-platform/internal/validator"
)

func main() {
	// Load .env if present; real environment wins over file values
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	if err := storage.EnsureDataDir(cfg.DataDir); err != nil {
		logger.Fatal("Failed to prepare data directory",
			slog.String("data_dir", cfg.DataDir),
			slog.String("error", err.Error()))
	}

	// Initialize repositories
	storyRepo := repository.NewFileStoryRepository(cfg.DataDir, cfg.StoriesFile)
	commentRepo := repository.NewFileCommentRepository(cfg.DataDir, cfg.CommentsFile)
	interactionRepo := repository.NewFileInteractionRepository(cfg.DataDir, cfg.InteractionsFile)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	statsService := service.NewStatsService(storyRepo, commentRepo, interactionRepo)
	interactionService := service.NewInteractionService(interactionRepo, statsService, v)
	storyService := service.NewStoryService(storyRepo, commentRepo, interactionRepo, statsService, v)

	// Start collection size metrics collector
	storeStatsCollector := metrics.NewStoreStatsCollector(statsService)
	storeStatsCollector.Start(30 * time.Second)
	defer storeStatsCollector.Stop()

	// Initialize handlers
	storyHandler := handler.NewStoryHandler(storyService, statsService)
	commentHandler := handler.NewCommentHandler(storyService)
	interactionHandler := handler.NewInteractionHandler(interactionService)
	healthHandler := handler.NewHealthHandler(cfg.DataDir)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		stories := v1.Group("/stories")
		{
			stories.GET("", storyHandler.ListStories)
			stories.POST("", storyHandler.CreateStory)
			stories.GET("/:id", storyHandler.GetStory)
			stories.PUT("/:id", storyHandler.UpdateStory)
			stories.DELETE("/:id", storyHandler.DeleteStory)
			stories.POST("/:id/publish", storyHandler.TogglePublish)
			stories.POST("/:id/view", storyHandler.IncrementView)
			stories.GET("/:id/stats", storyHandler.GetStoryStats)

			stories.GET("/:id/comments", commentHandler.ListComments)
			stories.POST("/:id/comments", commentHandler.AddComment)

			stories.POST("/:id/like", interactionHandler.ToggleLike)
			stories.GET("/:id/likes", interactionHandler.GetLikes)
			stories.POST("/:id/rating", interactionHandler.RateStory)
			stories.GET("/:id/interaction", interactionHandler.GetUserInteraction)
		}

		comments := v1.Group("/comments")
		{
			comments.PUT("/:id", commentHandler.EditComment)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("data_dir", cfg.DataDir))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
