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

	"journal-server/internal/ai"
	"journal-server/internal/config"
	"journal-server/internal/database"
	"journal-server/internal/handler"
	appLogger "journal-server/internal/logger"
	appMiddleware "journal-server/internal/middleware"
	"journal-server/internal/repository"
	"journal-server/internal/service"
	"journal-server/internal/usage"
	"journal-server/migrations"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := appLogger.New(appLogger.Config{
		Level:    cfg.LogLevel,
		Encoding: "json",
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	zap.L().Info("Configuration loaded", zap.String("env", cfg.Env), zap.String("logLevel", cfg.LogLevel))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pgPool, err := database.NewPgxPool(ctx, cfg.GetDSN(), cfg.DBMaxConns)
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgPool.Close()
	zap.L().Info("Connected to PostgreSQL")

	migrator := database.NewMigrator(database.MigratorConfig{
		MigrationsPath: ".",
		MigrationsFS:   migrations.FS,
	}, pgPool)
	if err := migrator.Up(ctx); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}

	// --- Dependency injection ---
	storyRepo := repository.NewPgStoryRepository(pgPool, logger)
	detailsRepo := repository.NewPgStoryDetailsRepository(pgPool, logger)
	versionRepo := repository.NewPgStoryVersionRepository(pgPool, logger)
	coachRepo := repository.NewPgCoachNotesRepository(pgPool, logger)

	aiClient, err := ai.NewClient(ai.Config{
		APIKey:  cfg.AIAPIKey,
		BaseURL: cfg.AIBaseURL,
		Model:   cfg.AIModel,
		Timeout: cfg.AITimeout,
	}, logger)
	if err != nil {
		zap.L().Fatal("Failed to create AI client", zap.Error(err))
	}

	tracker := usage.NewTracker(logger)
	storySvc := service.NewStoryService(storyRepo, detailsRepo, logger)
	analysisSvc := service.NewAnalysisService(aiClient, detailsRepo, versionRepo, coachRepo, tracker, cfg.AIModel, logger)

	verifier, err := appMiddleware.NewJWTVerifier(cfg.JWTSecret, logger)
	if err != nil {
		zap.L().Fatal("Failed to create JWT verifier", zap.Error(err))
	}

	storyHandler := handler.NewStoryHandler(storySvc, analysisSvc, logger)

	// --- HTTP server (gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(appMiddleware.ZapLogger(logger))
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	prom := ginprometheus.NewPrometheus("gin")
	prom.Use(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	storyHandler.RegisterRoutes(router, appMiddleware.Auth(verifier, logger))

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exited")
}
