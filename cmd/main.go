package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/placement-system/brackets"
	"github.com/Dosada05/placement-system/config"
	"github.com/Dosada05/placement-system/db"
	_ "github.com/Dosada05/placement-system/docs"
	"github.com/Dosada05/placement-system/handlers"
	"github.com/Dosada05/placement-system/pubsub"
	"github.com/Dosada05/placement-system/repositories"
	api "github.com/Dosada05/placement-system/routes"
	"github.com/Dosada05/placement-system/services"
	"github.com/Dosada05/placement-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

const shutdownTimeout = 15 * time.Second

// @title Placement System API
// @version 1.0
// @description Генерация матчей за места по итогам группового этапа.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Архив снимков сетки в Cloudflare R2 необязателен
	var uploader storage.FileUploader
	if cfg.R2.IsComplete() {
		uploader, err = storage.NewCloudflareR2Uploader(context.Background(), cfg.R2)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Warn("Cloudflare R2 is not configured, placement snapshots are disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// События дублируются в NATS JetStream, если он настроен
	var natsPublisher *pubsub.NATSPublisher
	if cfg.NATSURL != "" {
		natsPublisher, err = pubsub.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubjectPrefix, logger)
		if err != nil {
			logger.Error("failed to initialize NATS publisher", slog.Any("error", err))
			os.Exit(1)
		}
		defer natsPublisher.Close()
		logger.Info("NATS publisher initialized", slog.String("subject_prefix", cfg.NATSSubjectPrefix))
	}
	broadcaster := pubsub.NewFanout(wsHub)
	if natsPublisher != nil {
		broadcaster = pubsub.NewFanout(wsHub, natsPublisher)
	}

	// Инициализация репозиториев
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	standingRepo := repositories.NewPostgresGroupStandingRepository(dbConn)
	settingsRepo := repositories.NewPostgresPlacementSettingsRepository(dbConn)
	placementMatchRepo := repositories.NewPostgresPlacementMatchRepository(dbConn)

	placementService := services.NewPlacementService(
		db.NewTxRunner(dbConn),
		tournamentRepo,
		standingRepo,
		settingsRepo,
		placementMatchRepo,
		broadcaster,
		uploader,
		logger,
	)

	placementHandler := handlers.NewPlacementHandler(placementService, logger)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger)

	router := chi.NewRouter()
	api.SetupRoutes(router, placementHandler, webSocketHandler, api.Options{
		JWTSecret:          []byte(cfg.JWTSecretKey),
		CORSOrigins:        cfg.CORSAllowedOrigins,
		WriteRatePerMinute: cfg.WriteRateLimitPerMinute,
		WriteRateBurst:     cfg.WriteRateLimitBurst,
	})
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
