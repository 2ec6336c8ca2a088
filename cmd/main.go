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

	"github.com/shenikar/transfusion_coordinator/internal/config"
	v1 "github.com/shenikar/transfusion_coordinator/internal/handler/http/v1"
	"github.com/shenikar/transfusion_coordinator/internal/jobs"
	"github.com/shenikar/transfusion_coordinator/internal/repository"
	"github.com/shenikar/transfusion_coordinator/internal/repository/memory"
	"github.com/shenikar/transfusion_coordinator/internal/service"
	"github.com/shenikar/transfusion_coordinator/internal/webhook"
	"github.com/shenikar/transfusion_coordinator/pkg/logger"
	"github.com/shenikar/transfusion_coordinator/pkg/postgres"
	redisclient "github.com/shenikar/transfusion_coordinator/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/transfusion_coordinator/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// repositories - набор хранилищ выбранного бэкенда
type repositories struct {
	events    service.EventRepository
	packs     service.PackRepository
	locations service.LocationRepository
	close     func()
}

// newRepositories выбирает бэкенд хранения по STORAGE_BACKEND
func newRepositories(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*repositories, error) {
	if cfg.StorageBackend == config.StorageMemory {
		log.Info("Using in-memory storage")
		store := memory.NewStore()
		return &repositories{
			events:    memory.NewEventRepository(store),
			packs:     memory.NewPackRepository(store),
			locations: memory.NewLocationRepository(store),
			close:     func() {},
		}, nil
	}

	log.Info("Running database migrations...")
	if err := postgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	log.Info("Database migrations applied successfully")

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")

	return &repositories{
		events:    repository.NewEventRepository(dbpool),
		packs:     repository.NewPackRepository(dbpool),
		locations: repository.NewLocationRepository(dbpool),
		close:     dbpool.Close,
	}, nil
}

// @title Transfusion Coordinator API
// @version 1.0
// @description Coordination of massive transfusion events, blood packs and runner locations.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := newRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer repos.close()

	// Уведомления об изменениях включаются только при заданном REDIS_ADDR
	var publisher webhook.Publisher = webhook.NopPublisher{}
	if cfg.NotificationsEnabled() {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisPublisher(redisClient)
		webhook.NewWorker(redisClient, log, cfg).Start(ctx)
	} else {
		log.Info("REDIS_ADDR is not set, change notifications are disabled")
	}

	// Инициализация сервисов
	clock := service.SystemClock{}
	locationService := service.NewLocationService(repos.locations, publisher, clock, log)
	eventService := service.NewEventService(repos.events, repos.packs, publisher, clock, log)
	packService := service.NewPackService(repos.packs, repos.events, locationService, publisher, clock, log)

	// Фоновая пометка устаревших позиций
	sweepJob := jobs.NewLocationSweepJob(locationService, cfg.LocationSweepSchedule, cfg.LocationStaleAfter, log)
	if err := sweepJob.Start(); err != nil {
		log.Fatalf("Failed to start location sweep job: %v", err)
	}
	defer sweepJob.Stop()

	// Инициализация хэндлеров
	handler := v1.NewHandler(eventService, packService, locationService, log)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("storage", cfg.StorageBackend).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	cancel()

	log.Info("Server gracefully stopped")
}
