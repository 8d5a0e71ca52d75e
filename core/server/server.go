package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guestdesk/core/cache"
	"guestdesk/core/config"
	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/core/middleware"
	"guestdesk/core/queue"
	"guestdesk/core/storage"
	"guestdesk/modules/auth"
	"guestdesk/modules/checkin"
	"guestdesk/modules/document"
	"guestdesk/modules/event"
	"guestdesk/modules/guest"
	"guestdesk/modules/notification"
	"guestdesk/modules/report"
	"guestdesk/modules/task"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	redisCache, err := cache.InitCache(cache.CacheConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	store, err := storage.InitStorage(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	queueConfig := queue.QueueConfig{
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
	}
	queueClient := queue.NewClient(queueConfig)
	defer queueClient.Close()

	worker := queue.NewWorker(queueConfig)
	if err := worker.Start(); err != nil {
		return fmt.Errorf("start queue worker: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware(redisCache)
	api := e.Group("/api/v1")

	auth.Init(api, &db, redisCache, mw)
	event.Init(api, &db, mw)
	guest.Init(api, &db, mw)
	checkInService := checkin.Init(api, &db, mw)
	notificationService := notification.Init(api, &db, mw)
	taskService := task.Init(api, &db, mw, queueClient, notificationService)
	document.Init(api, &db, mw, store)
	report.Init(api, &db, mw, checkInService, taskService, redisCache)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
