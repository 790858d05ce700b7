package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobdeck/jobboard-api/internal/api"
	"github.com/jobdeck/jobboard-api/internal/core/service"
	"github.com/jobdeck/jobboard-api/internal/infrastructure/config"
	mongodb "github.com/jobdeck/jobboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/jobdeck/jobboard-api/internal/infrastructure/db/redis"
	"github.com/jobdeck/jobboard-api/internal/infrastructure/queue"
	"github.com/jobdeck/jobboard-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Notification pipeline ---
	notificationRepo := mongodb.NewNotificationRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	notificationService := service.NewNotificationService(notificationRepo, dedup, log)

	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(db, rdb, cfg, log, notificationService, dispatcher)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
