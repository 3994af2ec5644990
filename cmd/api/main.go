package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nutrilink/nutrition-system/internal/api"
	"github.com/nutrilink/nutrition-system/internal/core/service"
	"github.com/nutrilink/nutrition-system/internal/infrastructure/config"
	mongodb "github.com/nutrilink/nutrition-system/internal/infrastructure/db/mongo"
	redisdb "github.com/nutrilink/nutrition-system/internal/infrastructure/db/redis"
	"github.com/nutrilink/nutrition-system/internal/infrastructure/queue"
	"github.com/nutrilink/nutrition-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// The sync pipeline is owned here: main controls the worker lifecycle,
	// the router only sees the enqueue interface.
	hydrationRepo := mongodb.NewHydrationRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	intakeService := service.NewIntakeService(hydrationRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.SyncWorkers, intakeService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewLinkRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewHydrationRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewMealRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewWorkoutRepository(db).EnsureIndexes(ctx)
}
