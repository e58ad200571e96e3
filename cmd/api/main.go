package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/glowmart/cosmetics-backend/api/routes"
	internalauth "github.com/glowmart/cosmetics-backend/internal/auth"
	"github.com/glowmart/cosmetics-backend/internal/catalog"
	"github.com/glowmart/cosmetics-backend/internal/operators"
	"github.com/glowmart/cosmetics-backend/pkg/config"
	"github.com/glowmart/cosmetics-backend/pkg/db"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
	"github.com/glowmart/cosmetics-backend/pkg/metrics"
	"github.com/glowmart/cosmetics-backend/pkg/migrate"
	"github.com/glowmart/cosmetics-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// The catalog cache is optional. Without a configured endpoint the
	// public reads go straight to Postgres.
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	operatorRepo, err := operators.NewRepository(dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create operator repository", err)
		os.Exit(1)
	}

	authService, err := internalauth.NewService(operatorRepo, cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	catalogRepo, err := catalog.NewRepository(dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog repository", err)
		os.Exit(1)
	}

	var cache catalog.Cache
	if redisClient != nil {
		cache = redisClient
	}
	catalogService, err := catalog.NewService(catalogRepo, cache, cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	var cachePinger redis.Pinger
	if redisClient != nil {
		cachePinger = redisClient
	}

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, cachePinger, httpMetrics, authService, catalogService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
