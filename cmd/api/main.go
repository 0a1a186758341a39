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

	"github.com/thingful/thingful-api/internal/api"
	"github.com/thingful/thingful-api/internal/infrastructure/config"
	redisinfra "github.com/thingful/thingful-api/internal/infrastructure/db/redis"
	"github.com/thingful/thingful-api/internal/infrastructure/db/sqlstore"
	"github.com/thingful/thingful-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	db, err := sqlstore.Open(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	router := api.Options{
		DB:          db,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		BcryptCost:  cfg.BcryptCost,
		HashWorkers: cfg.HashWorkers,
		CacheTTL:    cfg.Redis.CacheTTL,
		Logger:      log,
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redisinfra.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer rdb.Close()
		router.Redis = rdb
	} else {
		log.Info().Msg("redis not configured, things cache disabled")
	}

	e := api.NewRouter(router)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
