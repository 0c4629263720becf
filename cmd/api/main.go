package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/choremarket/chore-api/internal/api"
	"github.com/choremarket/chore-api/internal/core/ports"
	"github.com/choremarket/chore-api/internal/core/service"
	"github.com/choremarket/chore-api/internal/infrastructure/config"
	"github.com/choremarket/chore-api/internal/infrastructure/db/memory"
	"github.com/choremarket/chore-api/internal/infrastructure/db/redis"
	"github.com/choremarket/chore-api/pkg/logger"
)

const janitorInterval = time.Minute

// @title			Chore Market API
// @version		1.0
// @description	Matches short paid chores posted by requesters with nearby providers.
// @BasePath		/
//
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// All registries are in-process; state does not survive a restart.
	accountRepo := memory.NewAccountRepository()
	choreRepo := memory.NewChoreRepository()
	sessions := memory.NewSessionStore(cfg.SessionTTL)
	go sessions.Janitor(ctx, janitorInterval)

	var (
		limiter ports.AdmissionController
		rdb     *goredis.Client
	)
	if cfg.Redis.Addr != "" {
		var err error
		rdb, err = redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		limiter = redis.NewFixedWindowLimiter(rdb, cfg.RateLimit.Window, cfg.RateLimit.Max)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("rate limiting backed by redis")
	} else {
		memLimiter := memory.NewFixedWindowLimiter(cfg.RateLimit.Window, cfg.RateLimit.Max)
		go memLimiter.Janitor(ctx, janitorInterval)
		limiter = memLimiter
		log.Info().Msg("rate limiting backed by in-process fixed window")
	}

	accounts := service.NewAccountService(accountRepo, sessions, log)
	chores := service.NewChoreService(choreRepo, cfg.SearchRadiusKm, log)

	e := api.NewRouter(api.Dependencies{
		Accounts: accounts,
		Chores:   chores,
		Sessions: sessions,
		Limiter:  limiter,
		Redis:    rdb,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting chore market api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
