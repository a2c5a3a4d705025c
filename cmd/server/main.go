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

	"github.com/accounthub/user-service/internal/api"
	"github.com/accounthub/user-service/internal/core/service"
	mongostore "github.com/accounthub/user-service/internal/infrastructure/db/mongo"
	redisstore "github.com/accounthub/user-service/internal/infrastructure/db/redis"
	"github.com/accounthub/user-service/internal/pkg/config"
	"github.com/accounthub/user-service/pkg/logger"
)

// @title           User Management API
// @version         1.0
// @description     Username/password authentication, JWT-protected routes and user CRUD.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongostore.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongostore.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	// Redis is optional: without it last-login tracking is disabled and the
	// readiness probe skips the check.
	var tracker service.LoginTracker
	rdb, err := redisstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, last-login tracking disabled")
		rdb = nil
	} else {
		defer func() { _ = rdb.Close() }()
		tracker = redisstore.NewLoginTracker(rdb)
	}

	e := api.NewRouter(api.Deps{
		DB:      db,
		Redis:   rdb,
		Users:   userRepo,
		Tracker: tracker,
		Config:  cfg,
		Log:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
