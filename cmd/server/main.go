// @title          Empuls HR API
// @version        1.0
// @description    HR and payroll back-office API: users, roles, work logs and salary payments.
// @host           localhost:5000
// @BasePath       /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/api"
	mongodb "github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/infrastructure/db/mongo"
	redisdb "github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/infrastructure/db/redis"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/pkg/config"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Pretty: true})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "empuls-server",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.ConnectionURI(),
		Database: cfg.Mongo.Database,
		MaxPool:  cfg.Mongo.MaxPool,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	e := api.NewRouter(api.NewRepositories(db, rdb), api.Options{
		TokenSecret: cfg.TokenSecret,
		TokenTTL:    cfg.TokenTTL,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      logger.Component("http"),
		Registerer:  prometheus.DefaultRegisterer,
		Health:      api.HealthDependencies(db, rdb),
	})

	addr := net.JoinHostPort("", cfg.Port)
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server running")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
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
