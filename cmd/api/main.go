package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-backend/config"
	"github.com/jobtrail/jobtrail-backend/internal/bootstrap"
	"github.com/jobtrail/jobtrail-backend/internal/logging"
	"github.com/jobtrail/jobtrail-backend/internal/trello/client"
	"github.com/jobtrail/jobtrail-backend/internal/trello/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.Setup(cfg.App.LogLevel, cfg.App.Environment)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	statsCache := bootstrap.OpenStatsCache(ctx, cfg.Redis)

	trello := client.New(cfg.Trello.BaseURL, client.Credentials{
		APIKey: cfg.Trello.APIKey,
		Token:  cfg.Trello.Token,
	}, &http.Client{Timeout: 30 * time.Second})
	if cfg.Trello.APIKey == "" || cfg.Trello.Token == "" {
		log.Warn("TRELLO_API_KEY or TRELLO_TOKEN not set, board routes will fail until configured")
	}
	if cfg.Auth.APIKey == "" {
		log.Warn("API_KEY not set, bearer authentication disabled")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		APIKey:         cfg.Auth.APIKey,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		DB:             db,
		Cache:          statsCache,
		Boards:         service.NewBoardService(trello),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(log.Fields{
			"port":    cfg.Server.Port,
			"env":     cfg.App.Environment,
			"version": cfg.App.Version,
		}).Infof("%s listening", cfg.App.ServiceName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
		os.Exit(1)
	}
}
