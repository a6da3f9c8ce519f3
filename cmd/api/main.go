package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cricstats/analytics-api/internal/config"
	"github.com/cricstats/analytics-api/internal/dataset"
	"github.com/cricstats/analytics-api/internal/handlers"
	"github.com/cricstats/analytics-api/internal/logic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	loc := dataset.NewLocator(cfg.DataRoot)
	if !loc.RootExists() {
		sugar.Warnw("Data root not found; all listings will be empty until the pipeline writes it",
			"data_root", cfg.DataRoot)
	}

	h := handlers.New(handlers.Config{
		Catalog:         loc,
		Dashboard:       logic.NewDashboardService(loc, logger, cfg.LeaderboardSize),
		Leaderboard:     logic.NewLeaderboardService(loc, logger),
		Players:         logic.NewPlayerService(loc, logger),
		Logger:          logger,
		AllowedOrigins:  cfg.AllowedOrigins,
		LeaderboardSize: cfg.LeaderboardSize,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		sugar.Infow("Starting analytics API",
			"port", cfg.Port, "env", cfg.Env, "data_root", cfg.DataRoot)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Infow("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
}
