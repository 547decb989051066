package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/app"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/config"
	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := application.Run(); err != nil {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	slog.Info("pro-rooms started", "port", cfg.AppPort)

	<-ctx.Done() // wait for Ctrl+C

	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("pro-rooms stopped cleanly")
}
