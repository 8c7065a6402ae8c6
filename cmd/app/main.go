package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/SlotReveal_Go/docs"
	"github.com/osse101/SlotReveal_Go/internal/bootstrap"
	"github.com/osse101/SlotReveal_Go/internal/config"
	"github.com/osse101/SlotReveal_Go/internal/server"
)

// @title Slot Reveal API
// @version 1.0
// @description Outcome engine for a three-reel slot machine.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	eventBus := bootstrap.InitializeEventSystem()

	slotsService, err := bootstrap.NewSlotsService(cfg, cat, eventBus)
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Detector: server.NewSuspiciousActivityDetector(
			server.WithRateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow),
		),
	}, slotsService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sc:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{SlotsService: slotsService})
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:       srv,
		SlotsService: slotsService,
	})
	return nil
}
