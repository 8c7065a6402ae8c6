package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/SlotReveal_Go/internal/server"
	"github.com/osse101/SlotReveal_Go/internal/slots"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	SlotsService slots.Service
}

// GracefulShutdown stops the HTTP server first so no new spins arrive, then
// drains the outcome engine's pending event publishes.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.SlotsService != nil {
		shutdownService(ctx, ServiceNameSlots, components.SlotsService)
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
