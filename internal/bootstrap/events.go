package bootstrap

import (
	"log/slog"

	"github.com/osse101/SlotReveal_Go/internal/event"
	"github.com/osse101/SlotReveal_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and subscribes the
// metrics collector to spin lifecycle events.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)

	metrics.NewEventMetricsCollector().Register(eventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	return eventBus
}
