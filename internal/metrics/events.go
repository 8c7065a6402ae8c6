package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/SlotReveal_Go/internal/domain"
	"github.com/osse101/SlotReveal_Go/internal/event"
	"github.com/osse101/SlotReveal_Go/internal/logger"
)

// EventMetricsCollector subscribes to spin events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all spin events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{event.SpinResolved, event.SpinSettled, event.SpinFailed} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event. Undecodable payloads count as handler errors.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinResolved:
		err = recordResolved(evt.Payload)
	case event.SpinSettled:
		err = recordSettled(evt.Payload)
	case event.SpinFailed:
		err = recordFailed(evt.Payload)
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return err
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordResolved(raw interface{}) error {
	p, err := event.DecodePayload[domain.SpinResolvedPayload](raw)
	if err != nil {
		return err
	}

	SpinsResolved.WithLabelValues(resultLabel(p.IsWin)).Inc()
	WageredTotal.Add(p.Wager)
	PaidOutTotal.Add(p.Payout)
	for reel, idx := range p.Positions {
		SymbolDraws.WithLabelValues(strconv.Itoa(reel), strconv.Itoa(idx)).Inc()
	}
	return nil
}

func recordSettled(raw interface{}) error {
	p, err := event.DecodePayload[domain.SpinSettledPayload](raw)
	if err != nil {
		return err
	}

	SpinsSettled.WithLabelValues(resultLabel(p.IsWin)).Inc()
	if p.DurationMs > 0 {
		SettleDuration.Observe(float64(p.DurationMs) / 1000)
	}
	return nil
}

func recordFailed(raw interface{}) error {
	p, err := event.DecodePayload[domain.SpinFailedPayload](raw)
	if err != nil {
		return err
	}

	SpinsFailed.WithLabelValues(strconv.FormatBool(p.Refunded)).Inc()
	return nil
}

func resultLabel(win bool) string {
	if win {
		return ResultWin
	}
	return ResultLoss
}
