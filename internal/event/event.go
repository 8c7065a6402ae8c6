package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SlotReveal_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Spin event types
const (
	SpinResolved Type = domain.EventTypeSpinResolved
	SpinSettled  Type = domain.EventTypeSpinSettled
	SpinFailed   Type = domain.EventTypeSpinFailed
)

// NewSpinResolvedEvent creates the event the outcome engine publishes after a draw
func NewSpinResolvedEvent(outcome domain.Outcome) Event {
	return Event{
		Version: SchemaVersion,
		Type:    SpinResolved,
		Payload: domain.SpinResolvedPayload{
			Positions: outcome.Draw[:],
			Wager:     outcome.Wager.InexactFloat64(),
			Payout:    outcome.Payout.InexactFloat64(),
			IsWin:     outcome.IsWin(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSpinSettledEvent creates the event the spin controller publishes after settlement
func NewSpinSettledEvent(outcome domain.Outcome, balance float64, elapsed time.Duration) Event {
	return Event{
		Version: SchemaVersion,
		Type:    SpinSettled,
		Payload: domain.SpinSettledPayload{
			Positions:  outcome.Draw[:],
			Wager:      outcome.Wager.InexactFloat64(),
			Payout:     outcome.Payout.InexactFloat64(),
			Balance:    balance,
			IsWin:      outcome.IsWin(),
			DurationMs: elapsed.Milliseconds(),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewSpinFailedEvent creates the event the spin controller publishes when a spin fails
func NewSpinFailedEvent(wager float64, refunded bool, reason string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    SpinFailed,
		Payload: domain.SpinFailedPayload{
			Wager:     wager,
			Refunded:  refunded,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlersFailed, len(errs), event.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
