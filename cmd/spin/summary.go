package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/SlotReveal_Go/internal/domain"
	"github.com/osse101/SlotReveal_Go/internal/event"
)

// sessionSummary tallies settled and failed spins from the controller's events
type sessionSummary struct {
	mu       sync.Mutex
	spins    int
	wins     int
	failures int
	refunded int
	wagered  decimal.Decimal
	paid     decimal.Decimal
}

func newSessionSummary() *sessionSummary {
	return &sessionSummary{wagered: decimal.Zero, paid: decimal.Zero}
}

// Register subscribes the summary to spin.settled and spin.failed
func (s *sessionSummary) Register(bus event.Bus) {
	bus.Subscribe(event.SpinSettled, s.handleSettled)
	bus.Subscribe(event.SpinFailed, s.handleFailed)
}

func (s *sessionSummary) handleSettled(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.SpinSettledPayload](evt.Payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.spins++
	if p.IsWin {
		s.wins++
	}
	s.wagered = s.wagered.Add(decimal.NewFromFloat(p.Wager))
	s.paid = s.paid.Add(decimal.NewFromFloat(p.Payout))
	return nil
}

func (s *sessionSummary) handleFailed(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.SpinFailedPayload](evt.Payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures++
	if p.Refunded {
		s.refunded++
	}
	return nil
}

// Print writes one line; call it after the controller has drained its events
func (s *sessionSummary) Print(out io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(out, "Session: %d spins, %d wins, wagered %s, paid %s, %d failed (%d refunded)\n",
		s.spins, s.wins, s.wagered, s.paid, s.failures, s.refunded)
}
