package slots

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/SlotReveal_Go/internal/catalog"
	"github.com/osse101/SlotReveal_Go/internal/domain"
	"github.com/osse101/SlotReveal_Go/internal/event"
	"github.com/osse101/SlotReveal_Go/internal/logger"
)

// Service defines the interface for the outcome engine
type Service interface {
	Resolve(ctx context.Context, wager float64) (*domain.Outcome, error)
	Catalog() catalog.Catalog
	CheckHealth(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Option configures the service
type Option func(*service)

// WithSource replaces the crypto random source (tests inject deterministic sources)
func WithSource(src Source) Option {
	return func(s *service) { s.source = src }
}

// WithDrawMode selects modulo or rejection reduction
func WithDrawMode(mode DrawMode) Option {
	return func(s *service) { s.mode = mode }
}

// WithEventBus publishes a spin.resolved event after each draw
func WithEventBus(bus event.Bus) Option {
	return func(s *service) { s.eventBus = bus }
}

var errShuttingDown = errors.New(ErrMsgShuttingDown)

type service struct {
	catalog  catalog.Catalog
	source   Source
	mode     DrawMode
	eventBus event.Bus

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewService creates a new outcome engine over the given catalog
func NewService(cat catalog.Catalog, opts ...Option) Service {
	s := &service{
		catalog: cat,
		source:  NewCryptoSource(),
		mode:    DrawModeModulo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve validates the wager, draws one index per reel and computes the payout.
// An invalid wager fails before the random source is touched.
func (s *service) Resolve(ctx context.Context, wager float64) (*domain.Outcome, error) {
	log := logger.FromContext(ctx)

	amount, err := domain.ParseWager(wager)
	if err != nil {
		log.Debug(LogMsgWagerRejected, "wager", wager)
		return nil, err
	}

	draw, err := s.draw()
	if err != nil {
		log.Error(LogMsgDrawFailed, "error", err, "mode", s.mode)
		return nil, err
	}

	outcome := &domain.Outcome{
		Draw:   draw,
		Wager:  amount,
		Payout: s.catalog.Payout(draw, amount),
	}

	log.Info(LogMsgSpinResolved,
		"positions", draw[:],
		"wager", amount.String(),
		"payout", outcome.Payout.String())

	s.publishAsync(ctx, *outcome)

	return outcome, nil
}

// Catalog returns the catalog the engine draws from
func (s *service) Catalog() catalog.Catalog {
	return s.catalog
}

// CheckHealth reports whether the engine can still serve draws
func (s *service) CheckHealth(ctx context.Context) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return errShuttingDown
	}

	if _, err := s.source.NextUint32(); err != nil {
		return fmt.Errorf(ErrMsgReadRandomFailed, err)
	}
	return ctx.Err()
}

// draw samples every reel; a failure on any reel discards the whole draw
func (s *service) draw() (domain.Draw, error) {
	var d domain.Draw
	for i := range d {
		idx, err := drawIndex(s.source, s.catalog.Len(), s.mode)
		if err != nil {
			return domain.Draw{}, fmt.Errorf(ErrMsgDrawReelFailed, i, err)
		}
		d[i] = idx
	}
	return d, nil
}

func (s *service) publishAsync(ctx context.Context, outcome domain.Outcome) {
	if s.eventBus == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	// The request context is cancelled once the response is written
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer s.wg.Done()
		if err := s.eventBus.Publish(ctx, event.NewSpinResolvedEvent(outcome)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
		}
	}()
}

// Shutdown stops publishing and waits for in-flight events
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShutdownStarted)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
