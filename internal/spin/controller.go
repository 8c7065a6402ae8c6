package spin

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/looplab/fsm"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/SlotReveal_Go/internal/animation"
	"github.com/osse101/SlotReveal_Go/internal/catalog"
	"github.com/osse101/SlotReveal_Go/internal/domain"
	"github.com/osse101/SlotReveal_Go/internal/event"
	"github.com/osse101/SlotReveal_Go/internal/logger"
)

// Animator scrolls a reel to rest and signals completion on the returned channel
type Animator interface {
	Animate(reel *animation.Reel, duration time.Duration) <-chan struct{}
}

// Result is what a settled spin exposes to the caller
type Result struct {
	Positions domain.Draw
	Symbols   [domain.ReelCount]catalog.Symbol
	Wager     decimal.Decimal
	Payout    decimal.Decimal
	Balance   decimal.Decimal
	Win       bool
	Message   string
}

// Option configures a Controller
type Option func(*Controller)

// WithAnimator supplies the frame loop. Without it the controller runs its own scheduler.
func WithAnimator(a Animator) Option {
	return func(c *Controller) { c.animator = a }
}

// WithDurations sets the first reel's duration and the per-reel stagger
func WithDurations(base, stagger time.Duration) Option {
	return func(c *Controller) {
		c.baseDuration = base
		c.stagger = stagger
	}
}

// WithRefundPolicy decides whether a failed request returns the wager
func WithRefundPolicy(p RefundPolicy) Option {
	return func(c *Controller) { c.refundPolicy = p }
}

// WithEventBus publishes spin.settled and spin.failed events
func WithEventBus(bus event.Bus) Option {
	return func(c *Controller) { c.eventBus = bus }
}

// WithClock replaces the clock used to time spins
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithReels replaces the reels the controller reveals onto. Nil entries are
// animation faults and complete immediately.
func WithReels(reels ...*animation.Reel) Option {
	return func(c *Controller) {
		for i := range c.reels {
			c.reels[i] = nil
			if i < len(reels) {
				c.reels[i] = reels[i]
			}
		}
	}
}

// session is the transient state of one spin
type session struct {
	wager   decimal.Decimal
	started time.Time
}

// Controller owns the visible reels and the spin lifecycle.
// Only one spin runs at a time; a second Spin while one is active is refused.
type Controller struct {
	catalog      catalog.Catalog
	client       OutcomeClient
	account      Account
	animator     Animator
	ownScheduler *animation.Scheduler
	reels        [domain.ReelCount]*animation.Reel
	baseDuration time.Duration
	stagger      time.Duration
	refundPolicy RefundPolicy
	eventBus     event.Bus
	clock        clockwork.Clock

	mu        sync.Mutex
	lifecycle *fsm.FSM
	message   string

	wg     sync.WaitGroup
	closed bool
}

// NewController creates an idle controller over the catalog
func NewController(cat catalog.Catalog, client OutcomeClient, account Account, opts ...Option) *Controller {
	c := &Controller{
		catalog:      cat,
		client:       client,
		account:      account,
		baseDuration: DefaultBaseDuration,
		stagger:      DefaultStagger,
		refundPolicy: RefundOnTransportError,
		clock:        clockwork.NewRealClock(),
	}
	for i := range c.reels {
		c.reels[i] = animation.NewReel(cat)
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.animator == nil {
		c.ownScheduler = animation.NewScheduler()
		c.ownScheduler.Start()
		c.animator = c.ownScheduler
	}

	c.lifecycle = fsm.NewFSM(
		string(PhaseIdle),
		fsm.Events{
			{Name: eventSpin, Src: []string{string(PhaseIdle)}, Dst: string(PhaseSpinning)},
			{Name: eventResolve, Src: []string{string(PhaseSpinning)}, Dst: string(PhaseResolving)},
			{Name: eventSettle, Src: []string{string(PhaseResolving)}, Dst: string(PhaseSettled)},
			{Name: eventReset, Src: []string{string(PhaseSettled)}, Dst: string(PhaseIdle)},
			{Name: eventFail, Src: []string{string(PhaseSpinning), string(PhaseResolving)}, Dst: string(PhaseIdle)},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				logger.FromContext(ctx).Debug(LogMsgPhaseChanged, "from", e.Src, "to", e.Dst, "event", e.Event)
			},
		},
	)
	return c
}

// Spin runs one full lifecycle: debit, request, reveal, animate, settle.
// It returns once every reel has stopped and the payout is applied, or once
// the request has failed and the controller is idle again.
func (c *Controller) Spin(ctx context.Context, wager decimal.Decimal) (*Result, error) {
	log := logger.FromContext(ctx)

	if !wager.IsPositive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidWager, wager)
	}

	sess, err := c.begin(ctx, wager)
	if err != nil {
		log.Debug(LogMsgSpinRejected, "reason", err, "wager", wager.String())
		return nil, err
	}
	log.Info(LogMsgSpinStarted, "wager", wager.String())

	resp, err := c.client.RequestOutcome(ctx, wager)
	if err != nil {
		c.fail(ctx, sess, err)
		return nil, err
	}

	draw, payout, err := c.decodeOutcome(resp)
	if err != nil {
		c.fail(ctx, sess, err)
		return nil, err
	}
	log.Debug(LogMsgOutcomeReceived, "positions", draw[:], "payout", payout.String())

	if expected := c.catalog.Payout(draw, wager); !expected.Equal(payout) {
		log.Warn(LogMsgCatalogMismatch, "expected", expected.String(), "declared", payout.String())
	}

	c.transition(ctx, eventResolve)
	c.reveal(draw)

	// Settlement waits for every reel, however long each one takes
	joinAll(c.launch(ctx))

	return c.settle(ctx, sess, draw, payout), nil
}

// Phase returns the current lifecycle phase
func (c *Controller) Phase() Phase {
	return Phase(c.lifecycle.Current())
}

// Message returns the last user-visible message
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Reels returns the controller's reels in order; entries may be nil
func (c *Controller) Reels() []*animation.Reel {
	out := make([]*animation.Reel, len(c.reels))
	copy(out, c.reels[:])
	return out
}

// Balance returns the account balance
func (c *Controller) Balance() decimal.Decimal {
	return c.account.Balance()
}

// Shutdown stops publishing, waits for in-flight events and stops the
// controller's own scheduler
func (c *Controller) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	if c.ownScheduler != nil {
		c.ownScheduler.Stop()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// begin checks preconditions, enters Spinning and debits the wager as one step
func (c *Controller) begin(ctx context.Context, wager decimal.Decimal) (*session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lifecycle.Current() != string(PhaseIdle) {
		return nil, domain.ErrSpinInProgress
	}
	if c.account.Balance().LessThan(wager) {
		return nil, domain.ErrInsufficientFunds
	}

	if err := c.lifecycle.Event(ctx, eventSpin); err != nil {
		return nil, fmt.Errorf(ErrMsgTransition, eventSpin, err)
	}
	if err := c.account.Debit(wager); err != nil {
		c.transitionLocked(ctx, eventFail)
		return nil, err
	}

	c.message = MsgSpinning
	for _, r := range c.reels {
		if r != nil {
			r.Randomize(c.catalog)
		}
	}

	return &session{wager: wager, started: c.clock.Now()}, nil
}

// decodeOutcome validates the wire outcome against the local catalog
func (c *Controller) decodeOutcome(resp *domain.SpinResponse) (domain.Draw, decimal.Decimal, error) {
	var draw domain.Draw
	if resp == nil {
		return draw, decimal.Zero, fmt.Errorf(ErrMsgMalformedPositions, domain.ErrTransport, domain.ReelCount, 0)
	}
	if len(resp.Positions) != domain.ReelCount {
		return draw, decimal.Zero, fmt.Errorf(ErrMsgMalformedPositions, domain.ErrTransport, domain.ReelCount, len(resp.Positions))
	}
	for i, pos := range resp.Positions {
		if _, err := c.catalog.Lookup(pos); err != nil {
			return draw, decimal.Zero, fmt.Errorf(ErrMsgPositionOutOfRange, domain.ErrTransport, i, err)
		}
		draw[i] = pos
	}
	if math.IsNaN(resp.WinAmount) || math.IsInf(resp.WinAmount, 0) || resp.WinAmount < 0 {
		return draw, decimal.Zero, fmt.Errorf(ErrMsgInvalidWinAmount, domain.ErrTransport, resp.WinAmount)
	}
	return draw, decimal.NewFromFloat(resp.WinAmount), nil
}

// reveal parks each reel at StartOffset, then writes the declared symbol into
// its payline row; filler rows are cosmetic
func (c *Controller) reveal(draw domain.Draw) {
	for i, r := range c.reels {
		if r == nil {
			continue
		}
		r.Reset()
		r.Reveal(c.catalog.At(draw[i]), c.catalog)
	}
}

// launch starts every reel's animation; reel i runs for base + i*stagger
func (c *Controller) launch(ctx context.Context) []<-chan struct{} {
	completions := make([]<-chan struct{}, len(c.reels))
	for i, r := range c.reels {
		if r == nil {
			logger.FromContext(ctx).Warn(animation.LogMsgAnimationFault, "reel", i, "error", domain.ErrAnimationFault)
			done := make(chan struct{})
			close(done)
			completions[i] = done
			continue
		}
		completions[i] = c.animator.Animate(r, c.baseDuration+time.Duration(i)*c.stagger)
	}
	return completions
}

// joinAll returns once every completion channel has closed
func joinAll(completions []<-chan struct{}) {
	var g errgroup.Group
	for _, done := range completions {
		done := done
		g.Go(func() error {
			<-done
			return nil
		})
	}
	_ = g.Wait()
}

func (c *Controller) settle(ctx context.Context, sess *session, draw domain.Draw, payout decimal.Decimal) *Result {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	c.transitionLocked(ctx, eventSettle)
	if err := c.account.Credit(payout); err != nil {
		log.Error(LogMsgCreditFailed, "error", err, "payout", payout.String())
	}
	if payout.IsPositive() {
		c.message = fmt.Sprintf(MsgWinFormat, payout.String())
	} else {
		c.message = MsgNoWin
	}
	res := &Result{
		Positions: draw,
		Wager:     sess.wager,
		Payout:    payout,
		Balance:   c.account.Balance(),
		Win:       payout.IsPositive(),
		Message:   c.message,
	}
	for i, idx := range draw {
		res.Symbols[i] = c.catalog.At(idx)
	}
	c.transitionLocked(ctx, eventReset)
	c.mu.Unlock()

	elapsed := c.clock.Since(sess.started)
	log.Info(LogMsgSpinSettled,
		"positions", draw[:],
		"wager", sess.wager.String(),
		"payout", payout.String(),
		"balance", res.Balance.String(),
		"elapsed", elapsed)

	outcome := domain.Outcome{Draw: draw, Wager: sess.wager, Payout: payout}
	c.publishAsync(ctx, event.NewSpinSettledEvent(outcome, res.Balance.InexactFloat64(), elapsed))
	return res
}

// fail returns the controller to Idle with the fixed error message, applying the refund policy
func (c *Controller) fail(ctx context.Context, sess *session, cause error) {
	log := logger.FromContext(ctx)
	log.Error(LogMsgSpinFailed, "error", cause, "wager", sess.wager.String())

	c.mu.Lock()
	refunded := false
	if c.refundPolicy == RefundOnTransportError {
		if err := c.account.Credit(sess.wager); err != nil {
			log.Error(LogMsgRefundFailed, "error", err, "wager", sess.wager.String())
		} else {
			refunded = true
			log.Info(LogMsgWagerRefunded, "wager", sess.wager.String())
		}
	}
	c.message = MsgTransportError
	c.transitionLocked(ctx, eventFail)
	c.mu.Unlock()

	c.publishAsync(ctx, event.NewSpinFailedEvent(sess.wager.InexactFloat64(), refunded, cause.Error()))
}

func (c *Controller) transition(ctx context.Context, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transitionLocked(ctx, name)
}

func (c *Controller) transitionLocked(ctx context.Context, name string) {
	if err := c.lifecycle.Event(ctx, name); err != nil {
		logger.FromContext(ctx).Error(LogMsgTransitionError, "event", name, "from", c.lifecycle.Current(), "error", err)
	}
}

func (c *Controller) publishAsync(ctx context.Context, evt event.Event) {
	if c.eventBus == nil {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		logger.FromContext(ctx).Debug(LogMsgPublishAfterShutdown, "type", evt.Type)
		return
	}
	c.wg.Add(1)
	c.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer c.wg.Done()
		if err := c.eventBus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err, "type", evt.Type)
		}
	}()
}
