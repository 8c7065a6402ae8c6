package spin

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotReveal_Go/internal/animation"
	"github.com/osse101/SlotReveal_Go/internal/catalog"
	"github.com/osse101/SlotReveal_Go/internal/domain"
	"github.com/osse101/SlotReveal_Go/internal/event"
	"github.com/osse101/SlotReveal_Go/internal/testing/leaktest"
	"github.com/osse101/SlotReveal_Go/mocks"
)

const waitFor = 2 * time.Second

// instantAnimator completes every reel immediately
type instantAnimator struct{}

func (instantAnimator) Animate(_ *animation.Reel, _ time.Duration) <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

// gatedAnimator completes a reel only when the test releases it
type gatedAnimator struct {
	mu        sync.Mutex
	gates     []chan struct{}
	durations []time.Duration
}

func (a *gatedAnimator) Animate(_ *animation.Reel, d time.Duration) <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	ch := make(chan struct{})
	a.gates = append(a.gates, ch)
	a.durations = append(a.durations, d)
	return ch
}

func (a *gatedAnimator) started() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.gates)
}

func (a *gatedAnimator) release(i int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	close(a.gates[i])
}

// recordingAnimator notes where each reel sits when its animation starts
type recordingAnimator struct {
	mu       sync.Mutex
	offsets  []float64
	paylines []catalog.Symbol
}

func (a *recordingAnimator) Animate(reel *animation.Reel, _ time.Duration) <-chan struct{} {
	a.mu.Lock()
	a.offsets = append(a.offsets, reel.Offset())
	a.paylines = append(a.paylines, reel.Row(animation.PaylineRow))
	a.mu.Unlock()
	return instantAnimator{}.Animate(reel, 0)
}

func ten() decimal.Decimal { return decimal.NewFromInt(10) }

func newAccount() *MemoryAccount {
	return NewMemoryAccount(decimal.NewFromInt(DefaultBalance))
}

func TestSpin_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		response        *domain.SpinResponse
		expectedPayout  string
		expectedBalance string
		expectedMessage string
		expectedWin     bool
	}{
		{
			name:            "triple diamond pays 100x",
			response:        &domain.SpinResponse{Positions: []int{5, 5, 5}, WinAmount: 1000},
			expectedPayout:  "1000",
			expectedBalance: "1990",
			expectedMessage: "You won 1000!",
			expectedWin:     true,
		},
		{
			name:            "mismatch pays nothing",
			response:        &domain.SpinResponse{Positions: []int{0, 1, 0}, WinAmount: 0},
			expectedPayout:  "0",
			expectedBalance: "990",
			expectedMessage: MsgNoWin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := catalog.Default()
			client := mocks.NewMockOutcomeClient(t)
			client.On("RequestOutcome", mock.Anything, mock.MatchedBy(func(w decimal.Decimal) bool {
				return w.Equal(ten())
			})).Return(tt.response, nil).Once()

			c := NewController(cat, client, newAccount(), WithAnimator(instantAnimator{}))

			res, err := c.Spin(context.Background(), ten())
			require.NoError(t, err)

			assert.Equal(t, tt.expectedPayout, res.Payout.String())
			assert.Equal(t, tt.expectedBalance, res.Balance.String())
			assert.Equal(t, tt.expectedBalance, c.Balance().String())
			assert.Equal(t, tt.expectedWin, res.Win)
			assert.Equal(t, tt.expectedMessage, c.Message())
			assert.Equal(t, tt.expectedMessage, res.Message)
			assert.Equal(t, PhaseIdle, c.Phase())

			for i, reel := range c.Reels() {
				want := cat.At(tt.response.Positions[i])
				assert.Equal(t, want, reel.Row(animation.PaylineRow), "reel %d payline", i)
				assert.Equal(t, want, res.Symbols[i])
			}
		})
	}
}

func TestSpin_InvalidWagerMakesNoRequest(t *testing.T) {
	for _, w := range []decimal.Decimal{decimal.NewFromInt(-5), decimal.Zero} {
		t.Run(w.String(), func(t *testing.T) {
			client := mocks.NewMockOutcomeClient(t)
			account := newAccount()
			c := NewController(catalog.Default(), client, account, WithAnimator(instantAnimator{}))

			res, err := c.Spin(context.Background(), w)
			assert.ErrorIs(t, err, domain.ErrInvalidWager)
			assert.Nil(t, res)
			assert.Equal(t, "1000", account.Balance().String())
			assert.Equal(t, PhaseIdle, c.Phase())
			client.AssertNotCalled(t, "RequestOutcome", mock.Anything, mock.Anything)
		})
	}
}

func TestSpin_InsufficientFunds(t *testing.T) {
	client := mocks.NewMockOutcomeClient(t)
	account := NewMemoryAccount(decimal.NewFromInt(5))
	c := NewController(catalog.Default(), client, account, WithAnimator(instantAnimator{}))

	_, err := c.Spin(context.Background(), ten())
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, "5", account.Balance().String())
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Empty(t, c.Message())
	client.AssertNotCalled(t, "RequestOutcome", mock.Anything, mock.Anything)
}

func TestSpin_RapidDoubleSpinIssuesOneRequest(t *testing.T) {
	release := make(chan struct{})
	client := mocks.NewMockOutcomeClient(t)
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(&domain.SpinResponse{Positions: []int{0, 1, 2}, WinAmount: 0}, nil).
		Once()

	account := newAccount()
	c := NewController(catalog.Default(), client, account, WithAnimator(instantAnimator{}))

	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Spin(context.Background(), ten())
		firstErr <- err
	}()

	require.Eventually(t, func() bool { return c.Phase() == PhaseSpinning }, waitFor, time.Millisecond)
	assert.Equal(t, MsgSpinning, c.Message())

	res, err := c.Spin(context.Background(), ten())
	assert.ErrorIs(t, err, domain.ErrSpinInProgress)
	assert.Nil(t, res)
	assert.Equal(t, "990", account.Balance().String(), "second spin must not debit")

	close(release)
	require.NoError(t, <-firstErr)

	client.AssertNumberOfCalls(t, "RequestOutcome", 1)
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestSpin_SettlesOnlyAfterEveryReel(t *testing.T) {
	orders := [][]int{
		{0, 1, 2},
		{2, 1, 0},
		{1, 2, 0},
		{2, 0, 1},
	}

	for _, order := range orders {
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			client := mocks.NewMockOutcomeClient(t)
			client.On("RequestOutcome", mock.Anything, mock.Anything).
				Return(&domain.SpinResponse{Positions: []int{5, 5, 5}, WinAmount: 1000}, nil).Once()

			animator := &gatedAnimator{}
			account := newAccount()
			c := NewController(catalog.Default(), client, account, WithAnimator(animator))

			type outcome struct {
				res *Result
				err error
			}
			done := make(chan outcome, 1)
			go func() {
				res, err := c.Spin(context.Background(), ten())
				done <- outcome{res, err}
			}()

			require.Eventually(t, func() bool { return animator.started() == domain.ReelCount }, waitFor, time.Millisecond)
			assert.Equal(t, PhaseResolving, c.Phase())

			for _, i := range order[:len(order)-1] {
				animator.release(i)
			}

			select {
			case <-done:
				t.Fatal("settled before the last reel completed")
			case <-time.After(50 * time.Millisecond):
			}
			assert.Equal(t, "990", account.Balance().String(), "payout must not be applied early")
			assert.Equal(t, MsgSpinning, c.Message())

			animator.release(order[len(order)-1])

			select {
			case out := <-done:
				require.NoError(t, out.err)
				assert.Equal(t, "1990", out.res.Balance.String())
			case <-time.After(waitFor):
				t.Fatal("spin never settled")
			}
			assert.Equal(t, PhaseIdle, c.Phase())
		})
	}
}

func TestSpin_StaggeredDurations(t *testing.T) {
	client := mocks.NewMockOutcomeClient(t)
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Return(&domain.SpinResponse{Positions: []int{0, 0, 1}, WinAmount: 0}, nil).Once()

	animator := &gatedAnimator{}
	c := NewController(catalog.Default(), client, newAccount(), WithAnimator(animator))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.Spin(context.Background(), ten())
	}()

	require.Eventually(t, func() bool { return animator.started() == domain.ReelCount }, waitFor, time.Millisecond)
	for i := 0; i < domain.ReelCount; i++ {
		animator.release(i)
	}
	<-done

	assert.Equal(t, []time.Duration{
		2000 * time.Millisecond,
		2500 * time.Millisecond,
		3000 * time.Millisecond,
	}, animator.durations)
}

func TestSpin_ZeroDurationWithRealScheduler(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	client := mocks.NewMockOutcomeClient(t)
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Return(&domain.SpinResponse{Positions: []int{3, 3, 3}, WinAmount: 400}, nil).Once()

	c := NewController(catalog.Default(), client, newAccount(), WithDurations(0, 20*time.Millisecond))

	res, err := c.Spin(context.Background(), ten())
	require.NoError(t, err)
	assert.Equal(t, "400", res.Payout.String())
	for _, reel := range c.Reels() {
		assert.Equal(t, 0.0, reel.Offset(), "every reel is at rest once settled")
	}

	require.NoError(t, c.Shutdown(context.Background()))
	checker.Check(0)
}

func TestSpin_NilReelIsNotFatal(t *testing.T) {
	client := mocks.NewMockOutcomeClient(t)
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Return(&domain.SpinResponse{Positions: []int{1, 1, 1}, WinAmount: 200}, nil).Once()

	cat := catalog.Default()
	animator := &gatedAnimator{}
	c := NewController(cat, client, newAccount(),
		WithAnimator(animator),
		WithReels(nil, animation.NewReel(cat), animation.NewReel(cat)),
	)

	done := make(chan *Result, 1)
	go func() {
		res, _ := c.Spin(context.Background(), ten())
		done <- res
	}()

	require.Eventually(t, func() bool { return animator.started() == 2 }, waitFor, time.Millisecond)
	animator.release(0)
	animator.release(1)

	select {
	case res := <-done:
		require.NotNil(t, res)
		assert.Equal(t, "1190", res.Balance.String())
	case <-time.After(waitFor):
		t.Fatal("nil reel deadlocked settlement")
	}
	assert.Nil(t, c.Reels()[0])
}

func TestSpin_TransportError(t *testing.T) {
	tests := []struct {
		name            string
		policy          RefundPolicy
		expectedBalance string
	}{
		{"refund by default policy", RefundOnTransportError, "1000"},
		{"no refund keeps the debit", NoRefund, "990"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockOutcomeClient(t)
			client.On("RequestOutcome", mock.Anything, mock.Anything).
				Return(nil, fmt.Errorf("%w: connection refused", domain.ErrTransport)).Once()

			account := newAccount()
			c := NewController(catalog.Default(), client, account,
				WithAnimator(instantAnimator{}),
				WithRefundPolicy(tt.policy),
			)

			res, err := c.Spin(context.Background(), ten())
			assert.ErrorIs(t, err, domain.ErrTransport)
			assert.Nil(t, res)
			assert.Equal(t, MsgTransportError, c.Message())
			assert.NotContains(t, c.Message(), "connection refused")
			assert.Equal(t, PhaseIdle, c.Phase())
			assert.Equal(t, tt.expectedBalance, account.Balance().String())

			// The controller is usable again after a failure
			client.On("RequestOutcome", mock.Anything, mock.Anything).
				Return(&domain.SpinResponse{Positions: []int{0, 1, 2}, WinAmount: 0}, nil).Once()
			_, err = c.Spin(context.Background(), ten())
			assert.NoError(t, err)
		})
	}
}

func TestSpin_MalformedOutcome(t *testing.T) {
	tests := []struct {
		name       string
		response   *domain.SpinResponse
		outOfRange bool
	}{
		{"nil response", nil, false},
		{"too few positions", &domain.SpinResponse{Positions: []int{0, 1}}, false},
		{"position out of range", &domain.SpinResponse{Positions: []int{0, 1, 9}}, true},
		{"negative position", &domain.SpinResponse{Positions: []int{-1, 1, 2}}, true},
		{"negative win amount", &domain.SpinResponse{Positions: []int{0, 1, 2}, WinAmount: -3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockOutcomeClient(t)
			client.On("RequestOutcome", mock.Anything, mock.Anything).Return(tt.response, nil).Once()

			animator := &gatedAnimator{}
			account := newAccount()
			c := NewController(catalog.Default(), client, account, WithAnimator(animator))

			_, err := c.Spin(context.Background(), ten())
			assert.ErrorIs(t, err, domain.ErrTransport)
			if tt.outOfRange {
				assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
			}
			assert.Equal(t, MsgTransportError, c.Message())
			assert.Equal(t, PhaseIdle, c.Phase())
			assert.Equal(t, "1000", account.Balance().String())
			assert.Zero(t, animator.started(), "no reel animates for a rejected outcome")
		})
	}
}

func TestSpin_PublishesEvents(t *testing.T) {
	bus := event.NewMemoryBus()

	var mu sync.Mutex
	var settled []domain.SpinSettledPayload
	var failed []domain.SpinFailedPayload
	bus.Subscribe(event.SpinSettled, func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[domain.SpinSettledPayload](evt.Payload)
		if err != nil {
			return err
		}
		mu.Lock()
		settled = append(settled, p)
		mu.Unlock()
		return nil
	})
	bus.Subscribe(event.SpinFailed, func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[domain.SpinFailedPayload](evt.Payload)
		if err != nil {
			return err
		}
		mu.Lock()
		failed = append(failed, p)
		mu.Unlock()
		return nil
	})

	client := mocks.NewMockOutcomeClient(t)
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Return(&domain.SpinResponse{Positions: []int{5, 5, 5}, WinAmount: 1000}, nil).Once()
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Return(nil, domain.ErrTransport).Once()

	c := NewController(catalog.Default(), client, newAccount(),
		WithAnimator(instantAnimator{}),
		WithEventBus(bus),
	)

	_, err := c.Spin(context.Background(), ten())
	require.NoError(t, err)
	_, err = c.Spin(context.Background(), ten())
	require.Error(t, err)

	require.NoError(t, c.Shutdown(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, settled, 1)
	assert.Equal(t, []int{5, 5, 5}, settled[0].Positions)
	assert.Equal(t, 1000.0, settled[0].Payout)
	assert.Equal(t, 1990.0, settled[0].Balance)
	assert.True(t, settled[0].IsWin)

	require.Len(t, failed, 1)
	assert.Equal(t, 10.0, failed[0].Wager)
	assert.True(t, failed[0].Refunded)
}

func TestSpin_ReelsParkedBeforeAnimating(t *testing.T) {
	cat := catalog.Default()
	client := mocks.NewMockOutcomeClient(t)
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Return(&domain.SpinResponse{Positions: []int{5, 4, 3}, WinAmount: 0}, nil).Once()

	animator := &recordingAnimator{}
	c := NewController(cat, client, newAccount(), WithAnimator(animator))
	for _, r := range c.Reels() {
		require.Zero(t, r.Offset(), "fresh reels rest at offset 0")
	}

	_, err := c.Spin(context.Background(), ten())
	require.NoError(t, err)

	animator.mu.Lock()
	defer animator.mu.Unlock()
	require.Len(t, animator.offsets, domain.ReelCount)
	for i, off := range animator.offsets {
		assert.Equal(t, animation.StartOffset, off, "reel %d is out of view when its payline is written", i)
	}
	assert.Equal(t, []catalog.Symbol{cat.At(5), cat.At(4), cat.At(3)}, animator.paylines)
}

func TestSpin_NoEventsAfterShutdown(t *testing.T) {
	bus := event.NewMemoryBus()

	var mu sync.Mutex
	published := 0
	count := func(_ context.Context, _ event.Event) error {
		mu.Lock()
		published++
		mu.Unlock()
		return nil
	}
	bus.Subscribe(event.SpinSettled, count)
	bus.Subscribe(event.SpinFailed, count)

	client := mocks.NewMockOutcomeClient(t)
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Return(&domain.SpinResponse{Positions: []int{5, 5, 5}, WinAmount: 1000}, nil).Once()
	client.On("RequestOutcome", mock.Anything, mock.Anything).
		Return(nil, domain.ErrTransport).Once()

	c := NewController(catalog.Default(), client, newAccount(),
		WithAnimator(instantAnimator{}),
		WithEventBus(bus),
	)
	require.NoError(t, c.Shutdown(context.Background()))

	_, err := c.Spin(context.Background(), ten())
	require.NoError(t, err)
	_, err = c.Spin(context.Background(), ten())
	require.Error(t, err)

	require.NoError(t, c.Shutdown(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, published)
}

func TestParseRefundPolicy(t *testing.T) {
	p, err := ParseRefundPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RefundOnTransportError, p)

	p, err = ParseRefundPolicy("none")
	require.NoError(t, err)
	assert.Equal(t, NoRefund, p)

	_, err = ParseRefundPolicy("sometimes")
	assert.Error(t, err)
}
