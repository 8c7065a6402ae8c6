package animation

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/SlotReveal_Go/internal/domain"
)

// FrameFunc observes every reel update; renderers hook in here
type FrameFunc func(reel *Reel, offset float64)

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock replaces the real clock (tests use clockwork.NewFakeClock)
func WithClock(c clockwork.Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithFrameInterval sets the refresh period
func WithFrameInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithEasing replaces EaseOutCubic
func WithEasing(e Easing) Option {
	return func(s *Scheduler) {
		if e != nil {
			s.easing = e
		}
	}
}

// WithFrameFunc registers a frame observer
func WithFrameFunc(fn FrameFunc) Option {
	return func(s *Scheduler) { s.onFrame = fn }
}

type job struct {
	reel     *Reel
	start    time.Time
	duration time.Duration
	done     chan struct{}
}

// Scheduler is the display refresh signal. A single loop goroutine advances
// every registered animation once per frame; nothing else moves a reel.
type Scheduler struct {
	clock    clockwork.Clock
	interval time.Duration
	easing   Easing
	onFrame  FrameFunc

	mu      sync.Mutex
	active  []*job
	stopped bool

	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler. Call Start before animating.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:    clockwork.NewRealClock(),
		interval: FrameInterval,
		easing:   EaseOutCubic,
		quit:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the frame loop
func (s *Scheduler) Start() {
	ticker := s.clock.NewTicker(s.interval)
	s.wg.Add(1)
	go s.loop(ticker)
	slog.Debug(LogMsgSchedulerStarted, "interval", s.interval)
}

// Stop ends the frame loop. Pending animations snap to rest and complete,
// so nobody waiting on them blocks forever.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
		slog.Debug(LogMsgSchedulerStopped)
	})
}

// Animate scrolls the reel from StartOffset to rest over duration and returns
// a channel closed on completion. A nil reel is an animation fault and its
// channel is returned already closed.
func (s *Scheduler) Animate(reel *Reel, duration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if reel == nil {
		slog.Warn(LogMsgAnimationFault, "error", domain.ErrAnimationFault)
		close(done)
		return done
	}

	reel.Reset()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		reel.setOffset(0)
		close(done)
		return done
	}
	s.active = append(s.active, &job{
		reel:     reel,
		start:    s.clock.Now(),
		duration: duration,
		done:     done,
	})
	return done
}

// Active returns the number of animations still running
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

func (s *Scheduler) loop(ticker clockwork.Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			s.frame(s.clock.Now())
		case <-s.quit:
			s.flush()
			return
		}
	}
}

// frame advances every animation to its position at now
func (s *Scheduler) frame(now time.Time) {
	s.mu.Lock()
	jobs := s.active
	s.active = nil
	s.mu.Unlock()

	var pending []*job
	for _, j := range jobs {
		p := Progress(now.Sub(j.start), j.duration)
		offset := Position(StartOffset, s.easing(p))
		if p >= 1 {
			offset = 0
		}
		j.reel.setOffset(offset)
		if s.onFrame != nil {
			s.onFrame(j.reel, offset)
		}
		if p >= 1 {
			close(j.done)
			continue
		}
		pending = append(pending, j)
	}

	if len(pending) == 0 {
		return
	}
	s.mu.Lock()
	s.active = append(pending, s.active...)
	s.mu.Unlock()
}

func (s *Scheduler) flush() {
	s.mu.Lock()
	jobs := s.active
	s.active = nil
	s.stopped = true
	s.mu.Unlock()

	if len(jobs) > 0 {
		slog.Debug(LogMsgFlushingPending, "count", len(jobs))
	}
	for _, j := range jobs {
		j.reel.setOffset(0)
		close(j.done)
	}
}
