package system

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeusync/interactionsdk/internal/core/observability/log"
)

// DefaultTickRate is the loop frequency in ticks per second.
const DefaultTickRate = 60

// Loop is the single logical thread of the interaction layer. All registry
// mutation, state transitions and action dispatch happen inside it: on a
// fixed tick it first runs work posted from other goroutines, then updates
// the managed systems.
type Loop struct {
	manager *Manager
	period  time.Duration
	logger  log.Log

	mu      sync.Mutex
	queue   []func()
	stopped bool
	running atomic.Bool
	frame   atomic.Pointer[Frame]
}

func NewLoop(manager *Manager, tickRate int, logger log.Log) (*Loop, error) {
	if tickRate <= 0 {
		return nil, ErrBadTickRate
	}
	if logger == nil {
		logger = log.NewNop()
	}
	l := &Loop{
		manager: manager,
		period:  time.Second / time.Duration(tickRate),
		logger:  logger.With(log.Component("loop")),
	}
	l.frame.Store(&Frame{})
	return l, nil
}

// Period is the duration of one tick.
func (l *Loop) Period() time.Duration { return l.period }

// Frame returns the state after the latest tick.
func (l *Loop) Frame() Frame { return *l.frame.Load() }

// Post enqueues fn to run on the loop goroutine at the start of the next tick.
func (l *Loop) Post(fn func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return ErrLoopStopped
	}
	l.queue = append(l.queue, fn)
	return nil
}

// Do posts fn and waits until it ran or ctx is done.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	if err := l.Post(func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Step runs one tick synchronously on the calling goroutine.
func (l *Loop) Step(dt time.Duration) error {
	l.drain()
	err := l.manager.Update(dt)
	next := l.Frame().advance(dt)
	l.frame.Store(&next)
	return err
}

// Run ticks until ctx is done. System errors are logged and do not stop the loop.
// After Run returns no more work can be posted.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.period)
	defer ticker.Stop()
	l.logger.Info("loop started", log.Duration("period", l.period))

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			l.stop()
			l.logger.Info("loop stopped", log.Int("frames", int(l.Frame().FrameCount)))
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := l.Step(dt); err != nil {
				l.logger.Debug("tick finished with errors", log.Error(err))
			}
		}
	}
}

func (l *Loop) stop() {
	l.mu.Lock()
	l.stopped = true
	pending := l.queue
	l.queue = nil
	l.mu.Unlock()
	// run what was accepted so Do callers are released
	for _, fn := range pending {
		fn()
	}
}

func (l *Loop) drain() {
	l.mu.Lock()
	pending := l.queue
	l.queue = nil
	l.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}
