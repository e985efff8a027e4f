// Package ticker runs callbacks on a fixed wall-clock interval.
package ticker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"ssnote/internal/logger"
)

// Dispatcher hands a tick to the goroutine that owns the UI state.
type Dispatcher func(func())

// Direct runs the tick on the timer goroutine itself.
func Direct(fn func()) { fn() }

// Repeater calls fn every interval until stopped. Ticks are handed to the
// dispatcher; a panicking tick is logged and the repeater keeps going.
type Repeater struct {
	name     string
	interval time.Duration
	fn       func()
	dispatch Dispatcher
	logger   logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped atomic.Bool
}

func New(name string, interval time.Duration, fn func(), dispatch Dispatcher, log logger.Logger) *Repeater {
	if dispatch == nil {
		dispatch = Direct
	}
	return &Repeater{
		name:     name,
		interval: interval,
		fn:       fn,
		dispatch: dispatch,
		logger:   log,
	}
}

func (r *Repeater) Interval() time.Duration {
	return r.interval
}

// Start begins ticking. Calling Start on a running repeater does nothing.
func (r *Repeater) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.stopped.Store(false)

	go r.run(ctx, r.done)

	r.logger.Debug("Ticker", "started", map[string]interface{}{
		"name":     r.name,
		"interval": r.interval.String(),
	})
}

// Stop cancels the timer and waits for its goroutine to exit. Ticks already
// handed to the dispatcher are dropped.
func (r *Repeater) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	r.stopped.Store(true)
	if cancel == nil {
		return
	}
	cancel()
	<-done

	r.logger.Debug("Ticker", "stopped", map[string]interface{}{"name": r.name})
}

// Shutdown stops the repeater as part of application teardown.
func (r *Repeater) Shutdown() {
	r.Stop()
}

func (r *Repeater) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			r.dispatch(r.fire)
		case <-ctx.Done():
			return
		}
	}
}

func (r *Repeater) fire() {
	if r.stopped.Load() {
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Ticker", fmt.Errorf("tick panicked: %v", rec), map[string]interface{}{
				"name": r.name,
			})
		}
	}()

	r.fn()
}
