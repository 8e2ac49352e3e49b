package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ConfirmRedirect runs a one-shot action a fixed delay after an order is
// confirmed, unless cancelled first. It carries no data; navigating away
// before the timer fires cancels it.
type ConfirmRedirect struct {
	delay  time.Duration
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConfirmRedirect constructs the redirect timer.
func NewConfirmRedirect(delay time.Duration, logger *slog.Logger) *ConfirmRedirect {
	if delay <= 0 {
		delay = time.Second
	}
	return &ConfirmRedirect{delay: delay, logger: logger}
}

// Schedule arms the timer, replacing any pending one. fire runs once after
// the delay unless Cancel or Stop is called, or ctx ends, first.
func (r *ConfirmRedirect) Schedule(ctx context.Context, fire func()) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		timer := time.NewTimer(r.delay)
		defer timer.Stop()

		select {
		case <-runCtx.Done():
		case <-timer.C:
			r.logger.Info("confirmation redirect fired", slog.Duration("delay", r.delay))
			fire()
		}
	}()
}

// Cancel disarms a pending timer, if any.
func (r *ConfirmRedirect) Cancel() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()
}

// Stop cancels and waits for the timer goroutine to finish.
func (r *ConfirmRedirect) Stop() {
	r.Cancel()
	r.wg.Wait()
}
