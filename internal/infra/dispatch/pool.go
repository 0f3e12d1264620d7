// Package dispatch runs blocking outbound calls on a bounded set of workers
// so request goroutines never perform provider I/O without a slot.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"financespace/internal/observability/metrics"
)

const (
	// DefaultWorkers matches the outbound concurrency used by the service.
	DefaultWorkers = 5
	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 15 * time.Second
)

// Pool bounds concurrent outbound calls and applies a per-call deadline.
type Pool struct {
	sem     *semaphore.Weighted
	workers int64
	timeout time.Duration
}

// NewPool returns a pool with the given worker count and per-call timeout.
// Non-positive values fall back to DefaultWorkers and DefaultTimeout.
func NewPool(workers int, timeout time.Duration) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pool{
		sem:     semaphore.NewWeighted(int64(workers)),
		workers: int64(workers),
		timeout: timeout,
	}
}

// Workers reports the concurrency limit.
func (p *Pool) Workers() int { return int(p.workers) }

// Timeout reports the per-call deadline.
func (p *Pool) Timeout() time.Duration { return p.timeout }

// WithTimeout returns a view of p sharing its worker slots but applying d
// as the per-call deadline. A non-positive d keeps the current timeout.
func (p *Pool) WithTimeout(d time.Duration) *Pool {
	if d <= 0 {
		d = p.timeout
	}
	return &Pool{sem: p.sem, workers: p.workers, timeout: d}
}

// Do waits for a free slot, then runs fn with a context bounded by the pool timeout.
// It returns ctx.Err() if the caller gives up before a slot frees.
func (p *Pool) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("dispatch: acquire slot: %w", err)
	}
	defer p.sem.Release(1)

	metrics.OutboundInFlight.Inc()
	defer metrics.OutboundInFlight.Dec()

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return fn(callCtx)
}

// Run is Do for calls that produce a value.
func Run[T any](ctx context.Context, p *Pool, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := p.Do(ctx, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
