// Package leases implements the global worker lease registry. A fixed number
// of permits bounds all build parallelism; leases form parent/child trees
// matching call nesting, but every lease draws from the same global pool.
package leases

import (
	"context"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// Registry is the process-wide pool of worker lease permits.
//
// Blocked acquirers are woken in FIFO order (the semaphore's waiter queue),
// which is the starvation-freedom guarantee this package documents.
type Registry struct {
	sem        *semaphore.Weighted
	maxPermits int
}

// NewRegistry creates a registry with the given number of permits. Values
// below one are clamped to one.
func NewRegistry(maxPermits int) *Registry {
	if maxPermits < 1 {
		maxPermits = 1
	}
	return &Registry{
		sem:        semaphore.NewWeighted(int64(maxPermits)),
		maxPermits: maxPermits,
	}
}

// MaxPermits returns the global permit count.
func (r *Registry) MaxPermits() int {
	return r.maxPermits
}

// AcquireLease acquires a top-level lease, blocking until a permit is free.
func (r *Registry) AcquireLease(ctx context.Context) (ports.Lease, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, zerr.Wrap(err, "failed to acquire worker lease")
	}
	return &lease{reg: r}, nil
}

// WithLease acquires a top-level lease, runs fn with it, and guarantees the
// lease is finished on every exit path.
func (r *Registry) WithLease(ctx context.Context, fn func(ports.Lease) error) error {
	l, err := r.AcquireLease(ctx)
	if err != nil {
		return err
	}
	err = fn(l)
	if finishErr := l.Finish(); finishErr != nil && err == nil {
		err = finishErr
	}
	return err
}

// WithChild starts a child lease under parent, runs fn with it, and
// guarantees the child is finished on every exit path.
func WithChild(ctx context.Context, parent ports.Lease, fn func(ports.Lease) error) error {
	child, err := parent.StartChild(ctx)
	if err != nil {
		return err
	}
	err = fn(child)
	if finishErr := child.Finish(); finishErr != nil && err == nil {
		err = finishErr
	}
	return err
}

type lease struct {
	reg    *Registry
	parent *lease

	mu       sync.Mutex
	children int
	finished bool
}

// StartChild implements ports.Lease. The child consumes a permit from the
// global pool; the parent cannot finish while the child is held or still
// waiting for its permit.
func (l *lease) StartChild(ctx context.Context) (ports.Lease, error) {
	l.mu.Lock()
	if l.finished {
		l.mu.Unlock()
		return nil, zerr.Wrap(domain.ErrLeaseAlreadyFinished, "cannot start child lease")
	}
	l.children++
	l.mu.Unlock()

	if err := l.reg.sem.Acquire(ctx, 1); err != nil {
		l.childFinished()
		return nil, zerr.Wrap(err, "failed to acquire child worker lease")
	}
	return &lease{reg: l.reg, parent: l}, nil
}

// Finish implements ports.Lease. Finishing with unfinished children is a
// usage error and does not release (or leak) the permit.
func (l *lease) Finish() error {
	l.mu.Lock()
	if l.finished {
		l.mu.Unlock()
		return domain.ErrLeaseAlreadyFinished
	}
	if l.children > 0 {
		n := l.children
		l.mu.Unlock()
		return zerr.With(domain.ErrLeaseHasChildren, "children", n)
	}
	l.finished = true
	l.mu.Unlock()

	l.reg.sem.Release(1)
	if l.parent != nil {
		l.parent.childFinished()
	}
	return nil
}

func (l *lease) childFinished() {
	l.mu.Lock()
	l.children--
	l.mu.Unlock()
}
