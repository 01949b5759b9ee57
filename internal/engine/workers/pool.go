package workers

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/operations"
	"go.trai.ch/zerr"
)

// Pool owns a collection of worker clients and routes units of work to
// compatible idle ones. Selection prefers the idle client with the highest
// use count, so startup cost is amortized over as few processes as possible;
// a new worker is provisioned only when nothing compatible is idle and the
// running-worker bound has not been reached.
type Pool struct {
	factory    ports.WorkerProcessFactory
	ops        *operations.Executor
	monitor    ports.MemoryMonitor
	logger     ports.Logger
	maxWorkers int

	mu      sync.Mutex
	cond    *sync.Cond
	idle    []*Client
	running int
	stopped bool
}

// NewPool creates a pool bounded to maxWorkers concurrently running worker
// processes. monitor may be nil to disable memory-based eviction.
func NewPool(
	factory ports.WorkerProcessFactory,
	ops *operations.Executor,
	monitor ports.MemoryMonitor,
	logger ports.Logger,
	maxWorkers int,
) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	p := &Pool{
		factory:    factory,
		ops:        ops,
		monitor:    monitor,
		logger:     logger,
		maxWorkers: maxWorkers,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// GetWorker implements ports.WorkerPool. It blocks until a compatible idle
// worker exists or a new one can be provisioned within the bound. Waiters
// are woken by broadcast on every release and eviction and re-scan the idle
// set; there is no strict wake ordering, but every release wakes all
// waiters, so none can starve.
func (p *Pool) GetWorker(ctx context.Context, required domain.ForkOptions) (ports.Worker, error) {
	stop := context.AfterFunc(ctx, func() {
		p.cond.Broadcast()
	})
	defer stop()

	p.mu.Lock()
	for {
		if p.stopped {
			p.mu.Unlock()
			return nil, domain.ErrPoolStopped
		}
		if err := ctx.Err(); err != nil {
			p.mu.Unlock()
			return nil, zerr.Wrap(err, "aborted waiting for worker")
		}

		p.evictUnhealthyLocked()

		if client := p.takeIdleLocked(required); client != nil {
			p.mu.Unlock()
			return client, nil
		}

		if p.running < p.maxWorkers {
			// Reserve the slot before starting the process so concurrent
			// callers cannot exceed the bound.
			p.running++
			p.mu.Unlock()
			return p.provision(ctx, required)
		}

		p.cond.Wait()
	}
}

// takeIdleLocked removes and returns the compatible idle client with the
// highest use count, or nil if none is compatible.
func (p *Pool) takeIdleLocked(required domain.ForkOptions) *Client {
	best := -1
	for i, client := range p.idle {
		if !client.IsCompatibleWith(required) {
			continue
		}
		if best < 0 || client.Uses() > p.idle[best].Uses() {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	client := p.idle[best]
	p.idle = append(p.idle[:best], p.idle[best+1:]...)
	return client
}

// evictUnhealthyLocked drops idle clients whose process died or whose memory
// snapshot exceeds the monitor's threshold. Stopping happens off the lock.
func (p *Pool) evictUnhealthyLocked() {
	kept := p.idle[:0]
	for _, client := range p.idle {
		if p.healthy(client) {
			kept = append(kept, client)
			continue
		}
		p.running--
		go p.stopClient(client)
	}
	p.idle = kept
}

func (p *Pool) healthy(client *Client) bool {
	if !client.Alive() {
		return false
	}
	if p.monitor == nil {
		return true
	}
	status, ok := client.MemoryStatus()
	return !ok || !p.monitor.ShouldEvict(status)
}

func (p *Pool) provision(ctx context.Context, required domain.ForkOptions) (*Client, error) {
	process, err := p.factory.NewWorkerProcess(required)
	if err == nil {
		err = process.Start(ctx)
	}
	if err != nil {
		p.mu.Lock()
		p.running--
		p.cond.Broadcast()
		p.mu.Unlock()
		return nil, zerr.Wrap(err, "failed to provision worker")
	}
	if p.logger != nil {
		p.logger.Info("started worker process for environment " + required.EnvID())
	}
	return NewClient(required, process, p.ops), nil
}

// Release implements ports.WorkerPool. The worker returns to the idle set if
// it is still healthy, otherwise it is stopped and its slot freed.
func (p *Pool) Release(w ports.Worker) {
	client, ok := w.(*Client)
	if !ok {
		return
	}

	p.mu.Lock()
	if p.stopped || !p.healthy(client) {
		p.running--
		p.cond.Broadcast()
		p.mu.Unlock()
		go p.stopClient(client)
		return
	}
	p.idle = append(p.idle, client)
	p.cond.Broadcast()
	p.mu.Unlock()
}

func (p *Pool) stopClient(client *Client) {
	if err := client.Stop(); err != nil && p.logger != nil {
		p.logger.Warn("failed to stop worker process: " + err.Error())
	}
}

// Stop implements ports.WorkerPool. Idle workers are stopped immediately;
// in-use workers are stopped as they are released.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	idle := p.idle
	p.idle = nil
	p.running -= len(idle)
	p.cond.Broadcast()
	p.mu.Unlock()

	var errs []error
	for _, client := range idle {
		if err := client.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
