package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// WorkerProcess manages one persistent out-of-process worker.
//
//go:generate go run go.uber.org/mock/mockgen -source=worker.go -destination=mocks/mock_worker.go -package=mocks
type WorkerProcess interface {
	// Start launches the process and waits for its ready handshake.
	Start(ctx context.Context) error

	// Execute sends one unit of work and waits for its result. Failures of
	// the work itself come back inside the WorkResult, never as an error;
	// the error return covers the transport only.
	Execute(ctx context.Context, spec domain.WorkSpec) (domain.WorkResult, error)

	// MemoryStatus returns the most recent memory snapshot reported by the
	// worker. ok is false until the worker has reported one.
	MemoryStatus() (status domain.MemoryStatus, ok bool)

	// Alive reports whether the underlying process is still running.
	Alive() bool

	// Stop shuts the process down and releases its resources.
	Stop() error
}

// WorkerProcessFactory provisions new worker processes for a given set of
// fork options.
type WorkerProcessFactory interface {
	NewWorkerProcess(fork domain.ForkOptions) (WorkerProcess, error)
}

// MemoryMonitor decides whether a worker's memory usage disqualifies it from
// reuse.
type MemoryMonitor interface {
	ShouldEvict(status domain.MemoryStatus) bool
}

// Worker executes one unit of work at a time, nested inside a build
// operation and a child lease of the calling thread.
type Worker interface {
	Execute(ctx context.Context, spec domain.WorkSpec, parentLease Lease, parentOp *domain.OperationDescriptor) (domain.WorkResult, error)
}

// WorkerPool hands out workers compatible with a unit of work's fork
// options, reusing idle ones and provisioning new ones only when necessary.
type WorkerPool interface {
	// GetWorker blocks until a compatible worker is available. The caller
	// owns the worker until it calls Release.
	GetWorker(ctx context.Context, required domain.ForkOptions) (Worker, error)

	// Release returns a worker obtained from GetWorker to the idle set.
	Release(w Worker)

	// Stop shuts down all workers. GetWorker fails afterwards.
	Stop() error
}
