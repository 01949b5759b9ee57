package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildAlreadyRun is returned when a launcher is invoked again after
	// reaching the Build stage.
	ErrBuildAlreadyRun = zerr.New("cannot run build stages multiple times")

	// ErrLeaseAlreadyFinished is returned when a lease is finished twice.
	ErrLeaseAlreadyFinished = zerr.New("lease already finished")

	// ErrLeaseHasChildren is returned when a lease is finished while child
	// leases are still held.
	ErrLeaseHasChildren = zerr.New("lease has unfinished child leases")

	// ErrTaskAlreadyExists is returned when adding a task whose name is taken.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency
	// that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the task dependency graph has a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrPoolStopped is returned when a worker is requested from a stopped pool.
	ErrPoolStopped = zerr.New("worker pool has been stopped")

	// ErrWorkerNotStarted is returned when work is dispatched to a worker
	// process that was never started or has already stopped.
	ErrWorkerNotStarted = zerr.New("worker process not running")

	// ErrUnknownIncludedBuild is returned when completion of a build that was
	// never registered is awaited.
	ErrUnknownIncludedBuild = zerr.New("unknown included build")
)

// ReportedError wraps a failure that has already been recorded on the build
// result and delivered to build listeners. Outer callers must not report it
// again.
type ReportedError struct {
	cause error
}

// NewReportedError marks failure as already reported.
func NewReportedError(failure error) *ReportedError {
	return &ReportedError{cause: failure}
}

func (e *ReportedError) Error() string {
	return e.cause.Error()
}

// Unwrap returns the underlying failure.
func (e *ReportedError) Unwrap() error {
	return e.cause
}
