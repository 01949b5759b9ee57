package domain

// WorkSpec is one unit of dispatchable work: what to run, where it came
// from, and the environment it needs from the worker that runs it.
type WorkSpec struct {
	DisplayName string
	TaskPath    string
	Command     []string
	WorkingDir  string
	Fork        ForkOptions
}

// WorkResult is the outcome of dispatching a WorkSpec to a worker. Failures
// cross the process boundary as values, never as raised errors.
type WorkResult struct {
	Success bool
	Failure error
}

// SuccessfulWorkResult is the result of a dispatch that completed cleanly.
func SuccessfulWorkResult() WorkResult {
	return WorkResult{Success: true}
}

// FailedWorkResult captures the failure of an out-of-process execution.
func FailedWorkResult(failure error) WorkResult {
	return WorkResult{Success: false, Failure: failure}
}

// MemoryStatus is a snapshot of a worker process's memory usage, reported by
// the worker alongside each response and polled for health checks.
type MemoryStatus struct {
	HeapBytes uint64
	SysBytes  uint64
}
