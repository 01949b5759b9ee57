package domain

// OperationID identifies a build operation within one process.
type OperationID uint64

// OperationDescriptor describes a build operation to the tracing sink. It is
// fixed before the operation starts and never mutated afterwards.
type OperationDescriptor struct {
	ID OperationID
	// ParentID is zero for top-level operations.
	ParentID    OperationID
	DisplayName string
	// Details is an optional structured payload consumed by external
	// tracing tools. May be nil.
	Details any
}

// CalculateTaskGraphDetails is the details payload of the calculate-task-graph
// operation.
type CalculateTaskGraphDetails struct {
	TaskRequests      []string
	ExcludedTaskNames []string
}

// CalculateTaskGraphResult is the result payload of the calculate-task-graph
// operation.
type CalculateTaskGraphResult struct {
	RequestedTaskPaths []string
	FilteredTaskPaths  []string
}

// TaskOperationDetails is the details payload of a task execution operation.
type TaskOperationDetails struct {
	TaskPath string
}
