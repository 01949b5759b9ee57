package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// TaskGraphExecutor materializes and runs the task graph of a build. Select
// must be called before Execute; RequestedTasks and FilteredTasks are only
// meaningful after Select.
//
//go:generate go run go.uber.org/mock/mockgen -source=taskgraph.go -destination=mocks/mock_taskgraph.go -package=mocks
type TaskGraphExecutor interface {
	// Select decides which tasks will run given the build's start parameters.
	Select(ctx context.Context, build *domain.Build) error

	// Execute runs the selected tasks in dependency order. Work delegated to
	// persistent workers is dispatched under lease and parented under parent.
	Execute(ctx context.Context, build *domain.Build, lease Lease, parent *domain.OperationDescriptor) error

	// RequestedTasks returns the paths of the tasks selected to run.
	RequestedTasks() []string

	// FilteredTasks returns the paths of tasks excluded from the graph.
	FilteredTasks() []string
}

// IncludedBuildTaskGraph gives access to the task graphs of included builds.
type IncludedBuildTaskGraph interface {
	// AwaitCompletion blocks until the included build's tasks have run,
	// returning its failure if it had one.
	AwaitCompletion(ctx context.Context, id domain.BuildID) error
}
