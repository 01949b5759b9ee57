package taskgraph

import (
	"context"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildRunner runs one build to completion.
type BuildRunner interface {
	Run(ctx context.Context) (*domain.BuildResult, error)
}

// IncludedBuildController coordinates the task graphs of included builds.
// Each registered build runs at most once, on first demand; later waiters
// share the outcome of that single run.
type IncludedBuildController struct {
	mu     sync.Mutex
	builds map[domain.BuildID]*includedBuildState
}

type includedBuildState struct {
	runner BuildRunner
	once   sync.Once
	done   chan struct{}
	err    error
}

// NewIncludedBuildController creates an empty controller.
func NewIncludedBuildController() *IncludedBuildController {
	return &IncludedBuildController{
		builds: make(map[domain.BuildID]*includedBuildState),
	}
}

// Register makes an included build awaitable under its identifier. The
// runner is not invoked until the first AwaitCompletion call.
func (c *IncludedBuildController) Register(id domain.BuildID, runner BuildRunner) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.builds[id]; exists {
		return
	}
	c.builds[id] = &includedBuildState{
		runner: runner,
		done:   make(chan struct{}),
	}
}

// AwaitCompletion blocks until the included build's tasks have run, returning
// its failure if it had one.
func (c *IncludedBuildController) AwaitCompletion(ctx context.Context, id domain.BuildID) error {
	c.mu.Lock()
	state, ok := c.builds[id]
	c.mu.Unlock()
	if !ok {
		return zerr.With(domain.ErrUnknownIncludedBuild, "build", string(id))
	}

	state.once.Do(func() {
		go func() {
			defer close(state.done)
			_, state.err = state.runner.Run(ctx)
		}()
	})

	select {
	case <-state.done:
		return state.err
	case <-ctx.Done():
		return zerr.Wrap(ctx.Err(), "awaiting included build")
	}
}
