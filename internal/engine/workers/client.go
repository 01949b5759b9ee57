// Package workers implements the worker client and the worker pool. Clients
// wrap a persistent out-of-process worker with its fork-environment
// compatibility metadata; the pool routes units of work to compatible idle
// clients, provisioning new ones only when necessary.
package workers

import (
	"context"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/leases"
	"go.trai.ch/forge/internal/engine/operations"
)

// Client executes one unit of work at a time on a persistent worker process,
// nested inside a build operation and a child lease of the calling thread.
type Client struct {
	forkOptions domain.ForkOptions
	process     ports.WorkerProcess
	ops         *operations.Executor

	mu   sync.Mutex
	uses int
}

// NewClient wraps process, which was started with the given fork options.
func NewClient(forkOptions domain.ForkOptions, process ports.WorkerProcess, ops *operations.Executor) *Client {
	return &Client{
		forkOptions: forkOptions,
		process:     process,
		ops:         ops,
	}
}

// Execute implements ports.Worker. The dispatch holds a child lease of
// parentLease for its whole duration and runs as a build operation parented
// under parentOp, so traces show worker executions nested under the task
// that triggered them. Failures of the work itself come back inside the
// WorkResult; the error return covers lease and transport problems only.
func (c *Client) Execute(
	ctx context.Context,
	spec domain.WorkSpec,
	parentLease ports.Lease,
	parentOp *domain.OperationDescriptor,
) (domain.WorkResult, error) {
	var result domain.WorkResult

	err := leases.WithChild(ctx, parentLease, func(ports.Lease) error {
		return c.ops.Run(parentOp, operations.New(
			operations.Description{
				DisplayName: spec.DisplayName,
				Details:     domain.TaskOperationDetails{TaskPath: spec.TaskPath},
			},
			func(octx *operations.Context) error {
				res, execErr := c.process.Execute(ctx, spec)
				if execErr != nil {
					return execErr
				}
				c.incrementUses()
				result = res
				octx.SetResult(res)
				return nil
			},
		))
	})
	if err != nil {
		return domain.WorkResult{}, err
	}
	return result, nil
}

// IsCompatibleWith reports whether this client's environment can serve a
// unit of work with the required fork options.
func (c *Client) IsCompatibleWith(required domain.ForkOptions) bool {
	return c.forkOptions.IsCompatibleWith(required)
}

// ForkOptions returns the options the client's worker was started with.
func (c *Client) ForkOptions() domain.ForkOptions {
	return c.forkOptions
}

// Uses returns how many units of work this client has dispatched.
func (c *Client) Uses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uses
}

func (c *Client) incrementUses() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uses++
}

// Alive reports whether the underlying worker process is still running.
func (c *Client) Alive() bool {
	return c.process.Alive()
}

// MemoryStatus returns the worker's most recent memory snapshot.
func (c *Client) MemoryStatus() (domain.MemoryStatus, bool) {
	return c.process.MemoryStatus()
}

// Stop shuts the underlying worker process down.
func (c *Client) Stop() error {
	return c.process.Stop()
}
