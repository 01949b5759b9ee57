// Package operations implements the build operation executor. Build
// operations are traceable units of orchestration work; every execution is
// reported started and finished exactly once to the operation listener,
// with explicit parent linkage threaded through each call.
package operations

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Description names an operation before it is assigned an identity. The
// display name and details are fixed at creation and never mutated after
// the operation starts.
type Description struct {
	DisplayName string
	Details     any
}

// Runnable is a unit of orchestration work executed as a build operation.
type Runnable interface {
	Describe() Description
	Run(octx *Context) error
}

// Context is handed to a running operation to record its outcome and to
// parent nested operations.
type Context struct {
	mu      sync.Mutex
	desc    domain.OperationDescriptor
	result  any
	failure error
}

// Descriptor returns the descriptor of the running operation, for use as the
// parent of nested operations and worker dispatches.
func (c *Context) Descriptor() *domain.OperationDescriptor {
	return &c.desc
}

// SetResult records the operation's result payload.
func (c *Context) SetResult(result any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = result
}

// Failed marks the operation as failed. The failure is visible to listeners
// even if the operation's Run returns nil.
func (c *Context) Failed(failure error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failure = failure
}

func (c *Context) outcome() (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.failure
}

// Executor runs build operations synchronously on the calling thread and
// batches of independent operations with bounded concurrency.
type Executor struct {
	listener      ports.OperationListener
	maxConcurrent int
	seq           atomic.Uint64
}

// NewExecutor creates an executor reporting to listener. maxConcurrent
// bounds RunAll batches and is clamped to at least one.
func NewExecutor(listener ports.OperationListener, maxConcurrent int) *Executor {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Executor{
		listener:      listener,
		maxConcurrent: maxConcurrent,
	}
}

// Run executes op on the calling goroutine, reporting start and finish
// around it. parent may be nil for a top-level operation.
func (e *Executor) Run(parent *domain.OperationDescriptor, op Runnable) error {
	_, err := e.execute(parent, op)
	return err
}

// Call executes op like Run and returns the result recorded on its context.
func (e *Executor) Call(parent *domain.OperationDescriptor, op Runnable) (any, error) {
	return e.execute(parent, op)
}

func (e *Executor) execute(parent *domain.OperationDescriptor, op Runnable) (any, error) {
	desc := e.newDescriptor(parent, op.Describe())

	e.listener.Started(desc)

	octx := &Context{desc: desc}
	err := op.Run(octx)

	result, failure := octx.outcome()
	if failure == nil {
		// An escaping error marks the operation failed implicitly.
		failure = err
	}
	e.listener.Finished(desc, result, failure)

	return result, err
}

func (e *Executor) newDescriptor(parent *domain.OperationDescriptor, d Description) domain.OperationDescriptor {
	desc := domain.OperationDescriptor{
		ID:          domain.OperationID(e.seq.Add(1)),
		DisplayName: d.DisplayName,
		Details:     d.Details,
	}
	if parent != nil {
		desc.ParentID = parent.ID
	}
	return desc
}

// Queue collects independent operations for a RunAll batch. Operations start
// as they are added and run as siblings under the batch's parent.
type Queue struct {
	e      *Executor
	parent *domain.OperationDescriptor
	group  *errgroup.Group
}

// Add queues op for execution.
func (q *Queue) Add(op Runnable) {
	q.group.Go(func() error {
		return q.e.Run(q.parent, op)
	})
}

// RunAll invokes fill with a queue of independent operations and drains it
// with bounded concurrency. A failing operation does not cancel its
// siblings; once all have finished, RunAll returns the first failure.
func (e *Executor) RunAll(parent *domain.OperationDescriptor, fill func(q *Queue)) error {
	group := &errgroup.Group{}
	group.SetLimit(e.maxConcurrent)

	fill(&Queue{e: e, parent: parent, group: group})

	return group.Wait()
}

type funcOperation struct {
	description Description
	run         func(octx *Context) error
}

// New wraps a function as a Runnable with a fixed description.
func New(description Description, run func(octx *Context) error) Runnable {
	return &funcOperation{description: description, run: run}
}

func (o *funcOperation) Describe() Description {
	return o.description
}

func (o *funcOperation) Run(octx *Context) error {
	return o.run(octx)
}
