// Package taskgraph selects and executes the task graph of a build.
package taskgraph

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task has finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the task execution failed.
	StatusFailed TaskStatus = "Failed"
	// StatusUpToDate indicates the task was skipped because its inputs were
	// unchanged since the last successful run.
	StatusUpToDate TaskStatus = "UpToDate"
)

// Executor materializes the selected portion of a build's task graph and runs
// it in dependency order, dispatching command tasks to pooled workers.
type Executor struct {
	pool   ports.WorkerPool
	hasher ports.InputHasher
	store  ports.BuildInfoStore
	logger ports.Logger

	mu        sync.RWMutex
	selected  *domain.Graph
	requested []string
	filtered  []string
	status    map[domain.InternedString]TaskStatus
}

// NewExecutor creates an executor dispatching to the given worker pool.
// Hasher and store may be nil, which disables up-to-date checks.
func NewExecutor(
	pool ports.WorkerPool,
	hasher ports.InputHasher,
	store ports.BuildInfoStore,
	logger ports.Logger,
) *Executor {
	return &Executor{
		pool:   pool,
		hasher: hasher,
		store:  store,
		logger: logger,
		status: make(map[domain.InternedString]TaskStatus),
	}
}

// Select decides which tasks will run: the transitive dependency closure of
// the requested tasks, minus the excluded ones. Requesting no tasks selects
// the whole graph.
func (e *Executor) Select(_ context.Context, build *domain.Build) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.selected = nil
	e.requested = nil
	e.filtered = nil
	e.status = make(map[domain.InternedString]TaskStatus)

	if build.Settings == nil || build.Settings.Tasks == nil || build.Settings.Tasks.Len() == 0 {
		return nil
	}

	graph := build.Settings.Tasks
	if err := graph.Validate(); err != nil {
		return err
	}

	start := build.StartParameter

	excluded := make(map[domain.InternedString]struct{}, len(start.ExcludedTaskNames))
	for _, name := range start.ExcludedTaskNames {
		excluded[internTaskName(name)] = struct{}{}
	}

	var entries []domain.InternedString
	if len(start.TaskNames) == 0 {
		for task := range graph.Walk() {
			entries = append(entries, task.Name)
		}
	} else {
		for _, name := range start.TaskNames {
			interned := internTaskName(name)
			if _, ok := graph.Get(interned); !ok {
				return zerr.With(domain.ErrTaskNotFound, "task", name)
			}
			entries = append(entries, interned)
		}
	}

	selected := make(map[domain.InternedString]struct{}, graph.Len())
	filtered := make(map[domain.InternedString]struct{})

	var visit func(name domain.InternedString)
	visit = func(name domain.InternedString) {
		if _, skip := excluded[name]; skip {
			filtered[name] = struct{}{}
			return
		}
		if _, done := selected[name]; done {
			return
		}
		selected[name] = struct{}{}
		task, _ := graph.Get(name)
		for _, dep := range task.Dependencies {
			visit(dep)
		}
	}
	for _, entry := range entries {
		visit(entry)
	}

	sub := domain.NewGraph()
	for task := range graph.Walk() {
		if _, keep := selected[task.Name]; !keep {
			continue
		}
		def := task
		def.Dependencies = slices.DeleteFunc(slices.Clone(task.Dependencies), func(dep domain.InternedString) bool {
			_, keep := selected[dep]
			return !keep
		})
		if err := sub.AddTask(&def); err != nil {
			return err
		}
	}
	if err := sub.Validate(); err != nil {
		return err
	}

	e.selected = sub
	for _, entry := range entries {
		if _, keep := selected[entry]; keep {
			e.requested = append(e.requested, taskPath(entry))
		}
	}
	for name := range filtered {
		e.filtered = append(e.filtered, taskPath(name))
	}
	slices.Sort(e.requested)
	e.requested = slices.Compact(e.requested)
	slices.Sort(e.filtered)

	for task := range sub.Walk() {
		e.status[task.Name] = StatusPending
	}
	return nil
}

// RequestedTasks returns the paths of the tasks selected to run.
func (e *Executor) RequestedTasks() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.requested
}

// FilteredTasks returns the paths of tasks excluded from the graph.
func (e *Executor) FilteredTasks() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filtered
}

// Status returns the current status of a selected task.
func (e *Executor) Status(name domain.InternedString) TaskStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status[name]
}

func (e *Executor) setStatus(name domain.InternedString, status TaskStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status[name] = status
}

// Execute runs the selected tasks in dependency order with parallelism
// bounded by the build's max worker count. A task failure stops its
// dependents from being scheduled but already running tasks finish.
func (e *Executor) Execute(ctx context.Context, build *domain.Build, lease ports.Lease, parent *domain.OperationDescriptor) error {
	e.mu.RLock()
	graph := e.selected
	e.mu.RUnlock()

	if graph == nil || graph.Len() == 0 {
		return nil
	}

	parallelism := build.StartParameter.MaxWorkers
	if parallelism < 1 {
		parallelism = 1
	}

	state := e.newRunState(ctx, graph, build, lease, parent, parallelism)

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			return errors.Join(state.errs, state.ctx.Err())
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}

	return state.errs
}

type result struct {
	task domain.InternedString
	err  error
}

type runState struct {
	e           *Executor
	graph       *domain.Graph
	build       *domain.Build
	lease       ports.Lease
	parent      *domain.OperationDescriptor
	inDegree    map[domain.InternedString]int
	tasks       map[domain.InternedString]domain.TaskDefinition
	ready       []domain.InternedString
	active      int
	resultsCh   chan result
	errs        error
	ctx         context.Context
	parallelism int
}

func (e *Executor) newRunState(
	ctx context.Context,
	graph *domain.Graph,
	build *domain.Build,
	lease ports.Lease,
	parent *domain.OperationDescriptor,
	parallelism int,
) *runState {
	inDegree := make(map[domain.InternedString]int, graph.Len())
	tasks := make(map[domain.InternedString]domain.TaskDefinition, graph.Len())

	var ready []domain.InternedString
	for task := range graph.Walk() {
		tasks[task.Name] = task
		inDegree[task.Name] = len(task.Dependencies)
		if len(task.Dependencies) == 0 {
			ready = append(ready, task.Name)
		}
	}

	return &runState{
		e:           e,
		graph:       graph,
		build:       build,
		lease:       lease,
		parent:      parent,
		inDegree:    inDegree,
		tasks:       tasks,
		ready:       ready,
		resultsCh:   make(chan result, parallelism),
		ctx:         ctx,
		parallelism: parallelism,
	}
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		taskName := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.e.setStatus(taskName, StatusRunning)

		go func(t domain.TaskDefinition) {
			state.resultsCh <- result{task: t.Name, err: state.executeTask(state.ctx, &t)}
		}(state.tasks[taskName])
	}
}

func (state *runState) executeTask(ctx context.Context, task *domain.TaskDefinition) error {
	e := state.e
	path := task.Path()

	inputHash, err := state.fingerprintInputs(task)
	if err != nil {
		return err
	}
	if inputHash != "" && state.upToDate(path, inputHash) {
		e.setStatus(task.Name, StatusUpToDate)
		if e.logger != nil {
			e.logger.Info(fmt.Sprintf("%s UP-TO-DATE", path))
		}
		return nil
	}

	// Lifecycle tasks carry no command; they exist to aggregate dependencies.
	if len(task.Command) > 0 {
		if err := state.dispatch(ctx, task, path); err != nil {
			return err
		}
	}

	if inputHash != "" {
		if err := e.store.Put(path, inputHash); err != nil {
			return zerr.Wrap(err, "failed to store build info")
		}
	}
	return nil
}

// fingerprintInputs returns "" when up-to-date checking is not possible for
// the task, either because it declares no inputs or no hasher is wired.
func (state *runState) fingerprintInputs(task *domain.TaskDefinition) (string, error) {
	e := state.e
	if len(task.Inputs) == 0 || e.hasher == nil || e.store == nil {
		return "", nil
	}

	inputs := make([]string, 0, len(task.Inputs))
	for _, input := range task.Inputs {
		inputs = append(inputs, input.String())
	}
	hash, err := e.hasher.HashInputs(state.build.RootDir, inputs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to fingerprint inputs"), "task", task.Path())
	}
	return hash, nil
}

func (state *runState) upToDate(path, inputHash string) bool {
	stored, err := state.e.store.Get(path)
	return err == nil && stored != "" && stored == inputHash
}

func (state *runState) dispatch(ctx context.Context, task *domain.TaskDefinition, path string) error {
	e := state.e

	worker, err := e.pool.GetWorker(ctx, task.Fork)
	if err != nil {
		return err
	}
	defer e.pool.Release(worker)

	spec := domain.WorkSpec{
		DisplayName: "Execute " + path,
		TaskPath:    path,
		Command:     task.Command,
		WorkingDir:  state.build.RootDir,
		Fork:        task.Fork,
	}

	res, err := worker.Execute(ctx, spec, state.lease, state.parent)
	if err != nil {
		return err
	}
	if !res.Success {
		return zerr.With(zerr.Wrap(res.Failure, "task execution failed"), "task", path)
	}
	return nil
}

func (state *runState) handleResult(res result) {
	state.active--
	if res.err != nil {
		state.errs = errors.Join(state.errs, res.err)
		state.e.setStatus(res.task, StatusFailed)
		return
	}

	if state.e.Status(res.task) != StatusUpToDate {
		state.e.setStatus(res.task, StatusCompleted)
	}
	for _, dependent := range state.graph.Dependents(res.task) {
		state.inDegree[dependent]--
		if state.inDegree[dependent] == 0 {
			state.ready = append(state.ready, dependent)
		}
	}
}

func internTaskName(name string) domain.InternedString {
	return domain.NewInternedString(strings.TrimPrefix(name, ":"))
}

func taskPath(name domain.InternedString) string {
	return ":" + name.String()
}
