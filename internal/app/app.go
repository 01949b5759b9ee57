// Package app implements the application layer for forge.
package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/forge/internal/adapters/cas"
	"go.trai.ch/forge/internal/adapters/shell"
	"go.trai.ch/forge/internal/adapters/worker"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/launcher"
	"go.trai.ch/forge/internal/engine/leases"
	"go.trai.ch/forge/internal/engine/operations"
	"go.trai.ch/forge/internal/engine/taskgraph"
	"go.trai.ch/forge/internal/engine/workers"
	"go.trai.ch/zerr"
)

// App drives builds end to end: it assembles a launcher per invocation,
// shares one lease registry and worker pool across the whole composite, and
// runs the root build up to the requested stage.
type App struct {
	settingsLoader ports.SettingsLoader
	initScripts    ports.InitScriptHandler
	factory        ports.WorkerProcessFactory
	monitor        ports.MemoryMonitor
	operations     ports.OperationListener
	hasher         ports.InputHasher
	store          ports.BuildInfoStore
	logger         ports.Logger
}

// New creates a new App instance.
func New(
	settingsLoader ports.SettingsLoader,
	initScripts ports.InitScriptHandler,
	factory ports.WorkerProcessFactory,
	monitor ports.MemoryMonitor,
	opListener ports.OperationListener,
	hasher ports.InputHasher,
	store ports.BuildInfoStore,
	logger ports.Logger,
) *App {
	return &App{
		settingsLoader: settingsLoader,
		initScripts:    initScripts,
		factory:        factory,
		monitor:        monitor,
		operations:     opListener,
		hasher:         hasher,
		store:          store,
		logger:         logger,
	}
}

// RunOptions parameterize one build invocation.
type RunOptions struct {
	RootDir           string
	TaskNames         []string
	ExcludedTaskNames []string
	ConfigureOnDemand bool
	MaxWorkers        int

	// UpTo is the stage to run up to. The zero value runs the full build.
	UpTo domain.Stage
}

// invocation holds the build-scoped collaborators shared by the root build
// and every included build of one invocation.
type invocation struct {
	registry *leases.Registry
	ops      *operations.Executor
	pool     *workers.Pool
	included *taskgraph.IncludedBuildController
}

// Run executes one build invocation.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.BuildResult, error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = runtime.NumCPU()
	}

	inv := &invocation{
		registry: leases.NewRegistry(maxWorkers),
		ops:      operations.NewExecutor(a.operations, maxWorkers),
		included: taskgraph.NewIncludedBuildController(),
	}
	inv.pool = workers.NewPool(a.factory, inv.ops, a.monitor, a.logger, maxWorkers)
	defer func() {
		if err := inv.pool.Stop(); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to stop worker pool"))
		}
	}()

	build := &domain.Build{
		ID:      domain.RootBuildID,
		RootDir: opts.RootDir,
		StartParameter: domain.StartParameter{
			TaskNames:         opts.TaskNames,
			ExcludedTaskNames: opts.ExcludedTaskNames,
			ConfigureOnDemand: opts.ConfigureOnDemand,
			MaxWorkers:        maxWorkers,
		},
	}

	l := a.newLauncher(build, inv, a.store)
	defer func() {
		if err := l.Stop(); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to stop launcher"))
		}
	}()

	// Load first: included builds only become known once settings are
	// loaded, and they must be registered before task execution starts.
	// Later stages resume where this invocation left off.
	result, err := l.Load(ctx)
	if err != nil {
		return result, err
	}
	a.registerIncludedBuilds(l.Build(), inv)

	switch opts.UpTo {
	case domain.StageLoad:
		return result, nil
	case domain.StageConfigure:
		return l.BuildAnalysis(ctx)
	default:
		return l.Run(ctx)
	}
}

// ServeWorker runs the worker serve loop on the process's standard streams.
// Stdout carries the work protocol, so command output and logs go to stderr.
func (a *App) ServeWorker(ctx context.Context, idleTimeout time.Duration) error {
	runner := shell.NewExecutor(a.logger)
	return worker.NewRuntime(os.Stdin, os.Stdout, runner, worker.NewLifecycle(idleTimeout)).Serve(ctx)
}

func (a *App) newLauncher(build *domain.Build, inv *invocation, store ports.BuildInfoStore) *launcher.Launcher {
	return launcher.New(build, launcher.Deps{
		InitScripts:        a.initScripts,
		SettingsLoader:     a.settingsLoader,
		Configurer:         &graphConfigurer{logger: a.logger},
		Analyser:           &exceptionAnalyser{},
		BuildListener:      &loggingBuildListener{logger: a.logger},
		CompletionListener: &loggingCompletionListener{logger: a.logger, build: build},
		Operations:         inv.ops,
		TaskGraph:          taskgraph.NewExecutor(inv.pool, a.hasher, store, a.logger),
		IncludedBuilds:     inv.included,
		Leases:             inv.registry,
	})
}

// registerIncludedBuilds makes every build included by the given build
// awaitable. Nested includes register recursively once their including build
// has loaded its settings.
func (a *App) registerIncludedBuilds(build *domain.Build, inv *invocation) {
	for _, included := range build.IncludedBuilds() {
		child := &domain.Build{
			ID:      included.ID,
			RootDir: filepath.Join(build.RootDir, included.Dir),
			StartParameter: domain.StartParameter{
				ConfigureOnDemand: build.StartParameter.ConfigureOnDemand,
				MaxWorkers:        build.StartParameter.MaxWorkers,
			},
		}
		inv.included.Register(included.ID, a.runnerFor(child, inv))
	}
}

func (a *App) runnerFor(build *domain.Build, inv *invocation) taskgraph.BuildRunner {
	return buildRunnerFunc(func(ctx context.Context) (*domain.BuildResult, error) {
		store, err := cas.NewStore(filepath.Join(build.RootDir, cas.DefaultStorePath))
		if err != nil {
			return nil, err
		}

		l := a.newLauncher(build, inv, store)
		defer func() {
			if stopErr := l.Stop(); stopErr != nil {
				a.logger.Error(zerr.Wrap(stopErr, "failed to stop launcher"))
			}
		}()

		result, err := l.Load(ctx)
		if err != nil {
			return result, err
		}
		a.registerIncludedBuilds(l.Build(), inv)

		return l.Run(ctx)
	})
}

type buildRunnerFunc func(ctx context.Context) (*domain.BuildResult, error)

func (f buildRunnerFunc) Run(ctx context.Context) (*domain.BuildResult, error) {
	return f(ctx)
}
