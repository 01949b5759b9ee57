// Package launcher implements the build lifecycle orchestrator: a strict
// stage machine driving one build through Load, Configure and Build exactly
// once, wrapping each phase in a build operation and holding the top-level
// worker lease for the whole invocation.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/leases"
	"go.trai.ch/forge/internal/engine/operations"
)

// Deps are the collaborators a Launcher drives a build with.
type Deps struct {
	InitScripts        ports.InitScriptHandler
	SettingsLoader     ports.SettingsLoader
	Configurer         ports.BuildConfigurer
	Analyser           ports.ExceptionAnalyser
	BuildListener      ports.BuildListener
	CompletionListener ports.BuildCompletionListener
	Operations         *operations.Executor
	TaskGraph          ports.TaskGraphExecutor
	IncludedBuilds     ports.IncludedBuildTaskGraph
	Leases             *leases.Registry

	// Services are build-scoped services closed by Stop.
	Services []io.Closer
}

// Launcher drives a single build through its lifecycle. One launcher
// instance drives one build; its stages execute sequentially on whichever
// goroutine invokes it.
type Launcher struct {
	build *domain.Build
	deps  Deps

	stage     domain.Stage
	settings  *domain.Settings
	completed sync.Once
}

// New creates a launcher for the given build.
func New(build *domain.Build, deps Deps) *Launcher {
	return &Launcher{
		build: build,
		deps:  deps,
	}
}

// Build returns the build this launcher drives.
func (l *Launcher) Build() *domain.Build {
	return l.build
}

// Settings returns the settings loaded during the Load stage, or nil.
func (l *Launcher) Settings() *domain.Settings {
	return l.settings
}

// Load runs the build up to the Load stage.
func (l *Launcher) Load(ctx context.Context) (*domain.BuildResult, error) {
	return l.doBuild(ctx, domain.StageLoad)
}

// BuildAnalysis runs the build up to the Configure stage.
func (l *Launcher) BuildAnalysis(ctx context.Context) (*domain.BuildResult, error) {
	return l.doBuild(ctx, domain.StageConfigure)
}

// Run runs the build through the Build stage. The launcher cannot be reused
// afterwards.
func (l *Launcher) Run(ctx context.Context) (*domain.BuildResult, error) {
	return l.doBuild(ctx, domain.StageBuild)
}

// doBuild executes the stages up to upTo inside the top-level worker lease.
// Build listeners see exactly one started and one finished notification per
// invocation; any failure passes through the exception analyser exactly once
// and comes back wrapped as a ReportedError.
func (l *Launcher) doBuild(ctx context.Context, upTo domain.Stage) (*domain.BuildResult, error) {
	var result *domain.BuildResult

	err := l.deps.Leases.WithLease(ctx, func(lease ports.Lease) error {
		var failure error

		l.deps.BuildListener.BuildStarted(l.build)
		if stageErr := l.doStages(ctx, lease, upTo); stageErr != nil {
			failure = l.deps.Analyser.Transform(stageErr)
		}

		result = &domain.BuildResult{
			Action:  upTo.String(),
			Build:   l.build,
			Failure: failure,
		}
		l.deps.BuildListener.BuildFinished(result)

		if failure != nil {
			return domain.NewReportedError(failure)
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

// doStages resumes from the stage already reached and advances up to upTo.
// Repeated invocations never repeat completed work.
func (l *Launcher) doStages(ctx context.Context, lease ports.Lease, upTo domain.Stage) error {
	if l.stage == domain.StageBuild {
		return domain.ErrBuildAlreadyRun
	}

	if l.stage == domain.StageUnset {
		if err := l.deps.InitScripts.ExecuteScripts(ctx, l.build); err != nil {
			return err
		}

		settings, err := l.deps.SettingsLoader.FindAndLoadSettings(ctx, l.build)
		if err != nil {
			return err
		}
		l.settings = settings
		l.build.Settings = settings

		l.stage = domain.StageLoad
	}

	if upTo == domain.StageLoad {
		return nil
	}

	if l.stage == domain.StageLoad {
		if err := l.deps.Operations.Run(nil, l.configureOperation(ctx)); err != nil {
			return err
		}
		l.stage = domain.StageConfigure
	}

	if upTo == domain.StageConfigure {
		return nil
	}

	// Past this point the launcher cannot be reused.
	l.stage = domain.StageBuild

	if err := l.deps.Operations.Run(nil, l.calculateTaskGraphOperation(ctx)); err != nil {
		return err
	}

	includedBuilds := l.build.IncludedBuilds()
	if len(includedBuilds) == 0 {
		return l.deps.Operations.Run(nil, l.runTasksOperation(ctx, lease))
	}

	// Composite build: the root's tasks and every included build run as one
	// batch of sibling operations with bounded concurrency.
	return l.deps.Operations.RunAll(nil, func(q *operations.Queue) {
		q.Add(l.runTasksOperation(ctx, lease))
		for _, included := range includedBuilds {
			q.Add(l.runIncludedBuildOperation(ctx, included))
		}
	})
}

func (l *Launcher) configureOperation(ctx context.Context) operations.Runnable {
	return operations.New(
		operations.Description{DisplayName: "Configure build"},
		func(*operations.Context) error {
			if err := l.deps.Configurer.Configure(ctx, l.build); err != nil {
				return err
			}
			if !l.build.StartParameter.ConfigureOnDemand {
				l.deps.BuildListener.ProjectsEvaluated(l.build)
			}
			return nil
		},
	)
}

func (l *Launcher) calculateTaskGraphOperation(ctx context.Context) operations.Runnable {
	start := l.build.StartParameter
	return operations.New(
		operations.Description{
			DisplayName: "Calculate task graph",
			Details: domain.CalculateTaskGraphDetails{
				TaskRequests:      start.TaskNames,
				ExcludedTaskNames: start.ExcludedTaskNames,
			},
		},
		func(octx *operations.Context) error {
			if err := l.deps.TaskGraph.Select(ctx, l.build); err != nil {
				octx.Failed(err)
				return err
			}

			if start.ConfigureOnDemand {
				l.deps.BuildListener.ProjectsEvaluated(l.build)
			}

			octx.SetResult(domain.CalculateTaskGraphResult{
				RequestedTaskPaths: l.deps.TaskGraph.RequestedTasks(),
				FilteredTaskPaths:  l.deps.TaskGraph.FilteredTasks(),
			})
			return nil
		},
	)
}

func (l *Launcher) runTasksOperation(ctx context.Context, lease ports.Lease) operations.Runnable {
	return operations.New(
		operations.Description{DisplayName: "Run tasks"},
		func(octx *operations.Context) error {
			return l.deps.TaskGraph.Execute(ctx, l.build, lease, octx.Descriptor())
		},
	)
}

func (l *Launcher) runIncludedBuildOperation(ctx context.Context, included domain.IncludedBuild) operations.Runnable {
	return operations.New(
		operations.Description{DisplayName: fmt.Sprintf("Run tasks for %s", included.ID)},
		func(*operations.Context) error {
			return l.deps.IncludedBuilds.AwaitCompletion(ctx, included.ID)
		},
	)
}

// Stop tears down the build-scoped services and notifies the completion
// listener exactly once, even when a service fails to close.
func (l *Launcher) Stop() error {
	var errs []error
	for _, service := range l.deps.Services {
		if err := service.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.completed.Do(func() {
		if l.deps.CompletionListener != nil {
			l.deps.CompletionListener.Completed()
		}
	})
	return errors.Join(errs...)
}
