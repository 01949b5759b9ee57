package launcher_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/launcher"
	"go.trai.ch/forge/internal/engine/leases"
	"go.trai.ch/forge/internal/engine/operations"
	"go.uber.org/mock/gomock"
)

type finishedOp struct {
	desc    domain.OperationDescriptor
	result  any
	failure error
}

// opRecorder captures operation notifications for assertions.
type opRecorder struct {
	mu       sync.Mutex
	started  []domain.OperationDescriptor
	finished []finishedOp
}

func (r *opRecorder) Started(desc domain.OperationDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, desc)
}

func (r *opRecorder) Finished(desc domain.OperationDescriptor, result any, failure error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, finishedOp{desc: desc, result: result, failure: failure})
}

func (r *opRecorder) startedNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.started))
	for _, desc := range r.started {
		names = append(names, desc.DisplayName)
	}
	return names
}

func (r *opRecorder) find(displayName string) (finishedOp, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, op := range r.finished {
		if op.desc.DisplayName == displayName {
			return op, true
		}
	}
	return finishedOp{}, false
}

type fixture struct {
	build      *domain.Build
	initHooks  *mocks.MockInitScriptHandler
	loader     *mocks.MockSettingsLoader
	configurer *mocks.MockBuildConfigurer
	analyser   *mocks.MockExceptionAnalyser
	listener   *mocks.MockBuildListener
	completion *mocks.MockBuildCompletionListener
	taskGraph  *mocks.MockTaskGraphExecutor
	included   *mocks.MockIncludedBuildTaskGraph
	recorder   *opRecorder
	registry   *leases.Registry

	results []*domain.BuildResult
}

func newFixture(t *testing.T, param domain.StartParameter, services ...io.Closer) (*fixture, *launcher.Launcher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		build:      &domain.Build{ID: domain.RootBuildID, RootDir: t.TempDir(), StartParameter: param},
		initHooks:  mocks.NewMockInitScriptHandler(ctrl),
		loader:     mocks.NewMockSettingsLoader(ctrl),
		configurer: mocks.NewMockBuildConfigurer(ctrl),
		analyser:   mocks.NewMockExceptionAnalyser(ctrl),
		listener:   mocks.NewMockBuildListener(ctrl),
		completion: mocks.NewMockBuildCompletionListener(ctrl),
		taskGraph:  mocks.NewMockTaskGraphExecutor(ctrl),
		included:   mocks.NewMockIncludedBuildTaskGraph(ctrl),
		recorder:   &opRecorder{},
		registry:   leases.NewRegistry(4),
	}

	// The analyser passes failures through untouched unless a test overrides it.
	f.analyser.EXPECT().Transform(gomock.Any()).
		DoAndReturn(func(failure error) error { return failure }).
		AnyTimes()

	f.listener.EXPECT().BuildFinished(gomock.Any()).
		Do(func(result *domain.BuildResult) { f.results = append(f.results, result) }).
		AnyTimes()

	l := launcher.New(f.build, launcher.Deps{
		InitScripts:        f.initHooks,
		SettingsLoader:     f.loader,
		Configurer:         f.configurer,
		Analyser:           f.analyser,
		BuildListener:      f.listener,
		CompletionListener: f.completion,
		Operations:         operations.NewExecutor(f.recorder, 4),
		TaskGraph:          f.taskGraph,
		IncludedBuilds:     f.included,
		Leases:             f.registry,
		Services:           services,
	})
	return f, l
}

func (f *fixture) expectLoad(settings *domain.Settings) {
	f.initHooks.EXPECT().ExecuteScripts(gomock.Any(), f.build).Return(nil)
	f.loader.EXPECT().FindAndLoadSettings(gomock.Any(), f.build).Return(settings, nil)
}

func (f *fixture) expectConfigure() {
	f.configurer.EXPECT().Configure(gomock.Any(), f.build).Return(nil)
}

func (f *fixture) expectTaskGraph(requested ...string) {
	f.taskGraph.EXPECT().Select(gomock.Any(), f.build).Return(nil)
	f.taskGraph.EXPECT().RequestedTasks().Return(requested).AnyTimes()
	f.taskGraph.EXPECT().FilteredTasks().Return(nil).AnyTimes()
}

func TestLauncher_Run(t *testing.T) {
	param := domain.StartParameter{TaskNames: []string{"build"}}
	f, l := newFixture(t, param)

	settings := &domain.Settings{ProjectName: "forge"}
	f.expectLoad(settings)
	f.expectConfigure()
	f.expectTaskGraph(":build")

	f.listener.EXPECT().BuildStarted(f.build).Times(1)
	f.listener.EXPECT().ProjectsEvaluated(f.build).Times(1)

	f.taskGraph.EXPECT().Execute(gomock.Any(), f.build, gomock.Not(gomock.Nil()), gomock.Not(gomock.Nil())).Return(nil)

	result, err := l.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Build", result.Action)
	assert.NoError(t, result.Failure)
	assert.Same(t, settings, l.Settings())
	assert.Same(t, settings, f.build.Settings)

	assert.Equal(t, []string{"Configure build", "Calculate task graph", "Run tasks"}, f.recorder.startedNames())

	calc, ok := f.recorder.find("Calculate task graph")
	require.True(t, ok)
	assert.Equal(t, domain.CalculateTaskGraphDetails{TaskRequests: []string{"build"}}, calc.desc.Details)
	assert.Equal(t, domain.CalculateTaskGraphResult{RequestedTaskPaths: []string{":build"}}, calc.result)
}

func TestLauncher_StagesResumeWithoutRepeating(t *testing.T) {
	f, l := newFixture(t, domain.StartParameter{})

	// Each collaborator runs exactly once across the three invocations.
	f.expectLoad(&domain.Settings{ProjectName: "forge"})
	f.expectConfigure()
	f.expectTaskGraph()
	f.taskGraph.EXPECT().Execute(gomock.Any(), f.build, gomock.Any(), gomock.Any()).Return(nil)

	f.listener.EXPECT().BuildStarted(f.build).Times(3)
	f.listener.EXPECT().ProjectsEvaluated(f.build).Times(1)

	ctx := context.Background()

	result, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Load", result.Action)

	result, err = l.BuildAnalysis(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Configure", result.Action)

	result, err = l.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Build", result.Action)

	require.Len(t, f.results, 3)
}

func TestLauncher_RunTwiceIsAUsageError(t *testing.T) {
	f, l := newFixture(t, domain.StartParameter{})

	f.expectLoad(&domain.Settings{})
	f.expectConfigure()
	f.expectTaskGraph()
	f.taskGraph.EXPECT().Execute(gomock.Any(), f.build, gomock.Any(), gomock.Any()).Return(nil)

	f.listener.EXPECT().BuildStarted(f.build).Times(2)
	f.listener.EXPECT().ProjectsEvaluated(f.build).Times(1)

	ctx := context.Background()
	_, err := l.Run(ctx)
	require.NoError(t, err)

	result, err := l.Run(ctx)
	require.ErrorIs(t, err, domain.ErrBuildAlreadyRun)
	var reported *domain.ReportedError
	assert.ErrorAs(t, err, &reported)
	require.NotNil(t, result)
	assert.ErrorIs(t, result.Failure, domain.ErrBuildAlreadyRun)
}

func TestLauncher_FailureIsAnalysedOnceAndStillReported(t *testing.T) {
	f, l := newFixture(t, domain.StartParameter{})

	f.expectLoad(&domain.Settings{})

	boom := errors.New("configuration script failed")
	analysed := errors.New("analysed: configuration script failed")
	f.configurer.EXPECT().Configure(gomock.Any(), f.build).Return(boom)
	f.analyser.EXPECT().Transform(boom).Return(analysed).Times(1)

	f.listener.EXPECT().BuildStarted(f.build).Times(1)

	result, err := l.Run(context.Background())

	// Listeners already saw the failure; the returned error marks it reported.
	require.ErrorIs(t, err, analysed)
	var reported *domain.ReportedError
	assert.ErrorAs(t, err, &reported)

	require.NotNil(t, result)
	assert.ErrorIs(t, result.Failure, analysed)
	require.Len(t, f.results, 1)
	assert.Same(t, result, f.results[0])

	// The configure operation finished with the raw failure attached.
	configure, ok := f.recorder.find("Configure build")
	require.True(t, ok)
	assert.ErrorIs(t, configure.failure, boom)
}

func TestLauncher_ConfigureOnDemandDefersProjectsEvaluated(t *testing.T) {
	f, l := newFixture(t, domain.StartParameter{ConfigureOnDemand: true})

	f.expectLoad(&domain.Settings{})
	f.expectConfigure()
	f.taskGraph.EXPECT().RequestedTasks().Return(nil).AnyTimes()
	f.taskGraph.EXPECT().FilteredTasks().Return(nil).AnyTimes()
	f.taskGraph.EXPECT().Execute(gomock.Any(), f.build, gomock.Any(), gomock.Any()).Return(nil)

	f.listener.EXPECT().BuildStarted(f.build)

	// Projects are only reported evaluated once the task graph selection ran.
	gomock.InOrder(
		f.taskGraph.EXPECT().Select(gomock.Any(), f.build).Return(nil),
		f.listener.EXPECT().ProjectsEvaluated(f.build),
	)

	_, err := l.Run(context.Background())
	require.NoError(t, err)
}

func TestLauncher_CompositeBuildRunsSiblingOperations(t *testing.T) {
	f, l := newFixture(t, domain.StartParameter{})

	settings := &domain.Settings{
		ProjectName: "forge",
		IncludedBuilds: []domain.IncludedBuild{
			{ID: ":lib", Dir: "lib"},
			{ID: ":tools", Dir: "tools"},
		},
	}
	f.expectLoad(settings)
	f.expectConfigure()
	f.expectTaskGraph()

	f.listener.EXPECT().BuildStarted(f.build)
	f.listener.EXPECT().ProjectsEvaluated(f.build)

	f.taskGraph.EXPECT().Execute(gomock.Any(), f.build, gomock.Any(), gomock.Any()).Return(nil)
	f.included.EXPECT().AwaitCompletion(gomock.Any(), domain.BuildID(":lib")).Return(nil)
	f.included.EXPECT().AwaitCompletion(gomock.Any(), domain.BuildID(":tools")).Return(nil)

	result, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.NoError(t, result.Failure)

	var runOps []string
	for _, name := range f.recorder.startedNames() {
		if strings.HasPrefix(name, "Run tasks") {
			runOps = append(runOps, name)
		}
	}
	assert.ElementsMatch(t, []string{"Run tasks", "Run tasks for :lib", "Run tasks for :tools"}, runOps)
}

func TestLauncher_CompositeBuildSiblingsFinishWhenOneFails(t *testing.T) {
	f, l := newFixture(t, domain.StartParameter{})

	settings := &domain.Settings{
		IncludedBuilds: []domain.IncludedBuild{
			{ID: ":lib", Dir: "lib"},
			{ID: ":tools", Dir: "tools"},
		},
	}
	f.expectLoad(settings)
	f.expectConfigure()
	f.expectTaskGraph()

	f.listener.EXPECT().BuildStarted(f.build)
	f.listener.EXPECT().ProjectsEvaluated(f.build)

	libFailure := errors.New("included build :lib failed")

	// All three siblings run to completion even though :lib fails.
	f.taskGraph.EXPECT().Execute(gomock.Any(), f.build, gomock.Any(), gomock.Any()).Return(nil)
	f.included.EXPECT().AwaitCompletion(gomock.Any(), domain.BuildID(":lib")).Return(libFailure)
	f.included.EXPECT().AwaitCompletion(gomock.Any(), domain.BuildID(":tools")).Return(nil)

	result, err := l.Run(context.Background())
	require.ErrorIs(t, err, libFailure)
	assert.ErrorIs(t, result.Failure, libFailure)

	for _, name := range []string{"Run tasks", "Run tasks for :lib", "Run tasks for :tools"} {
		op, ok := f.recorder.find(name)
		require.True(t, ok, "operation %q should have finished", name)
		if name == "Run tasks for :lib" {
			assert.ErrorIs(t, op.failure, libFailure)
		} else {
			assert.NoError(t, op.failure)
		}
	}
}

func TestLauncher_HoldsLeaseForWholeInvocation(t *testing.T) {
	// A single-permit registry makes the held top-level lease observable.
	registry := leases.NewRegistry(1)

	ctrl := gomock.NewController(t)
	initHooks := mocks.NewMockInitScriptHandler(ctrl)
	loader := mocks.NewMockSettingsLoader(ctrl)
	listener := mocks.NewMockBuildListener(ctrl)
	analyser := mocks.NewMockExceptionAnalyser(ctrl)

	build := &domain.Build{ID: domain.RootBuildID}
	initHooks.EXPECT().ExecuteScripts(gomock.Any(), build).
		DoAndReturn(func(context.Context, *domain.Build) error {
			// The top-level lease is held; the only permit is unavailable.
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			_, err := registry.AcquireLease(ctx)
			return err
		})
	loader.EXPECT().FindAndLoadSettings(gomock.Any(), build).Return(&domain.Settings{}, nil).AnyTimes()
	listener.EXPECT().BuildStarted(build)
	listener.EXPECT().BuildFinished(gomock.Any())
	analyser.EXPECT().Transform(gomock.Any()).DoAndReturn(func(err error) error { return err })

	single := launcher.New(build, launcher.Deps{
		InitScripts:    initHooks,
		SettingsLoader: loader,
		Analyser:       analyser,
		BuildListener:  listener,
		Operations:     operations.NewExecutor(&opRecorder{}, 1),
		Leases:         registry,
	})

	result, err := single.Load(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, result)
	assert.ErrorIs(t, result.Failure, context.DeadlineExceeded)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestLauncher_Stop(t *testing.T) {
	closed := 0
	closeFailure := errors.New("cache store did not flush")
	services := []io.Closer{
		closerFunc(func() error { closed++; return nil }),
		closerFunc(func() error { closed++; return closeFailure }),
	}

	f, l := newFixture(t, domain.StartParameter{}, services...)

	// Completion fires once even when a service fails to close and Stop is
	// called again.
	f.completion.EXPECT().Completed().Times(1)

	err := l.Stop()
	require.ErrorIs(t, err, closeFailure)
	assert.Equal(t, 2, closed)

	require.ErrorIs(t, l.Stop(), closeFailure)
	assert.Equal(t, 4, closed)
}
