package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/cmd/forge/commands"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/build"
	"go.trai.ch/forge/internal/core/domain"
)

type mockApp struct {
	runFunc   func(ctx context.Context, opts app.RunOptions) (*domain.BuildResult, error)
	serveFunc func(ctx context.Context, idleTimeout time.Duration) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) (*domain.BuildResult, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return &domain.BuildResult{}, nil
}

func (m *mockApp) ServeWorker(ctx context.Context, idleTimeout time.Duration) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, idleTimeout)
	}
	return nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.BuildResult, error) {
				capturedOpts = opts
				called = true
				return &domain.BuildResult{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"run", "build", "check",
			"--project-dir", "proj",
			"--exclude", "lint",
			"--max-workers", "2",
			"--configure-on-demand",
			"--up-to", "configure",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"build", "check"}, capturedOpts.TaskNames)
		assert.Equal(t, "proj", capturedOpts.RootDir)
		assert.Equal(t, []string{"lint"}, capturedOpts.ExcludedTaskNames)
		assert.Equal(t, 2, capturedOpts.MaxWorkers)
		assert.True(t, capturedOpts.ConfigureOnDemand)
		assert.Equal(t, domain.StageConfigure, capturedOpts.UpTo)
	})

	t.Run("runs the whole build without arguments", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.BuildResult, error) {
				capturedOpts = opts
				return &domain.BuildResult{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, capturedOpts.TaskNames)
		assert.Equal(t, domain.StageBuild, capturedOpts.UpTo)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.BuildResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "target"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects unknown stage names", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.BuildResult, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "target", "--up-to", "deploy"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown build stage")
	})
}

func TestCommands_WorkerServe(t *testing.T) {
	var capturedTimeout time.Duration
	called := false

	mock := &mockApp{
		serveFunc: func(_ context.Context, idleTimeout time.Duration) error {
			capturedTimeout = idleTimeout
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"worker", "serve", "--idle-timeout", "1s"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, time.Second, capturedTimeout)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
