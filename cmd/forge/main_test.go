package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*app.App, *mocks.MockInitScriptHandler, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockInit := mocks.NewMockInitScriptHandler(ctrl)
	mockFactory := mocks.NewMockWorkerProcessFactory(ctrl)
	mockMonitor := mocks.NewMockMemoryMonitor(ctrl)
	mockOps := mocks.NewMockOperationListener(ctrl)
	mockHasher := mocks.NewMockInputHasher(ctrl)
	mockStore := mocks.NewMockBuildInfoStore(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockOps.EXPECT().Started(gomock.Any()).AnyTimes()
	mockOps.EXPECT().Finished(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := app.New(
		mockLoader,
		mockInit,
		mockFactory,
		mockMonitor,
		mockOps,
		mockHasher,
		mockStore,
		mockLogger,
	)

	return application, mockInit, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	application, _, mockLogger := newTestApp(t)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the build fails.
func TestRun_ExecutionError(t *testing.T) {
	application, mockInit, mockLogger := newTestApp(t)

	// Failing init hooks fail the build before settings are loaded.
	mockInit.EXPECT().ExecuteScripts(gomock.Any(), gomock.Any()).Return(errors.New("hook failed"))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run", "target"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	application, mockInit, mockLogger := newTestApp(t)

	started := make(chan struct{})
	mockInit.EXPECT().ExecuteScripts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ any) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	codes := make(chan int)

	go func() {
		codes <- run(ctx, []string{"run", "target"}, io.Discard, func(context.Context) (*app.Components, func(), error) {
			return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
		})
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("run() never reached the init scripts")
	}
	cancel()

	select {
	case ret := <-codes:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for run() to return")
	}
}
