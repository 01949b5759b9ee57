package operations_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/operations"
)

type recordedEvent struct {
	desc    domain.OperationDescriptor
	result  any
	failure error
}

// recordingListener captures started/finished notifications for assertions.
type recordingListener struct {
	mu       sync.Mutex
	started  []domain.OperationDescriptor
	finished []recordedEvent
}

func (l *recordingListener) Started(desc domain.OperationDescriptor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.started = append(l.started, desc)
}

func (l *recordingListener) Finished(desc domain.OperationDescriptor, result any, failure error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.finished = append(l.finished, recordedEvent{desc: desc, result: result, failure: failure})
}

func (l *recordingListener) finishedByName(name string) (recordedEvent, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ev := range l.finished {
		if ev.desc.DisplayName == name {
			return ev, true
		}
	}
	return recordedEvent{}, false
}

func TestExecutor_Run(t *testing.T) {
	t.Run("NotifiesStartAndFinish", func(t *testing.T) {
		listener := &recordingListener{}
		e := operations.NewExecutor(listener, 1)

		err := e.Run(nil, operations.New(
			operations.Description{DisplayName: "Configure build"},
			func(*operations.Context) error { return nil },
		))
		require.NoError(t, err)

		require.Len(t, listener.started, 1)
		require.Len(t, listener.finished, 1)
		assert.Equal(t, "Configure build", listener.started[0].DisplayName)
		assert.Zero(t, listener.started[0].ParentID)
		assert.NoError(t, listener.finished[0].failure)
	})

	t.Run("EscapingFailureIsObservedAndPropagated", func(t *testing.T) {
		listener := &recordingListener{}
		e := operations.NewExecutor(listener, 1)

		boom := errors.New("boom")
		err := e.Run(nil, operations.New(
			operations.Description{DisplayName: "Run tasks"},
			func(*operations.Context) error { return boom },
		))
		require.ErrorIs(t, err, boom)

		require.Len(t, listener.finished, 1)
		assert.ErrorIs(t, listener.finished[0].failure, boom)
	})

	t.Run("ExplicitFailureIsObservedByListener", func(t *testing.T) {
		listener := &recordingListener{}
		e := operations.NewExecutor(listener, 1)

		boom := errors.New("boom")
		err := e.Run(nil, operations.New(
			operations.Description{DisplayName: "Calculate task graph"},
			func(octx *operations.Context) error {
				octx.Failed(boom)
				return nil
			},
		))
		require.NoError(t, err)

		require.Len(t, listener.finished, 1)
		assert.ErrorIs(t, listener.finished[0].failure, boom)
	})

	t.Run("DetailsFixedBeforeStart", func(t *testing.T) {
		listener := &recordingListener{}
		e := operations.NewExecutor(listener, 1)

		details := domain.CalculateTaskGraphDetails{TaskRequests: []string{"compile"}}
		err := e.Run(nil, operations.New(
			operations.Description{DisplayName: "Calculate task graph", Details: details},
			func(*operations.Context) error { return nil },
		))
		require.NoError(t, err)

		require.Len(t, listener.started, 1)
		assert.Equal(t, details, listener.started[0].Details)
	})
}

func TestExecutor_Call(t *testing.T) {
	listener := &recordingListener{}
	e := operations.NewExecutor(listener, 1)

	result, err := e.Call(nil, operations.New(
		operations.Description{DisplayName: "Calculate task graph"},
		func(octx *operations.Context) error {
			octx.SetResult(domain.CalculateTaskGraphResult{RequestedTaskPaths: []string{":compile"}})
			return nil
		},
	))
	require.NoError(t, err)

	calcResult, ok := result.(domain.CalculateTaskGraphResult)
	require.True(t, ok)
	assert.Equal(t, []string{":compile"}, calcResult.RequestedTaskPaths)

	require.Len(t, listener.finished, 1)
	assert.Equal(t, result, listener.finished[0].result)
}

func TestExecutor_NestedOperations(t *testing.T) {
	listener := &recordingListener{}
	e := operations.NewExecutor(listener, 1)

	err := e.Run(nil, operations.New(
		operations.Description{DisplayName: "outer"},
		func(octx *operations.Context) error {
			return e.Run(octx.Descriptor(), operations.New(
				operations.Description{DisplayName: "inner"},
				func(*operations.Context) error { return nil },
			))
		},
	))
	require.NoError(t, err)

	require.Len(t, listener.started, 2)
	outer := listener.started[0]
	inner := listener.started[1]
	assert.Equal(t, outer.ID, inner.ParentID)
	assert.NotEqual(t, outer.ID, inner.ID)
}

func TestExecutor_RunAll(t *testing.T) {
	t.Run("SiblingsFinishWhenOneFails", func(t *testing.T) {
		listener := &recordingListener{}
		e := operations.NewExecutor(listener, 3)

		boom := errors.New("boom")
		err := e.RunAll(nil, func(q *operations.Queue) {
			q.Add(operations.New(
				operations.Description{DisplayName: "ok-1"},
				func(*operations.Context) error { return nil },
			))
			q.Add(operations.New(
				operations.Description{DisplayName: "failing"},
				func(*operations.Context) error { return boom },
			))
			q.Add(operations.New(
				operations.Description{DisplayName: "ok-2"},
				func(*operations.Context) error {
					time.Sleep(20 * time.Millisecond)
					return nil
				},
			))
		})
		require.ErrorIs(t, err, boom)

		// All three report start and finish; the siblings complete normally.
		assert.Len(t, listener.started, 3)
		assert.Len(t, listener.finished, 3)
		for _, name := range []string{"ok-1", "ok-2"} {
			ev, found := listener.finishedByName(name)
			require.True(t, found)
			assert.NoError(t, ev.failure)
		}
	})

	t.Run("QueuedOperationsShareTheParent", func(t *testing.T) {
		listener := &recordingListener{}
		e := operations.NewExecutor(listener, 2)

		parent := &domain.OperationDescriptor{ID: 42, DisplayName: "Run tasks"}
		err := e.RunAll(parent, func(q *operations.Queue) {
			for range 3 {
				q.Add(operations.New(
					operations.Description{DisplayName: "child"},
					func(*operations.Context) error { return nil },
				))
			}
		})
		require.NoError(t, err)

		require.Len(t, listener.started, 3)
		for _, desc := range listener.started {
			assert.Equal(t, domain.OperationID(42), desc.ParentID)
		}
	})

	t.Run("ConcurrencyIsBounded", func(t *testing.T) {
		listener := &recordingListener{}
		e := operations.NewExecutor(listener, 2)

		var running, peak atomic.Int64
		err := e.RunAll(nil, func(q *operations.Queue) {
			for range 8 {
				q.Add(operations.New(
					operations.Description{DisplayName: "bounded"},
					func(*operations.Context) error {
						n := running.Add(1)
						for {
							p := peak.Load()
							if n <= p || peak.CompareAndSwap(p, n) {
								break
							}
						}
						time.Sleep(5 * time.Millisecond)
						running.Add(-1)
						return nil
					},
				))
			}
		})
		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})
}
