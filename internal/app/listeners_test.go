package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExceptionAnalyser(t *testing.T) {
	analyser := exceptionAnalyser{}

	t.Run("unwraps already reported failures", func(t *testing.T) {
		cause := errors.New("task execution failed")
		got := analyser.Transform(domain.NewReportedError(cause))
		assert.Equal(t, cause, got)
	})

	t.Run("passes fresh failures through", func(t *testing.T) {
		cause := errors.New("fresh failure")
		assert.Equal(t, cause, analyser.Transform(cause))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, analyser.Transform(nil))
	})
}

func TestGraphConfigurer(t *testing.T) {
	newLogger := func(t *testing.T) *mocks.MockLogger {
		t.Helper()
		logger := mocks.NewMockLogger(gomock.NewController(t))
		logger.EXPECT().Info(gomock.Any()).AnyTimes()
		return logger
	}

	t.Run("validates the task graph", func(t *testing.T) {
		graph := domain.NewGraph()
		require.NoError(t, graph.AddTask(&domain.TaskDefinition{Name: domain.NewInternedString("build")}))

		c := &graphConfigurer{logger: newLogger(t)}
		err := c.Configure(context.Background(), &domain.Build{
			ID:       domain.RootBuildID,
			Settings: &domain.Settings{ProjectName: "demo", Tasks: graph},
		})
		assert.NoError(t, err)
	})

	t.Run("fails on a cyclic graph", func(t *testing.T) {
		graph := domain.NewGraph()
		require.NoError(t, graph.AddTask(&domain.TaskDefinition{
			Name:         domain.NewInternedString("a"),
			Dependencies: []domain.InternedString{domain.NewInternedString("b")},
		}))
		require.NoError(t, graph.AddTask(&domain.TaskDefinition{
			Name:         domain.NewInternedString("b"),
			Dependencies: []domain.InternedString{domain.NewInternedString("a")},
		}))

		c := &graphConfigurer{logger: newLogger(t)}
		err := c.Configure(context.Background(), &domain.Build{
			ID:       domain.RootBuildID,
			Settings: &domain.Settings{ProjectName: "demo", Tasks: graph},
		})
		assert.Error(t, err)
	})

	t.Run("fails without settings", func(t *testing.T) {
		c := &graphConfigurer{logger: newLogger(t)}
		err := c.Configure(context.Background(), &domain.Build{ID: domain.RootBuildID})
		assert.Error(t, err)
	})
}
