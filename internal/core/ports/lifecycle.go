package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// SettingsLoader finds and loads the settings of a build, including the
// settings of any builds it includes.
//
//go:generate go run go.uber.org/mock/mockgen -source=lifecycle.go -destination=mocks/mock_lifecycle.go -package=mocks
type SettingsLoader interface {
	FindAndLoadSettings(ctx context.Context, build *domain.Build) (*domain.Settings, error)
}

// InitScriptHandler runs a build's init hooks before its settings are applied.
type InitScriptHandler interface {
	ExecuteScripts(ctx context.Context, build *domain.Build) error
}

// BuildConfigurer evaluates project configuration for a loaded build.
type BuildConfigurer interface {
	Configure(ctx context.Context, build *domain.Build) error
}

// ExceptionAnalyser normalizes a raw failure for reporting. It is applied
// exactly once, at the top of the launcher, before the failure is attached
// to the build result.
type ExceptionAnalyser interface {
	Transform(failure error) error
}

// BuildListener is notified of build lifecycle events. Each launcher
// invocation fires BuildStarted and BuildFinished exactly once, win or lose.
type BuildListener interface {
	BuildStarted(build *domain.Build)
	ProjectsEvaluated(build *domain.Build)
	BuildFinished(result *domain.BuildResult)
}

// BuildCompletionListener is notified once when a launcher's build-scoped
// services have been stopped.
type BuildCompletionListener interface {
	Completed()
}
