package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// graphConfigurer evaluates a loaded build's configuration by validating its
// task graph.
type graphConfigurer struct {
	logger ports.Logger
}

func (c *graphConfigurer) Configure(_ context.Context, build *domain.Build) error {
	if build.Settings == nil {
		return zerr.With(zerr.New("build has no settings to configure"), "build", string(build.ID))
	}

	c.logger.Info(fmt.Sprintf("Configuring project %s", build.Settings.ProjectName))

	if build.Settings.Tasks == nil {
		return nil
	}
	return build.Settings.Tasks.Validate()
}

// exceptionAnalyser normalizes failures for reporting. Failures of included
// builds arrive already reported by the included build's own lifecycle;
// unwrapping them keeps a single report per failure.
type exceptionAnalyser struct{}

func (exceptionAnalyser) Transform(failure error) error {
	var reported *domain.ReportedError
	if errors.As(failure, &reported) {
		return reported.Unwrap()
	}
	return failure
}

// loggingBuildListener logs build lifecycle events.
type loggingBuildListener struct {
	logger ports.Logger
}

func (l *loggingBuildListener) BuildStarted(build *domain.Build) {
	l.logger.Info(fmt.Sprintf("Starting build %s", build.ID))
}

func (l *loggingBuildListener) ProjectsEvaluated(build *domain.Build) {
	l.logger.Info(fmt.Sprintf("Projects of build %s evaluated", build.ID))
}

func (l *loggingBuildListener) BuildFinished(result *domain.BuildResult) {
	if result.Failure != nil {
		l.logger.Error(zerr.With(zerr.Wrap(result.Failure, "build failed"), "action", result.Action))
		return
	}
	l.logger.Info(fmt.Sprintf("Build %s finished: %s successful", result.Build.ID, result.Action))
}

// loggingCompletionListener logs the teardown of a build's services.
type loggingCompletionListener struct {
	logger ports.Logger
	build  *domain.Build
}

func (l *loggingCompletionListener) Completed() {
	l.logger.Info(fmt.Sprintf("Build %s services stopped", l.build.ID))
}
