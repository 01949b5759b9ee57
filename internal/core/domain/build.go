// Package domain contains the core domain models for the build orchestration engine.
package domain

// BuildID identifies a build within a composite build tree.
type BuildID string

// RootBuildID is the identifier of the root build of an invocation.
const RootBuildID BuildID = ":"

// StartParameter holds the parameters a build invocation was started with.
type StartParameter struct {
	// TaskNames are the tasks requested on the command line.
	TaskNames []string
	// ExcludedTaskNames are tasks filtered out of the graph.
	ExcludedTaskNames []string
	// ConfigureOnDemand defers the projects-evaluated notification to
	// task graph calculation.
	ConfigureOnDemand bool
	// MaxWorkers bounds build parallelism, including out-of-process workers.
	MaxWorkers int
}

// Build represents one build invocation, root or included.
type Build struct {
	ID             BuildID
	RootDir        string
	StartParameter StartParameter

	// Settings is populated by the settings loader during the Load stage.
	Settings *Settings
}

// IncludedBuilds returns the builds included by this build's settings.
func (b *Build) IncludedBuilds() []IncludedBuild {
	if b.Settings == nil {
		return nil
	}
	return b.Settings.IncludedBuilds
}

// BuildResult records the outcome of one launcher invocation.
type BuildResult struct {
	// Action is the name of the stage the invocation ran up to.
	Action string
	// Build is the build the result belongs to.
	Build *Build
	// Failure is nil on success, otherwise the analysed failure.
	Failure error
}
