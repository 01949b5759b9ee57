package domain

// Settings is the result of loading a build's settings file. It names the
// project, declares its task definitions and lists the builds it includes.
type Settings struct {
	ProjectName    string
	Tasks          *Graph
	IncludedBuilds []IncludedBuild

	// InitHooks are commands run before settings of the build are applied.
	InitHooks [][]string
}

// IncludedBuild references another build that this build depends on.
// Included builds are awaited as part of the including build's Build stage.
type IncludedBuild struct {
	ID  BuildID
	Dir string
}

// TaskDefinition declares one task of a build.
type TaskDefinition struct {
	Name         InternedString
	Command      []string
	Inputs       []InternedString
	Outputs      []InternedString
	Dependencies []InternedString

	// Fork describes the execution environment the task needs from the
	// worker that runs it.
	Fork ForkOptions
}

// Path returns the task path used in operation results and cache keys.
func (t *TaskDefinition) Path() string {
	return ":" + t.Name.String()
}
