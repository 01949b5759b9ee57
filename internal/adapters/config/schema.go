package config

// Forgefile represents the structure of the forge.yaml settings file.
type Forgefile struct {
	Version   string             `yaml:"version"`
	Project   string             `yaml:"project"`
	Includes  []IncludeDTO       `yaml:"includes"`
	InitHooks [][]string         `yaml:"initHooks"`
	Tasks     map[string]TaskDTO `yaml:"tasks"`
}

// IncludeDTO references another build included by this one.
type IncludeDTO struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// TaskDTO represents a task definition in the settings file.
type TaskDTO struct {
	Input     []string `yaml:"input"`
	Cmd       []string `yaml:"cmd"`
	Target    []string `yaml:"target"`
	DependsOn []string `yaml:"dependsOn"`
	Fork      ForkDTO  `yaml:"fork"`
}

// ForkDTO declares the worker environment a task needs.
type ForkDTO struct {
	ToolPaths   []string          `yaml:"toolPaths"`
	Env         map[string]string `yaml:"env"`
	SharedPaths []string          `yaml:"sharedPaths"`
}
