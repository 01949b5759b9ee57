// Package config provides the settings loader for forge.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in a build's root directory.
const DefaultFilename = "forge.yaml"

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML settings file.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a loader reading the default settings filename.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		logger:   logger,
	}
}

// FindAndLoadSettings reads the build's settings file from its root directory.
func (l *Loader) FindAndLoadSettings(_ context.Context, build *domain.Build) (*domain.Settings, error) {
	path := filepath.Join(build.RootDir, l.Filename)
	settings, err := Load(path)
	if err != nil {
		return nil, err
	}
	if settings.ProjectName == "" {
		settings.ProjectName = filepath.Base(build.RootDir)
	}
	return settings, nil
}

// Load reads a settings file and returns the domain settings it declares.
func Load(path string) (*domain.Settings, error) {
	forgefile, err := readForgefile(path)
	if err != nil {
		return nil, err
	}

	graph := domain.NewGraph()
	taskNames := make(map[string]bool, len(forgefile.Tasks))
	for name := range forgefile.Tasks {
		taskNames[name] = true
	}

	for name, dto := range forgefile.Tasks {
		for _, dep := range dto.DependsOn {
			if !taskNames[dep] {
				return nil, zerr.With(zerr.With(domain.ErrMissingDependency, "task", name), "missing_dependency", dep)
			}
		}

		task := &domain.TaskDefinition{
			Name:         domain.NewInternedString(name),
			Command:      dto.Cmd,
			Inputs:       canonicalizeStrings(dto.Input),
			Outputs:      canonicalizeStrings(dto.Target),
			Dependencies: internStrings(dto.DependsOn),
			Fork:         forkOptions(dto.Fork),
		}
		if err := graph.AddTask(task); err != nil {
			return nil, err
		}
	}

	includes := make([]domain.IncludedBuild, 0, len(forgefile.Includes))
	for _, include := range forgefile.Includes {
		name := include.Name
		if name == "" {
			name = filepath.Base(include.Dir)
		}
		includes = append(includes, domain.IncludedBuild{
			ID:  domain.BuildID(":" + name),
			Dir: include.Dir,
		})
	}

	return &domain.Settings{
		ProjectName:    forgefile.Project,
		Tasks:          graph,
		IncludedBuilds: includes,
		InitHooks:      forgefile.InitHooks,
	}, nil
}

// LoadInitHooks reads only the init hooks of a settings file. A missing file
// means no hooks.
func LoadInitHooks(path string) ([][]string, error) {
	forgefile, err := readForgefile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return forgefile.InitHooks, nil
}

func readForgefile(path string) (*Forgefile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, "settings file not found"), "path", path)
		}
		return nil, zerr.Wrap(err, "failed to read settings file")
	}

	var forgefile Forgefile
	if err := yaml.Unmarshal(data, &forgefile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse settings file")
	}
	return &forgefile, nil
}

func forkOptions(dto ForkDTO) domain.ForkOptions {
	env := make([]string, 0, len(dto.Env))
	for k, v := range dto.Env {
		env = append(env, k+"="+v)
	}
	slices.Sort(env)

	return domain.ForkOptions{
		ToolPaths:   canonicalizeStringSlice(dto.ToolPaths),
		Env:         env,
		SharedPaths: canonicalizeStringSlice(dto.SharedPaths),
	}
}

func internStrings(strs []string) []domain.InternedString {
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}

func canonicalizeStrings(strs []string) []domain.InternedString {
	unique := canonicalizeStringSlice(strs)
	res := make([]domain.InternedString, len(unique))
	for i, s := range unique {
		res[i] = domain.NewInternedString(s)
	}
	return res
}

func canonicalizeStringSlice(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}
	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
