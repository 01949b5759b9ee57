package config

import (
	"context"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// CommandRunner executes one command in a working directory.
type CommandRunner interface {
	Run(ctx context.Context, command []string, dir string, env []string) error
}

var _ ports.InitScriptHandler = (*InitScriptRunner)(nil)

// InitScriptRunner executes the init hooks declared in a build's settings
// file before the settings themselves are applied.
type InitScriptRunner struct {
	Filename string
	runner   CommandRunner
}

// NewInitScriptRunner creates a runner executing hooks with the given runner.
func NewInitScriptRunner(runner CommandRunner) *InitScriptRunner {
	return &InitScriptRunner{
		Filename: DefaultFilename,
		runner:   runner,
	}
}

// ExecuteScripts runs every init hook in declaration order. The first failing
// hook aborts the build.
func (r *InitScriptRunner) ExecuteScripts(ctx context.Context, build *domain.Build) error {
	hooks, err := LoadInitHooks(filepath.Join(build.RootDir, r.Filename))
	if err != nil {
		return err
	}

	for _, hook := range hooks {
		if err := r.runner.Run(ctx, hook, build.RootDir, nil); err != nil {
			return zerr.Wrap(err, "init hook failed")
		}
	}
	return nil
}
