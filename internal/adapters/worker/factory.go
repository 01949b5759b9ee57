package worker

import (
	"os"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkerProcessFactory = (*Factory)(nil)

// Factory provisions worker processes by re-invoking this binary with the
// worker serve command.
type Factory struct {
	executablePath string
}

// NewFactory creates a factory spawning workers from the current executable.
func NewFactory() (*Factory, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	return &Factory{executablePath: exe}, nil
}

// NewWorkerProcess creates an unstarted process handle for the fork options.
func (f *Factory) NewWorkerProcess(fork domain.ForkOptions) (ports.WorkerProcess, error) {
	return NewProcess(f.executablePath, fork), nil
}
