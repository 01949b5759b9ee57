package worker

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	readyTimeout = 10 * time.Second
	stopTimeout  = 3 * time.Second
)

// sharedPathsEnv carries the fork's shared paths into the worker process.
const sharedPathsEnv = "FORGE_SHARED_PATHS"

var _ ports.WorkerProcess = (*Process)(nil)

// Process manages one persistent worker child process. Requests are
// dispatched one at a time; the pool guarantees a worker is owned by a single
// caller between GetWorker and Release.
type Process struct {
	executable string
	fork       domain.ForkOptions

	mu        sync.Mutex
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	enc       *json.Encoder
	responses chan response
	exited    chan struct{}
	nextID    atomic.Uint64

	memMu     sync.Mutex
	memory    domain.MemoryStatus
	hasMemory bool
}

// NewProcess creates a process handle for a worker with the given fork
// options. The worker is not spawned until Start.
func NewProcess(executable string, fork domain.ForkOptions) *Process {
	return &Process{
		executable: executable,
		fork:       fork,
	}
}

// Start spawns the worker and waits for its ready handshake.
func (p *Process) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd != nil {
		return zerr.New("worker process already started")
	}

	//nolint:gosec // executable is this binary's own path
	cmd := exec.Command(p.executable, "worker", "serve")
	cmd.Env = p.environment()
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open worker stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open worker stdout")
	}

	if err := cmd.Start(); err != nil {
		return zerr.Wrap(err, "failed to spawn worker process")
	}

	p.cmd = cmd
	p.stdin = stdin
	p.enc = json.NewEncoder(stdin)
	p.responses = make(chan response, 1)
	p.exited = make(chan struct{})

	go p.pump(stdout)

	select {
	case resp, ok := <-p.responses:
		if !ok {
			return zerr.New("worker exited before handshake")
		}
		if resp.Type != typeReady {
			return zerr.With(zerr.New("unexpected worker handshake"), "type", string(resp.Type))
		}
		p.recordMemory(resp.Memory)
		return nil
	case <-p.exited:
		return zerr.New("worker exited before handshake")
	case <-time.After(readyTimeout):
		_ = cmd.Process.Kill()
		return zerr.New("worker handshake timed out")
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		return zerr.Wrap(ctx.Err(), "waiting for worker handshake")
	}
}

// pump reads worker responses until the stream breaks, then reaps the child.
func (p *Process) pump(stdout io.Reader) {
	dec := json.NewDecoder(stdout)
	for {
		var resp response
		if err := dec.Decode(&resp); err != nil {
			close(p.responses)
			_ = p.cmd.Wait()
			close(p.exited)
			return
		}
		p.recordMemory(resp.Memory)
		p.responses <- resp
	}
}

// Execute sends one unit of work and waits for its result. The error return
// covers the transport only; failures of the work itself come back inside
// the WorkResult.
func (p *Process) Execute(ctx context.Context, spec domain.WorkSpec) (domain.WorkResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil || !p.alive() {
		return domain.WorkResult{}, zerr.With(domain.ErrWorkerNotStarted, "task", spec.TaskPath)
	}

	req := request{
		ID:   p.nextID.Add(1),
		Type: typeExecute,
		Spec: specToDTO(spec),
	}
	if err := p.enc.Encode(req); err != nil {
		return domain.WorkResult{}, zerr.With(zerr.Wrap(err, "failed to send work to worker"), "task", spec.TaskPath)
	}

	for {
		select {
		case resp, ok := <-p.responses:
			if !ok {
				return domain.WorkResult{}, zerr.With(zerr.New("worker exited during execution"), "task", spec.TaskPath)
			}
			if resp.ID != req.ID || resp.Type != typeResult {
				continue
			}
			if resp.Success {
				return domain.SuccessfulWorkResult(), nil
			}
			failure := zerr.With(zerr.New(resp.Failure), "task", spec.TaskPath)
			return domain.FailedWorkResult(failure), nil
		case <-ctx.Done():
			return domain.WorkResult{}, zerr.Wrap(ctx.Err(), "waiting for worker result")
		}
	}
}

// MemoryStatus returns the most recent memory snapshot reported by the worker.
func (p *Process) MemoryStatus() (domain.MemoryStatus, bool) {
	p.memMu.Lock()
	defer p.memMu.Unlock()
	return p.memory, p.hasMemory
}

func (p *Process) recordMemory(mem memoryDTO) {
	p.memMu.Lock()
	defer p.memMu.Unlock()
	p.memory = mem.toDomain()
	p.hasMemory = true
}

// Alive reports whether the child process is still running.
func (p *Process) Alive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil && p.alive()
}

func (p *Process) alive() bool {
	select {
	case <-p.exited:
		return false
	default:
		return true
	}
}

// Stop asks the worker to exit and kills it if it does not comply in time.
func (p *Process) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil {
		return nil
	}
	if !p.alive() {
		return nil
	}

	_ = p.enc.Encode(request{ID: p.nextID.Add(1), Type: typeStop})
	_ = p.stdin.Close()

	select {
	case <-p.exited:
		return nil
	case <-time.After(stopTimeout):
		if err := p.cmd.Process.Kill(); err != nil {
			return zerr.Wrap(err, "failed to kill worker process")
		}
		<-p.exited
		return nil
	}
}

// environment builds the child's environment from the fork options: tool
// paths are prepended to PATH and fork env entries override inherited ones.
func (p *Process) environment() []string {
	envMap := make(map[string]string)
	for _, entry := range os.Environ() {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	if len(p.fork.ToolPaths) > 0 {
		toolPath := strings.Join(p.fork.ToolPaths, string(os.PathListSeparator))
		if sysPath := envMap["PATH"]; sysPath != "" {
			envMap["PATH"] = toolPath + string(os.PathListSeparator) + sysPath
		} else {
			envMap["PATH"] = toolPath
		}
	}

	for _, entry := range p.fork.Env {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	if len(p.fork.SharedPaths) > 0 {
		envMap[sharedPathsEnv] = strings.Join(p.fork.SharedPaths, string(os.PathListSeparator))
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
