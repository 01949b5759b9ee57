package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"runtime"

	"go.trai.ch/zerr"
)

// CommandRunner executes one command in a working directory with extra
// environment entries.
type CommandRunner interface {
	Run(ctx context.Context, command []string, dir string, env []string) error
}

// Runtime is the serve loop running inside a worker child process. It answers
// requests read from in on out, one at a time, and shuts down on stop
// requests, closed input or idle timeout.
type Runtime struct {
	in        io.Reader
	out       io.Writer
	runner    CommandRunner
	lifecycle *Lifecycle
}

// NewRuntime creates a worker runtime reading requests from in and writing
// responses to out.
func NewRuntime(in io.Reader, out io.Writer, runner CommandRunner, lifecycle *Lifecycle) *Runtime {
	return &Runtime{
		in:        in,
		out:       out,
		runner:    runner,
		lifecycle: lifecycle,
	}
}

// Serve announces readiness and answers requests until shutdown.
func (r *Runtime) Serve(ctx context.Context) error {
	enc := json.NewEncoder(r.out)
	if err := enc.Encode(response{
		Type:    typeReady,
		PID:     os.Getpid(),
		Success: true,
		Memory:  snapshotMemory(),
	}); err != nil {
		return zerr.Wrap(err, "failed to announce readiness")
	}

	requests := make(chan request)
	decodeErrs := make(chan error, 1)
	go func() {
		dec := json.NewDecoder(r.in)
		for {
			var req request
			if err := dec.Decode(&req); err != nil {
				decodeErrs <- err
				return
			}
			select {
			case requests <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case req := <-requests:
			r.lifecycle.ResetTimer()
			switch req.Type {
			case typeExecute:
				if err := enc.Encode(r.execute(ctx, req)); err != nil {
					return zerr.Wrap(err, "failed to write work result")
				}
			case typeStop:
				return nil
			}
		case err := <-decodeErrs:
			// A closed stdin means the client is gone.
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return zerr.Wrap(err, "failed to decode work request")
		case <-r.lifecycle.ShutdownChan():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// execute runs one unit of work. Failures of the work come back inside the
// response so the stream stays healthy.
func (r *Runtime) execute(ctx context.Context, req request) response {
	resp := response{ID: req.ID, Type: typeResult}

	if req.Spec == nil || len(req.Spec.Command) == 0 {
		resp.Failure = "work request carries no command"
		resp.Memory = snapshotMemory()
		return resp
	}

	if err := r.runner.Run(ctx, req.Spec.Command, req.Spec.WorkingDir, req.Spec.Env); err != nil {
		resp.Failure = err.Error()
	} else {
		resp.Success = true
	}
	resp.Memory = snapshotMemory()
	return resp
}

func snapshotMemory() memoryDTO {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return memoryDTO{
		HeapBytes: stats.HeapAlloc,
		SysBytes:  stats.Sys,
	}
}
