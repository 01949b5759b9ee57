// Package progrock renders build operations as progrock vertexes.
package progrock

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.OperationListener = (*Recorder)(nil)

// Recorder mirrors build operations onto a progrock tape: one vertex per
// operation, completed when the operation finishes.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu       sync.Mutex
	vertexes map[domain.OperationID]*progrock.VertexRecorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:        w,
		rec:      progrock.NewRecorder(w),
		vertexes: make(map[domain.OperationID]*progrock.VertexRecorder),
	}
}

// Started opens a vertex for the operation.
func (r *Recorder) Started(desc domain.OperationDescriptor) {
	d := digest.FromString(fmt.Sprintf("operation-%d", desc.ID))
	vtx := r.rec.Vertex(d, desc.DisplayName)

	r.mu.Lock()
	r.vertexes[desc.ID] = vtx
	r.mu.Unlock()
}

// Finished completes the operation's vertex with its failure, if any.
func (r *Recorder) Finished(desc domain.OperationDescriptor, _ any, failure error) {
	r.mu.Lock()
	vtx, ok := r.vertexes[desc.ID]
	delete(r.vertexes, desc.ID)
	r.mu.Unlock()
	if !ok {
		return
	}
	vtx.Done(failure)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
