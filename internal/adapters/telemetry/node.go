package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.operation_listener"

// instrumentationName identifies spans created by the span sink.
const instrumentationName = "go.trai.ch/forge"

func init() {
	graft.Register(graft.Node[ports.OperationListener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.OperationListener, error) {
			return NewSpanSink(instrumentationName), nil
		},
	})
}
