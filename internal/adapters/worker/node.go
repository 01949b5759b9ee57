package worker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const (
	// FactoryNodeID identifies the worker process factory node.
	FactoryNodeID graft.ID = "adapter.worker_factory"
	// MonitorNodeID identifies the worker memory monitor node.
	MonitorNodeID graft.ID = "adapter.memory_monitor"
)

func init() {
	graft.Register(graft.Node[ports.WorkerProcessFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.WorkerProcessFactory, error) {
			return NewFactory()
		},
	})

	graft.Register(graft.Node[ports.MemoryMonitor]{
		ID:        MonitorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.MemoryMonitor, error) {
			return NewHeapThresholdMonitor(DefaultMaxHeapBytes), nil
		},
	})
}
