package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.input_hasher"

func init() {
	graft.Register(graft.Node[ports.InputHasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.InputHasher, error) {
			return NewHasher(), nil
		},
	})
}
