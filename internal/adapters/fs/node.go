package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jig/internal/core/ports"
)

// NodeID is the unique identifier for the file inspector Graft node.
const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[ports.FileInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileInspector, error) {
			return NewInspector(), nil
		},
	})
}
