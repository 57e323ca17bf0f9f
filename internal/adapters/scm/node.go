package scm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/matrix/internal/core/ports"
)

// NodeID is the unique identifier for the source-control Graft node.
const NodeID graft.ID = "adapter.scm"

func init() {
	graft.Register(graft.Node[ports.SourceControl]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceControl, error) {
			return NewGit("."), nil
		},
	})
}
