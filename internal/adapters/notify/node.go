package notify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/matrix/internal/adapters/logger"
	"go.trai.ch/matrix/internal/core/ports"
)

const (
	// NotifierNodeID is the unique identifier for the notifier Graft node.
	NotifierNodeID graft.ID = "adapter.notifier"
	// PublisherNodeID is the unique identifier for the publisher Graft node.
	PublisherNodeID graft.ID = "adapter.publisher"
)

func init() {
	graft.Register(graft.Node[ports.Notifier]{
		ID:        NotifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Notifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSummaryWriter(log, "matrix-out"), nil
		},
	})

	graft.Register(graft.Node[ports.Publisher]{
		ID:        PublisherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Publisher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFilePublisher(log), nil
		},
	})
}
