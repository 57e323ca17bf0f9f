package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/matrix/internal/adapters/logger"
	"go.trai.ch/matrix/internal/core/ports"
)

const (
	// CollectorNodeID is the unique identifier for the report collector Graft node.
	CollectorNodeID graft.ID = "adapter.report_collector"
	// EvaluatorNodeID is the unique identifier for the threshold evaluator Graft node.
	EvaluatorNodeID graft.ID = "adapter.threshold_evaluator"
)

func init() {
	graft.Register(graft.Node[ports.ReportCollector]{
		ID:        CollectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ReportCollector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCollector(log), nil
		},
	})

	graft.Register(graft.Node[ports.ThresholdEvaluator]{
		ID:        EvaluatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ThresholdEvaluator, error) {
			return NewEvaluator(), nil
		},
	})
}
