package scheduler

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/matrix/internal/adapters/conda"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/matrix/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/matrix/internal/adapters/notify"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/matrix/internal/adapters/report"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/matrix/internal/adapters/scm"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/matrix/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/matrix/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/matrix/internal/engine/aggregate"
	"go.trai.ch/matrix/internal/engine/runner"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

// WorkRoot is the directory under which task workspaces are created.
const WorkRoot = "matrix-work"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			scm.NodeID,
			conda.NodeID,
			report.CollectorNodeID,
			report.EvaluatorNodeID,
			notify.NotifierNodeID,
			notify.PublisherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			commandRunner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			sourceControl, err := graft.Dep[ports.SourceControl](ctx)
			if err != nil {
				return nil, err
			}

			provisioner, err := graft.Dep[ports.EnvProvisioner](ctx)
			if err != nil {
				return nil, err
			}

			collector, err := graft.Dep[ports.ReportCollector](ctx)
			if err != nil {
				return nil, err
			}

			evaluator, err := graft.Dep[ports.ThresholdEvaluator](ctx)
			if err != nil {
				return nil, err
			}

			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}

			publisher, err := graft.Dep[ports.Publisher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			taskRunner := runner.New(commandRunner, sourceControl, provisioner, collector, log, WorkRoot)
			// Repository identity for the publication filter comes from the
			// CI environment.
			repo := os.Getenv("MATRIX_REPO")
			aggregator := aggregate.New(evaluator, notifier, publisher, log, repo, WorkRoot, "matrix-out/envs")

			return New(taskRunner, aggregator, tracer, log), nil
		},
	})
}
