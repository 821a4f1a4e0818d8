package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jig/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jig/internal/adapters/golang"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jig/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jig/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jig/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			golang.NodeID,
			fs.NodeID,
			logger.PortNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			files, err := graft.Dep[ports.FileInspector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(toolchain, files, log, telemetry), nil
		},
	})
}
