// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jig/internal/adapters/config"
	_ "go.trai.ch/jig/internal/adapters/fs"
	_ "go.trai.ch/jig/internal/adapters/golang"
	_ "go.trai.ch/jig/internal/adapters/logger"
	_ "go.trai.ch/jig/internal/adapters/shell"
	_ "go.trai.ch/jig/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/jig/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/jig/internal/app"
	_ "go.trai.ch/jig/internal/engine/orchestrator"
)
