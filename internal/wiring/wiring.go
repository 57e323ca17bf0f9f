// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/matrix/internal/adapters/conda"
	_ "go.trai.ch/matrix/internal/adapters/config"
	_ "go.trai.ch/matrix/internal/adapters/logger"
	_ "go.trai.ch/matrix/internal/adapters/notify"
	_ "go.trai.ch/matrix/internal/adapters/report"
	_ "go.trai.ch/matrix/internal/adapters/scm"
	_ "go.trai.ch/matrix/internal/adapters/shell"
	_ "go.trai.ch/matrix/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/matrix/internal/app"
	_ "go.trai.ch/matrix/internal/engine/scheduler"
)
