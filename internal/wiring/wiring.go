// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/slicer/internal/adapters/config"
	_ "go.trai.ch/slicer/internal/adapters/detector"
	_ "go.trai.ch/slicer/internal/adapters/identity"
	_ "go.trai.ch/slicer/internal/adapters/logger"
	_ "go.trai.ch/slicer/internal/adapters/program"
	_ "go.trai.ch/slicer/internal/adapters/telemetry"
	_ "go.trai.ch/slicer/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/slicer/internal/app"
)
