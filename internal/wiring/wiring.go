// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/onto/internal/adapters/cas"
	_ "go.trai.ch/onto/internal/adapters/config"
	_ "go.trai.ch/onto/internal/adapters/detector"
	_ "go.trai.ch/onto/internal/adapters/fetch"
	_ "go.trai.ch/onto/internal/adapters/fs"
	_ "go.trai.ch/onto/internal/adapters/index"
	_ "go.trai.ch/onto/internal/adapters/logger"
	_ "go.trai.ch/onto/internal/adapters/lov"
	_ "go.trai.ch/onto/internal/adapters/metrics"
	_ "go.trai.ch/onto/internal/adapters/rdf"
	_ "go.trai.ch/onto/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/onto/internal/app"
	_ "go.trai.ch/onto/internal/engine/catalog"
	_ "go.trai.ch/onto/internal/engine/importer"
)
