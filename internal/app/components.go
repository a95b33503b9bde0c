package app

import (
	"go.trai.ch/onto/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/onto/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger *logger.Logger
	index  ports.SourceIndex
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log *logger.Logger, index ports.SourceIndex) *Components {
	return &Components{
		App:    app,
		Logger: log,
		index:  index,
	}
}

// Close releases the resources held by the components.
func (c *Components) Close() error {
	if c.index == nil {
		return nil
	}
	return c.index.Close()
}
