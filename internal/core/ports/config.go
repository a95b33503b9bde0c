package ports

import "go.trai.ch/onto/internal/core/domain"

// ConfigStore reads and writes the persisted library configuration.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigStore interface {
	// Load reads the config at path. Returns nil, nil if the file does not exist.
	// Missing keys other than models.dir receive their defaults.
	Load(path string) (*domain.LibraryConfig, error)

	// Save validates cfg and writes it to path.
	Save(path string, cfg *domain.LibraryConfig) error
}
