package ports

import "go.trai.ch/onto/internal/core/domain"

// SourceIndex records which locator produced each library document.
//
//go:generate mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type SourceIndex interface {
	// Lookup returns the record for name.
	// Returns nil, nil if not found.
	Lookup(name string) (*domain.Provenance, error)

	// Record stores p, replacing any previous record for p.Name.
	Record(p *domain.Provenance) error

	// Delete removes the record for name. Missing records are not an error.
	Delete(name string) error

	// Rename moves the record for oldName to newName.
	Rename(oldName, newName string) error

	// Close releases the underlying database.
	Close() error
}
