package ports

import "go.trai.ch/onto/internal/core/domain"

// GraphCache stores one serialized graph per canonical filename.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type GraphCache interface {
	// Get returns the cached graph. Missing and undecodable entries are both
	// reported as a miss.
	Get(name string) (*domain.Graph, bool)

	// Put serializes g under name. Failures are reported as domain.ErrCacheWrite.
	Put(name string, g *domain.Graph) error

	// Delete removes the entry. It reports false when there was none.
	Delete(name string) (bool, error)

	// Rename moves the entry. It reports false when there was none.
	Rename(oldName, newName string) (bool, error)

	// Has reports whether an entry file exists, without decoding it.
	Has(name string) bool
}
