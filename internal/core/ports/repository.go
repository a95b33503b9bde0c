package ports

import (
	"context"

	"go.trai.ch/onto/internal/core/domain"
)

// Repository bootstraps the on-disk layout.
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// Ensure creates or repairs the directory tree and resolves the library
	// root. With reset, any existing tree is deleted first; the caller is
	// responsible for confirming that with the user.
	// A configured root that no longer exists fails with domain.ErrDirectoryMissing.
	Ensure(ctx context.Context, reset bool) (*domain.Library, error)

	// SetLibraryRoot points the config at dir, creating dir if needed.
	SetLibraryRoot(ctx context.Context, dir string) (*domain.Library, error)
}
