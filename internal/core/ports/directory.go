package ports

import (
	"context"

	"go.trai.ch/onto/internal/core/domain"
)

// VocabularyDirectory lists the vocabularies published by an online catalog.
//
//go:generate mockgen -source=directory.go -destination=mocks/mock_directory.go -package=mocks
type VocabularyDirectory interface {
	// List returns the catalog entries behind url in the order served.
	List(ctx context.Context, url string) ([]domain.Vocabulary, error)
}
