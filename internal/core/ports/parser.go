package ports

import (
	"context"

	"go.trai.ch/onto/internal/core/domain"
)

// Parser turns a raw document into a graph.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// Parse reads the document at path. name is the canonical filename and
	// selects the syntax by extension. Every failure is reported as
	// domain.ErrInvalidContent.
	Parse(ctx context.Context, path, name string) (*domain.Graph, error)
}
