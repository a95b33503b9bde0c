package ports

import (
	"context"
	"io"

	"go.trai.ch/onto/internal/core/domain"
)

// Fetcher transfers the bytes of a source into dst.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch writes the document behind src to dst and returns its final
	// location: the URL after redirects, or the absolute path of a local file.
	// Every failure is reported as domain.ErrSourceUnreachable.
	Fetch(ctx context.Context, src domain.Source, dst io.Writer) (string, error)
}
