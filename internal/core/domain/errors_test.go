package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestFail(t *testing.T) {
	t.Parallel()

	t.Run("tags the kind", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection refused")
		err := domain.Fail(domain.ErrSourceUnreachable, cause, "fetch failed", "locator", "http://example.org")

		assert.True(t, errors.Is(err, domain.ErrSourceUnreachable))
		assert.False(t, errors.Is(err, domain.ErrInvalidContent))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("carries metadata", func(t *testing.T) {
		t.Parallel()
		err := domain.Fail(domain.ErrEntryNotFound, nil, "no such entry", "name", "foaf.rdf")

		var zErr *zerr.Error
		require.True(t, errors.As(err, &zErr))
		assert.Equal(t, "foaf.rdf", zErr.Metadata()["name"])
	})

	t.Run("message is the kind", func(t *testing.T) {
		t.Parallel()
		err := domain.Fail(domain.ErrCacheWrite, errors.New("disk full"), "encode")
		m, ok := err.(interface{ Message() string })
		require.True(t, ok)
		assert.Equal(t, domain.ErrCacheWrite.Error(), m.Message())
	})

	t.Run("wrapped again", func(t *testing.T) {
		t.Parallel()
		inner := domain.Fail(domain.ErrInvalidContent, errors.New("bad xml"), "parse")
		outer := zerr.Wrap(inner, "import failed")
		assert.True(t, errors.Is(outer, domain.ErrInvalidContent))
	})
}
