package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/core/domain"
)

func TestIRI(t *testing.T) {
	t.Parallel()

	t.Run("interning", func(t *testing.T) {
		t.Parallel()
		a := domain.NewIRI(domain.OWLClass)
		b := domain.NewIRI(domain.OWLClass)
		assert.Equal(t, a, b)
		assert.Equal(t, domain.OWLClass, a.String())
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()
		var i domain.IRI
		assert.True(t, i.IsZero())
		assert.Empty(t, i.String())
	})

	t.Run("text round trip", func(t *testing.T) {
		t.Parallel()
		in := domain.NewIRI("http://xmlns.com/foaf/0.1/Person")
		text, err := in.MarshalText()
		require.NoError(t, err)

		var out domain.IRI
		require.NoError(t, out.UnmarshalText(text))
		assert.Equal(t, in, out)
	})
}
