package overview_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/ui/overview"
)

func iri(v string) domain.Term { return domain.Term{Kind: domain.TermIRI, Value: v} }

func TestRender(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	triples := []domain.Triple{
		{Subject: iri("http://ex.org/zoo"), Predicate: iri(domain.RDFType), Object: iri(domain.OWLOntology)},
		{Subject: iri("http://ex.org/zoo"), Predicate: iri(domain.RDFSLabel), Object: domain.Term{Kind: domain.TermLiteral, Value: "Zoo"}},
		{Subject: iri("http://ex.org/zoo"), Predicate: iri(domain.RDFSComment), Object: domain.Term{Kind: domain.TermLiteral, Value: "Animals.\nAnd keepers."}},
		{Subject: iri("http://ex.org/Animal"), Predicate: iri(domain.RDFType), Object: iri(domain.OWLClass)},
		{Subject: iri("http://ex.org/Mammal"), Predicate: iri(domain.RDFSSubClassOf), Object: iri("http://ex.org/Animal")},
		{Subject: iri("http://ex.org/Bird"), Predicate: iri(domain.RDFSSubClassOf), Object: iri("http://ex.org/Animal")},
		{Subject: iri("http://ex.org/Bat"), Predicate: iri(domain.RDFSSubClassOf), Object: iri("http://ex.org/Mammal")},
		{Subject: iri("http://ex.org/Bat"), Predicate: iri(domain.RDFSSubClassOf), Object: iri("http://ex.org/Bird")},
		{Subject: iri("http://ex.org/X"), Predicate: iri(domain.RDFSSubClassOf), Object: iri("http://ex.org/Y")},
		{Subject: iri("http://ex.org/Y"), Predicate: iri(domain.RDFSSubClassOf), Object: iri("http://ex.org/X")},
		{Subject: iri("http://ex.org/eats"), Predicate: iri(domain.RDFType), Object: iri(domain.OWLObjectProperty)},
	}
	g := domain.BuildGraph("http://ex.org/zoo.ttl", triples)

	var buf bytes.Buffer
	require.NoError(t, overview.Render(&buf, "ex.org_zoo.ttl", g))

	gold := goldie.New(t)
	gold.Assert(t, "zoo", buf.Bytes())
}
