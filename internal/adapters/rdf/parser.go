// Package rdf parses ontology documents into domain graphs.
package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Parser = (*Parser)(nil)

// checkEvery is how many triples are decoded between context checks.
const checkEvery = 1024

var errNoTriples = errors.New("document contains no triples")

// Parser implements ports.Parser for RDF/XML, Turtle and N-Triples.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the document at path. The syntax is chosen from the
// extension of name; unknown extensions try every syntax in turn.
func (p *Parser) Parse(ctx context.Context, path, name string) (*domain.Graph, error) {
	var lastErr error
	for _, format := range formatsFor(name) {
		triples, err := p.decode(ctx, path, format)
		if err == nil {
			return domain.BuildGraph(path, triples), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, domain.Fail(domain.ErrInvalidContent, ctxErr, "parse cancelled", "path", path)
		}
		lastErr = zerr.With(err, "format", formatName(format))
	}
	return nil, domain.Fail(domain.ErrInvalidContent, lastErr, "parse failed", "path", path)
}

func (p *Parser) decode(ctx context.Context, path string, format rdf.Format) (triples []domain.Triple, err error) {
	f, err := os.Open(path) //nolint:gosec // Path is a staging file owned by the pipeline
	if err != nil {
		return nil, zerr.Wrap(err, "open document")
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	defer func() {
		if r := recover(); r != nil {
			triples = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()

	dec := rdf.NewTripleDecoder(f, format)
	for {
		t, decErr := dec.Decode()
		if errors.Is(decErr, io.EOF) {
			break
		}
		if decErr != nil {
			return nil, zerr.Wrap(decErr, "decode triple")
		}
		triples = append(triples, convert(t))

		if len(triples)%checkEvery == 0 {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
		}
	}

	if len(triples) == 0 {
		return nil, errNoTriples
	}
	return triples, nil
}

func formatsFor(name string) []rdf.Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttl", ".n3":
		return []rdf.Format{rdf.Turtle}
	case ".nt":
		return []rdf.Format{rdf.NTriples}
	case ".rdf", ".owl", ".rdfs", ".xml":
		return []rdf.Format{rdf.RDFXML, rdf.Turtle}
	default:
		return []rdf.Format{rdf.RDFXML, rdf.Turtle, rdf.NTriples}
	}
}

func formatName(f rdf.Format) string {
	switch f {
	case rdf.RDFXML:
		return "rdfxml"
	case rdf.Turtle:
		return "turtle"
	case rdf.NTriples:
		return "ntriples"
	default:
		return "unknown"
	}
}

func convert(t rdf.Triple) domain.Triple {
	return domain.Triple{
		Subject:   term(t.Subj),
		Predicate: term(t.Pred),
		Object:    term(t.Obj),
	}
}

func term(t rdf.Term) domain.Term {
	switch t.Type() {
	case rdf.TermBlank:
		return domain.Term{Kind: domain.TermBlank, Value: t.String()}
	case rdf.TermLiteral:
		out := domain.Term{Kind: domain.TermLiteral, Value: t.String()}
		if lit, ok := t.(rdf.Literal); ok {
			out.Lang = lit.Lang()
			if out.Lang == "" {
				out.Datatype = lit.DataType.String()
			}
		}
		return out
	default:
		return domain.Term{Kind: domain.TermIRI, Value: t.String()}
	}
}
