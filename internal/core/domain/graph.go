// Package domain contains the core models of the ontology library: locators,
// library layout, parsed graphs and import results.
package domain

import (
	"iter"
	"slices"
	"strings"
)

// TermKind identifies the kind of an RDF term.
type TermKind uint8

const (
	// TermIRI is a named resource.
	TermIRI TermKind = iota
	// TermBlank is a blank node.
	TermBlank
	// TermLiteral is a literal value.
	TermLiteral
)

// Term is a single RDF term.
type Term struct {
	Kind     TermKind `json:"k"`
	Value    string   `json:"v"`
	Lang     string   `json:"l,omitempty"`
	Datatype string   `json:"d,omitempty"`
}

// Triple is one RDF statement.
type Triple struct {
	Subject   Term `json:"s"`
	Predicate Term `json:"p"`
	Object    Term `json:"o"`
}

// EntityKind classifies a resource declared by an ontology.
type EntityKind uint8

const (
	// KindOntology is an owl:Ontology header.
	KindOntology EntityKind = iota
	// KindClass is an owl:Class or rdfs:Class.
	KindClass
	// KindProperty is an rdf:Property or one of the OWL property types.
	KindProperty
	// KindConcept is a skos:Concept.
	KindConcept
)

func (k EntityKind) String() string {
	switch k {
	case KindOntology:
		return "ontology"
	case KindClass:
		return "class"
	case KindProperty:
		return "property"
	case KindConcept:
		return "concept"
	default:
		return "unknown"
	}
}

var typeKinds = map[string]EntityKind{
	OWLOntology:           KindOntology,
	OWLClass:              KindClass,
	RDFSClass:             KindClass,
	RDFProperty:           KindProperty,
	OWLObjectProperty:     KindProperty,
	OWLDatatypeProperty:   KindProperty,
	OWLAnnotationProperty: KindProperty,
	SKOSConcept:           KindConcept,
}

var hierarchyKinds = map[string]EntityKind{
	RDFSSubClassOf:    KindClass,
	RDFSSubPropertyOf: KindProperty,
	SKOSBroader:       KindConcept,
}

// Entity is a classified resource with its place in the hierarchy.
// Parents and Children point at each other, so the structure is cyclic.
type Entity struct {
	IRI      IRI
	Kind     EntityKind
	Label    string
	Comment  string
	Parents  []*Entity
	Children []*Entity
}

// Name returns the label, or the local part of the IRI when unlabeled.
func (e *Entity) Name() string {
	if e.Label != "" {
		return e.Label
	}
	s := e.IRI.String()
	if i := strings.LastIndexAny(s, "#/"); i >= 0 && i < len(s)-1 {
		return s[i+1:]
	}
	return s
}

// Graph is the parsed representation of one ontology document.
type Graph struct {
	// Source is the locator or path the graph was parsed from.
	Source   string
	Triples  []Triple
	entities map[IRI]*Entity
}

// NewGraph returns an empty graph for source.
func NewGraph(source string) *Graph {
	return &Graph{
		Source:   source,
		entities: make(map[IRI]*Entity),
	}
}

// BuildGraph classifies the entities declared by triples and links their
// hierarchy.
func BuildGraph(source string, triples []Triple) *Graph {
	g := NewGraph(source)
	g.Triples = triples

	for i := range triples {
		t := &triples[i]
		if t.Predicate.Value != RDFType || t.Subject.Kind != TermIRI {
			continue
		}
		kind, ok := typeKinds[t.Object.Value]
		if !ok {
			continue
		}
		e := g.ensure(t.Subject.Value, kind)
		if kind < e.Kind {
			e.Kind = kind
		}
	}

	for i := range triples {
		t := &triples[i]
		kind, ok := hierarchyKinds[t.Predicate.Value]
		if !ok || t.Subject.Kind != TermIRI || t.Object.Kind != TermIRI {
			continue
		}
		if t.Object.Value == OWLThing || t.Object.Value == t.Subject.Value {
			continue
		}
		g.Link(g.ensure(t.Subject.Value, kind), g.ensure(t.Object.Value, kind))
	}

	for i := range triples {
		t := &triples[i]
		if t.Object.Kind != TermLiteral {
			continue
		}
		e, ok := g.entities[NewIRI(t.Subject.Value)]
		if !ok {
			continue
		}
		switch t.Predicate.Value {
		case RDFSLabel, SKOSPrefLabel:
			if e.Label == "" || t.Object.Lang == "" || t.Object.Lang == "en" {
				e.Label = t.Object.Value
			}
		case RDFSComment:
			if e.Comment == "" {
				e.Comment = t.Object.Value
			}
		}
	}

	return g
}

func (g *Graph) ensure(iri string, kind EntityKind) *Entity {
	key := NewIRI(iri)
	if e, ok := g.entities[key]; ok {
		return e
	}
	e := &Entity{IRI: key, Kind: kind}
	g.entities[key] = e
	return e
}

// AddEntity registers e, replacing any entity with the same IRI.
func (g *Graph) AddEntity(e *Entity) {
	g.entities[e.IRI] = e
}

// Link records parent as a direct parent of child. Duplicate links are ignored.
func (g *Graph) Link(child, parent *Entity) {
	if slices.Contains(child.Parents, parent) {
		return
	}
	child.Parents = append(child.Parents, parent)
	parent.Children = append(parent.Children, child)
}

// Entity looks up an entity by IRI.
func (g *Graph) Entity(iri string) (*Entity, bool) {
	e, ok := g.entities[NewIRI(iri)]
	return e, ok
}

// Len returns the number of triples.
func (g *Graph) Len() int {
	return len(g.Triples)
}

// Entities yields every entity in IRI order.
func (g *Graph) Entities() iter.Seq[*Entity] {
	sorted := make([]*Entity, 0, len(g.entities))
	for _, e := range g.entities {
		sorted = append(sorted, e)
	}
	slices.SortFunc(sorted, func(a, b *Entity) int {
		return strings.Compare(a.IRI.String(), b.IRI.String())
	})
	return slices.Values(sorted)
}

// Kind returns the entities of kind in IRI order.
func (g *Graph) Kind(kind EntityKind) []*Entity {
	var out []*Entity
	for e := range g.Entities() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Ontologies returns the ontology headers.
func (g *Graph) Ontologies() []*Entity { return g.Kind(KindOntology) }

// Classes returns the declared and referenced classes.
func (g *Graph) Classes() []*Entity { return g.Kind(KindClass) }

// Properties returns the declared and referenced properties.
func (g *Graph) Properties() []*Entity { return g.Kind(KindProperty) }

// Concepts returns the SKOS concepts.
func (g *Graph) Concepts() []*Entity { return g.Kind(KindConcept) }

// TopLevel returns the entities of kind without parents. When every entity of
// kind sits on a cycle, the first one in IRI order is returned so the
// hierarchy can still be walked.
func (g *Graph) TopLevel(kind EntityKind) []*Entity {
	all := g.Kind(kind)
	var roots []*Entity
	for _, e := range all {
		if len(e.Parents) == 0 {
			roots = append(roots, e)
		}
	}
	if len(roots) == 0 && len(all) > 0 {
		roots = append(roots, all[0])
	}
	return roots
}

// Depth returns the length of the longest chain of parent links reachable
// without revisiting an entity, counted breadth first from the roots.
// Entities only reachable through cycles are seeded as extra roots.
func (g *Graph) Depth() int {
	level := make(map[*Entity]int, len(g.entities))
	var queue []*Entity
	maxDepth := 0

	seed := func(e *Entity) {
		if _, seen := level[e]; seen {
			return
		}
		level[e] = 1
		queue = append(queue, e)
	}
	drain := func() {
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			d := level[e]
			maxDepth = max(maxDepth, d)
			for _, c := range e.Children {
				if _, seen := level[c]; !seen {
					level[c] = d + 1
					queue = append(queue, c)
				}
			}
		}
	}

	for e := range g.Entities() {
		if len(e.Parents) == 0 {
			seed(e)
		}
	}
	drain()
	for e := range g.Entities() {
		seed(e)
		drain()
	}
	return maxDepth
}

// Equal reports whether o holds the same triples and the same entity
// hierarchy as g.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Source != o.Source || !slices.Equal(g.Triples, o.Triples) || len(g.entities) != len(o.entities) {
		return false
	}
	for key, a := range g.entities {
		b, ok := o.entities[key]
		if !ok || a.Kind != b.Kind || a.Label != b.Label || a.Comment != b.Comment {
			return false
		}
		if !sameIRIs(a.Parents, b.Parents) || !sameIRIs(a.Children, b.Children) {
			return false
		}
	}
	return true
}

func sameIRIs(a, b []*Entity) bool {
	return slices.EqualFunc(a, b, func(x, y *Entity) bool { return x.IRI == y.IRI })
}
