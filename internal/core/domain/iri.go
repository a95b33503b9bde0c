package domain

import "unique"

// IRI is an interned resource identifier. Ontologies repeat the same handful
// of predicate and class IRIs across thousands of triples, so every term value
// goes through unique.Make.
type IRI struct {
	h unique.Handle[string]
}

// NewIRI interns s.
func NewIRI(s string) IRI {
	return IRI{h: unique.Make(s)}
}

// String returns the underlying IRI text.
func (i IRI) String() string {
	var zero unique.Handle[string]
	if i.h == zero {
		return ""
	}
	return i.h.Value()
}

// IsZero reports whether the IRI was never set.
func (i IRI) IsZero() bool {
	var zero unique.Handle[string]
	return i.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (i IRI) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *IRI) UnmarshalText(text []byte) error {
	i.h = unique.Make(string(text))
	return nil
}

// Vocabulary IRIs used to classify entities.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"

	RDFType     = RDFNamespace + "type"
	RDFProperty = RDFNamespace + "Property"

	RDFSClass         = RDFSNamespace + "Class"
	RDFSLabel         = RDFSNamespace + "label"
	RDFSComment       = RDFSNamespace + "comment"
	RDFSSubClassOf    = RDFSNamespace + "subClassOf"
	RDFSSubPropertyOf = RDFSNamespace + "subPropertyOf"

	OWLOntology           = OWLNamespace + "Ontology"
	OWLClass              = OWLNamespace + "Class"
	OWLObjectProperty     = OWLNamespace + "ObjectProperty"
	OWLDatatypeProperty   = OWLNamespace + "DatatypeProperty"
	OWLAnnotationProperty = OWLNamespace + "AnnotationProperty"
	OWLThing              = OWLNamespace + "Thing"

	SKOSConcept   = SKOSNamespace + "Concept"
	SKOSBroader   = SKOSNamespace + "broader"
	SKOSPrefLabel = SKOSNamespace + "prefLabel"
)
