package domain

import (
	"path/filepath"
	"strings"
)

// SourceKind distinguishes network locators from filesystem paths.
type SourceKind int

const (
	// SourceFile is a local filesystem path.
	SourceFile SourceKind = iota
	// SourceNetwork is an http or https URL.
	SourceNetwork
)

// PathSubstitute replaces path separators when a URL is turned into a filename.
const PathSubstitute = "_"

// DefaultDocumentExt is appended to network filenames that lack a recognized extension.
const DefaultDocumentExt = ".rdf"

// OntologyExts are the extensions accepted as-is on network filenames.
var OntologyExts = []string{".rdf", ".owl", ".rdfs", ".ttl", ".n3", ".nt"}

var networkSchemes = []string{"http://", "https://"}

// Source is a normalized locator.
type Source struct {
	// Locator is the normalized input: a URL with an explicit scheme, or an
	// absolute path, so provenance does not depend on the working directory.
	Locator string
	Kind    SourceKind
}

// ParseSource normalizes a raw locator. Bare "www." hosts get an explicit
// http scheme; anything without a recognized scheme is a filesystem path.
func ParseSource(raw string) (Source, error) {
	loc := strings.TrimSpace(raw)
	if loc == "" {
		return Source{}, Fail(ErrInvalidLocator, nil, "empty locator")
	}

	if strings.HasPrefix(loc, "www.") {
		loc = "http://" + loc
	}

	if scheme, ok := networkScheme(loc); ok {
		if len(loc) == len(scheme) {
			return Source{}, Fail(ErrInvalidLocator, nil, "locator has no host", "locator", raw)
		}
		return Source{Locator: loc, Kind: SourceNetwork}, nil
	}

	abs, err := filepath.Abs(loc)
	if err != nil {
		return Source{}, Fail(ErrInvalidLocator, err, "resolve path", "locator", raw)
	}
	return Source{Locator: abs, Kind: SourceFile}, nil
}

// CanonicalName maps the source to its library filename. It is a pure
// function of the normalized locator.
func (s Source) CanonicalName() string {
	if s.Kind == SourceFile {
		return filepath.Base(s.Locator)
	}

	scheme, _ := networkScheme(s.Locator)
	name := strings.ReplaceAll(s.Locator[len(scheme):], "/", PathSubstitute)
	if !HasOntologyExt(name) {
		name += DefaultDocumentExt
	}
	return name
}

// IsNetwork reports whether the source must be fetched over HTTP.
func (s Source) IsNetwork() bool {
	return s.Kind == SourceNetwork
}

// String returns the normalized locator.
func (s Source) String() string {
	return s.Locator
}

// HasOntologyExt reports whether name ends in one of the recognized extensions.
func HasOntologyExt(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range OntologyExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func networkScheme(loc string) (string, bool) {
	lower := strings.ToLower(loc)
	for _, scheme := range networkSchemes {
		if strings.HasPrefix(lower, scheme) {
			return loc[:len(scheme)], true
		}
	}
	return "", false
}
