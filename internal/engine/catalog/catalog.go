// Package catalog enumerates the documents of a library and lets the user
// pick one.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

// CancelToken ends an interactive selection.
const CancelToken = "q"

// Catalog reads the library root. It never consults the cache to decide what
// exists; cache and provenance only annotate entries.
type Catalog struct {
	cache ports.GraphCache
	index ports.SourceIndex
}

// New creates a Catalog.
func New(cache ports.GraphCache, index ports.SourceIndex) *Catalog {
	return &Catalog{cache: cache, index: index}
}

// List returns the names of the regular files directly under the library
// root, skipping hidden files and cache artifacts.
func List(lib *domain.Library) ([]string, error) {
	entries, err := os.ReadDir(lib.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Fail(domain.ErrDirectoryMissing, err, "library root missing", "dir", lib.Root)
		}
		return nil, domain.Fail(domain.ErrDirectoryMissing, err, "read library root", "dir", lib.Root)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, domain.CacheFileExt) {
			continue
		}
		if !e.Type().IsRegular() {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Entries returns List joined with file stats, cache state and provenance.
// Provenance failures are not fatal; the locator is left empty.
func (c *Catalog) Entries(lib *domain.Library) ([]domain.Entry, error) {
	names, err := List(lib)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Entry, 0, len(names))
	for _, name := range names {
		path := lib.DocumentPath(name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		e := domain.Entry{
			Name:    name,
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Cached:  c.cache.Has(name),
		}
		if p, err := c.index.Lookup(name); err == nil && p != nil {
			e.Locator = p.Locator
		}
		out = append(out, e)
	}
	return out, nil
}

// Select prints names with 1-based indices to out and reads choices from in
// until one is valid. Typing CancelToken or closing the input cancels.
// Malformed input is answered with a new prompt, never an error.
func Select(in io.Reader, out io.Writer, names []string) (string, error) {
	i, err := SelectIndex(in, out, names)
	if err != nil {
		return "", err
	}
	return names[i], nil
}

// SelectIndex is Select returning the 0-based position of the choice, for
// callers whose labels are not unique keys.
func SelectIndex(in io.Reader, out io.Writer, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, domain.ErrLibraryEmpty
	}

	for i, label := range labels {
		_, _ = fmt.Fprintf(out, "[%d] %s\n", i+1, label)
	}

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprintf(out, "Select a number (%s to quit): ", CancelToken)
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			return 0, domain.ErrSelectionCancelled
		}

		choice := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(choice, CancelToken) {
			return 0, domain.ErrSelectionCancelled
		}

		i, err := pick(len(labels), choice)
		if err == nil {
			return i, nil
		}
		_, _ = fmt.Fprintln(out, "Please enter a valid number.")
	}
}

func pick(n int, choice string) (int, error) {
	i, err := strconv.Atoi(choice)
	if err != nil || i < 1 || i > n {
		return 0, domain.Fail(domain.ErrInvalidSelection, err, "selection out of range", "input", choice)
	}
	return i - 1, nil
}
