// Package cas implements the on-disk graph cache.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GraphCache = (*Store)(nil)

const (
	// DefaultMemoryEntries is the number of decoded graphs kept in memory.
	DefaultMemoryEntries = 16

	// RetryFactor widens the depth capacity for the single retry of a put.
	RetryFactor = 10
)

// Store implements ports.GraphCache with one file per canonical filename
// under the versioned cache directory, fronted by an in-memory LRU.
// Graphs returned by Get are shared with the LRU and must not be mutated.
type Store struct {
	dir      string
	codec    *Codec
	memory   *lru.Cache[string, *domain.Graph]
	capacity int
	logger   ports.Logger
	metrics  ports.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithDepthCapacity bounds the hierarchy depth the encoder accepts before a
// put falls back to its widened retry. Zero means unbounded.
func WithDepthCapacity(n int) Option {
	return func(s *Store) {
		s.capacity = n
	}
}

// WithMetrics records lookups and writes.
func WithMetrics(m ports.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// NewStore creates a Store in dir.
func NewStore(dir string, memoryEntries int, logger ports.Logger, opts ...Option) (*Store, error) {
	if memoryEntries <= 0 {
		memoryEntries = DefaultMemoryEntries
	}
	memory, err := lru.New[string, *domain.Graph](memoryEntries)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create memory cache")
	}
	codec, err := NewCodec()
	if err != nil {
		return nil, err
	}

	s := &Store{
		dir:    filepath.Clean(dir),
		codec:  codec,
		memory: memory,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// DepthCapacity returns the configured default capacity.
func (s *Store) DepthCapacity() int {
	return s.capacity
}

// Path returns the entry file for name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+domain.CacheFileExt)
}

// Get returns the cached graph for name. A missing entry and an entry that
// fails to decode are both a miss; the latter is logged.
func (s *Store) Get(name string) (*domain.Graph, bool) {
	if g, ok := s.memory.Get(name); ok {
		s.lookup(ports.CacheHit)
		return g, true
	}

	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.warnCorrupt(name, err)
			return nil, false
		}
		s.lookup(ports.CacheMiss)
		return nil, false
	}

	g, err := s.codec.Decode(data)
	if err != nil {
		s.warnCorrupt(name, err)
		return nil, false
	}

	s.memory.Add(name, g)
	s.lookup(ports.CacheHit)
	return g, true
}

// Put encodes g and writes it under name. When the hierarchy exceeds the
// depth capacity the encode is retried once with RetryFactor times the
// capacity. The store's own capacity is never modified.
func (s *Store) Put(name string, g *domain.Graph) error {
	data, err := s.codec.Encode(g, s.capacity)
	result := ports.CacheWriteOK
	if errors.Is(err, domain.ErrDepthExceeded) && s.capacity > 0 {
		widened := s.capacity * RetryFactor
		s.logger.Debug(fmt.Sprintf("cache %s: depth capacity %d exceeded, retrying with %d", name, s.capacity, widened))
		data, err = s.codec.Encode(g, widened)
		result = ports.CacheWriteRetried
	}
	if err != nil {
		s.write(ports.CacheWriteFailed)
		return domain.Fail(domain.ErrCacheWrite, err, "encode graph", "name", name)
	}

	if err := s.writeFile(s.Path(name), data); err != nil {
		s.write(ports.CacheWriteFailed)
		return domain.Fail(domain.ErrCacheWrite, err, "write entry", "name", name)
	}

	s.memory.Add(name, g)
	s.write(result)
	return nil
}

// Delete removes the entry for name. It reports false when there was none.
func (s *Store) Delete(name string) (bool, error) {
	s.memory.Remove(name)

	err := os.Remove(s.Path(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(err, "failed to delete cache entry"), "name", name)
	}
}

// Rename moves the entry for oldName to newName. It reports false when there
// was none.
func (s *Store) Rename(oldName, newName string) (bool, error) {
	if g, ok := s.memory.Peek(oldName); ok {
		s.memory.Add(newName, g)
	}
	s.memory.Remove(oldName)

	err := os.Rename(s.Path(oldName), s.Path(newName))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		s.memory.Remove(newName)
		return false, nil
	default:
		return false, zerr.With(zerr.Wrap(err, "failed to rename cache entry"), "name", oldName)
	}
}

// Has reports whether an entry file exists for name.
func (s *Store) Has(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// writeFile replaces path atomically so readers never observe a partial entry.
func (s *Store) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmp, err := os.CreateTemp(s.dir, ".entry-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp entry")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write temp entry")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp entry")
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod temp entry")
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Store) warnCorrupt(name string, err error) {
	s.lookup(ports.CacheCorrupt)
	s.logger.Warn(fmt.Sprintf("cache entry %s is unreadable, treating as miss: %v",
		name, domain.Fail(domain.ErrCacheCorrupt, err, "decode entry")))
}

func (s *Store) lookup(result string) {
	if s.metrics != nil {
		s.metrics.CacheLookup(result)
	}
}

func (s *Store) write(result string) {
	if s.metrics != nil {
		s.metrics.CacheWrite(result)
	}
}
