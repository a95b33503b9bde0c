package ports

import (
	"time"

	"go.trai.ch/onto/internal/core/domain"
)

// Cache lookup results.
const (
	CacheHit     = "hit"
	CacheMiss    = "miss"
	CacheCorrupt = "corrupt"
)

// Cache write results.
const (
	CacheWriteOK      = "ok"
	CacheWriteRetried = "retried"
	CacheWriteFailed  = "failed"
)

// Metrics counts import and cache outcomes.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveImport records one finished job.
	ObserveImport(status domain.JobStatus, d time.Duration)

	// CacheLookup records one cache read.
	CacheLookup(result string)

	// CacheWrite records one cache write.
	CacheWrite(result string)

	// Flush writes the collected metrics to the textfile at path.
	// An empty path is a no-op.
	Flush(path string) error
}
