package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportJob records the outcome of importing one locator.
type ImportJob struct {
	ID      uuid.UUID
	Locator string
	// Name is the canonical filename. Empty when the locator could not be resolved.
	Name string
	// FinalLocation is the locator after redirects, or the copied path.
	FinalLocation string
	// Path is the committed document path inside the library root.
	Path     string
	Triples  int
	Cached   bool
	Duration time.Duration
	// Err is the failure that aborted the job, if any.
	Err error
	// CacheErr is a non-fatal cache write failure of an otherwise successful job.
	CacheErr error
}

// NewImportJob returns a pending job for locator.
func NewImportJob(locator string) ImportJob {
	return ImportJob{ID: uuid.New(), Locator: locator}
}

// Succeeded reports whether the document was committed to the library.
func (j *ImportJob) Succeeded() bool {
	return j.Err == nil
}

// BulkResult aggregates the jobs of one bulk import.
type BulkResult struct {
	Succeeded int
	Failed    int
	// Jobs holds one entry per input locator, in input order.
	Jobs []ImportJob
}

// Failures returns the failed jobs in input order.
func (r *BulkResult) Failures() []ImportJob {
	var out []ImportJob
	for i := range r.Jobs {
		if !r.Jobs[i].Succeeded() {
			out = append(out, r.Jobs[i])
		}
	}
	return out
}

// Entry is one catalog entry: a raw document in the library root, joined with
// its cache and provenance state.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Cached  bool
	// Locator is the recorded source, empty for documents placed by hand.
	Locator string
}

// Provenance is the index record of a committed document.
type Provenance struct {
	Name       string    `json:"name"`
	Locator    string    `json:"locator"`
	Final      string    `json:"final"`
	Digest     string    `json:"digest"`
	ImportedAt time.Time `json:"imported_at"`
}
