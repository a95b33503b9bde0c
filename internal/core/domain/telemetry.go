package domain

import "strings"

// JobStatus is the lifecycle state of an import job as reported to renderers
// and metrics.
type JobStatus string

const (
	// JobPending means the job is queued.
	JobPending JobStatus = "pending"
	// JobRunning means the job is fetching, parsing or committing.
	JobRunning JobStatus = "running"
	// JobCompleted means the document was committed and cached.
	JobCompleted JobStatus = "completed"
	// JobUncached means the document was committed but the cache write failed.
	JobUncached JobStatus = "uncached"
	// JobFailed means the job aborted and left nothing behind.
	JobFailed JobStatus = "failed"
)

// IsTerminal reports whether the job has finished.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobCompleted, JobUncached, JobFailed:
		return true
	default:
		return false
	}
}

// ParseJobStatus converts s to a JobStatus, defaulting to pending.
func ParseJobStatus(s string) JobStatus {
	switch st := JobStatus(strings.ToLower(s)); st {
	case JobRunning, JobCompleted, JobUncached, JobFailed:
		return st
	default:
		return JobPending
	}
}

// StatusOf derives the terminal status of a finished job.
func StatusOf(j *ImportJob) JobStatus {
	switch {
	case j.Err != nil:
		return JobFailed
	case j.CacheErr != nil:
		return JobUncached
	default:
		return JobCompleted
	}
}
