// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/onto/internal/core/ports"
	"go.trai.ch/onto/internal/ui/output"
	"go.trai.ch/onto/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer. It prints one line when a job starts
// and one when it finishes, prefixed with the job name.
type Renderer struct {
	stderr io.Writer
	output *termenv.Output

	mu        sync.Mutex
	jobs      map[string]*jobState // spanID -> job state
	completed int
	failed    int
}

type jobState struct {
	name      string
	startTime time.Time
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	profile func() termenv.Profile
}

// WithProfile overrides the color profile selector.
func WithProfile(fn func() termenv.Profile) Option {
	return func(o *options) {
		o.profile = fn
	}
}

// NewRenderer creates a new Renderer writing to stderr. A nil writer means
// os.Stderr.
func NewRenderer(stderr io.Writer, opts ...Option) *Renderer {
	if stderr == nil {
		stderr = os.Stderr
	}

	o := options{profile: output.ColorProfileANSI}
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		stderr: stderr,
		output: output.NewWithProfile(stderr, o.profile),
		jobs:   make(map[string]*jobState),
	}
}

// Start resets the counters of a previous run.
func (r *Renderer) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.completed, r.failed = 0, 0
	return nil
}

// Stop prints a summary when more than one job ran.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if total := r.completed + r.failed; total > 1 {
		_, _ = fmt.Fprintf(r.stderr, "%d job(s): %d completed, %d failed\n", total, r.completed, r.failed)
	}
	return nil
}

// OnPlanEmit prints the number of queued locators.
func (r *Renderer) OnPlanEmit(locators []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Importing %d source(s)\n", len(locators))
}

// OnJobStart prints a job start message.
func (r *Renderer) OnJobStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs[spanID] = &jobState{
		name:      name,
		startTime: startTime,
	}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnJobComplete prints the completion status.
func (r *Renderer) OnJobComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[spanID]
	if !ok {
		return
	}
	delete(r.jobs, spanID)

	duration := endTime.Sub(job.startTime)
	prefix := fmt.Sprintf("[%s]", job.name)

	if err != nil {
		r.failed++
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	r.completed++
	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
}
