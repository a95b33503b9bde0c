package detector

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/onto/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Waiter is implemented by renderers that run their own event loop.
type Waiter interface {
	Wait() error
}

// Renderer forwards progress events to the linear or the interactive
// renderer. The choice is made on every Start, so one process can run
// several imports with different output modes.
type Renderer struct {
	linear ports.Renderer
	tui    func() ports.Renderer
	detect func() OutputMode

	mu     sync.Mutex
	flag   string
	active ports.Renderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDetector overrides environment detection.
func WithDetector(fn func() OutputMode) Option {
	return func(r *Renderer) {
		r.detect = fn
	}
}

// NewRenderer returns a Renderer. tui builds a fresh interactive renderer per
// run because a bubbletea program cannot be restarted.
func NewRenderer(linear ports.Renderer, tui func() ports.Renderer, opts ...Option) *Renderer {
	r := &Renderer{
		linear: linear,
		tui:    tui,
		detect: DetectEnvironment,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetMode records the --output flag for the next Start.
func (r *Renderer) SetMode(flag string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flag = flag
}

// Mode returns the mode the next Start would use.
func (r *Renderer) Mode() OutputMode {
	r.mu.Lock()
	flag := r.flag
	r.mu.Unlock()

	mode := ResolveMode(r.detect(), flag)
	if mode == ModeTUI && r.tui == nil {
		return ModeLinear
	}
	return mode
}

// Start selects the renderer for this run and starts it.
func (r *Renderer) Start(ctx context.Context) error {
	next := r.linear
	if r.Mode() == ModeTUI {
		next = r.tui()
	}

	r.mu.Lock()
	r.active = next
	r.mu.Unlock()

	return next.Start(ctx)
}

// Stop stops the active renderer and waits for its event loop to exit.
func (r *Renderer) Stop() error {
	active := r.current()
	if active == nil {
		return nil
	}
	if err := active.Stop(); err != nil {
		return err
	}
	if w, ok := active.(Waiter); ok {
		return w.Wait()
	}
	return nil
}

// OnPlanEmit forwards to the active renderer.
func (r *Renderer) OnPlanEmit(locators []string) {
	if active := r.current(); active != nil {
		active.OnPlanEmit(locators)
	}
}

// OnJobStart forwards to the active renderer.
func (r *Renderer) OnJobStart(spanID, name string, startTime time.Time) {
	if active := r.current(); active != nil {
		active.OnJobStart(spanID, name, startTime)
	}
}

// OnJobComplete forwards to the active renderer.
func (r *Renderer) OnJobComplete(spanID string, endTime time.Time, err error) {
	if active := r.current(); active != nil {
		active.OnJobComplete(spanID, endTime, err)
	}
}

func (r *Renderer) current() ports.Renderer {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.active
}
