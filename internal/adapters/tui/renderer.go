package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/onto/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the progress model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the program to quit after drawing the final frame.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards the plan to the program.
func (r *Renderer) OnPlanEmit(locators []string) {
	r.program.Send(MsgPlan{Locators: locators})
}

// OnJobStart forwards job start events to the program.
func (r *Renderer) OnJobStart(spanID, name string, startTime time.Time) {
	r.program.Send(MsgJobStart{
		SpanID:    spanID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnJobComplete forwards job completion events to the program.
func (r *Renderer) OnJobComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgJobComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
