// Package tui renders bulk import progress as a live job list.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// JobStatus represents the current state of an import job.
type JobStatus string

const (
	// StatusRunning indicates the job is fetching or parsing.
	StatusRunning JobStatus = "Running"
	// StatusDone indicates the job stored its document.
	StatusDone JobStatus = "Done"
	// StatusError indicates the job failed.
	StatusError JobStatus = "Error"
)

// JobRow is a single job in the progress list.
type JobRow struct {
	Name      string
	Status    JobStatus
	StartTime time.Time
	Duration  time.Duration
	Err       error
}

// Model is the progress view state.
type Model struct {
	Jobs    []*JobRow
	SpanMap map[string]*JobRow
	Total   int
	Width   int
	Height  int

	// Interrupt is called when the user presses ctrl+c. The terminal is in
	// raw mode, so no SIGINT reaches the process otherwise.
	Interrupt func()
}

// NewModel returns an empty Model.
func NewModel(interrupt func()) Model {
	return Model{
		SpanMap:   make(map[string]*JobRow),
		Interrupt: interrupt,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.Interrupt != nil {
				m.Interrupt()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case MsgPlan:
		m.Total = len(msg.Locators)

	case MsgJobStart:
		row := &JobRow{
			Name:      msg.Name,
			Status:    StatusRunning,
			StartTime: msg.StartTime,
		}
		m.Jobs = append(m.Jobs, row)
		m.SpanMap[msg.SpanID] = row

	case MsgJobComplete:
		row, ok := m.SpanMap[msg.SpanID]
		if !ok {
			break
		}
		delete(m.SpanMap, msg.SpanID)
		row.Duration = msg.EndTime.Sub(row.StartTime)
		if msg.Err != nil {
			row.Status = StatusError
			row.Err = msg.Err
		} else {
			row.Status = StatusDone
		}
	}

	return m, nil
}

// Counts returns the number of finished and failed jobs.
func (m *Model) Counts() (finished, failed int) {
	for _, j := range m.Jobs {
		switch j.Status {
		case StatusDone:
			finished++
		case StatusError:
			finished++
			failed++
		case StatusRunning:
		}
	}
	return finished, failed
}
