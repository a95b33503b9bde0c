package tui

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/onto/internal/ui/style"
)

const headerLines = 2

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	finished, failed := m.Counts()
	total := m.Total
	if total < len(m.Jobs) {
		total = len(m.Jobs)
	}

	title := titleStyle
	if failed > 0 {
		title = failureTitleStyle
	}
	header := fmt.Sprintf("IMPORTS %d/%d", finished, total)
	if failed > 0 {
		header += fmt.Sprintf(" (%d failed)", failed)
	}
	s.WriteString(title.Render(header) + "\n\n")

	for _, job := range m.visibleJobs() {
		s.WriteString(m.renderJobRow(job) + "\n")
	}

	return s.String()
}

// visibleJobs keeps the newest rows when the terminal is too short.
func (m *Model) visibleJobs() []*JobRow {
	limit := m.Height - headerLines
	if m.Height <= 0 || limit >= len(m.Jobs) {
		return m.Jobs
	}
	if limit < 1 {
		limit = 1
	}
	return m.Jobs[len(m.Jobs)-limit:]
}

func (m *Model) renderJobRow(job *JobRow) string {
	switch job.Status {
	case StatusDone:
		return fmt.Sprintf("  %s %s",
			jobDoneStyle.Render(style.Check+" "+job.Name),
			durationStyle.Render(formatDuration(job.Duration)))
	case StatusError:
		row := fmt.Sprintf("  %s %s",
			jobErrorStyle.Render(style.Cross+" "+job.Name),
			durationStyle.Render(formatDuration(job.Duration)))
		if job.Err != nil {
			row += " " + jobErrorStyle.Render(m.truncate(job.Err.Error(), len(row)))
		}
		return row
	default:
		return "  " + jobRunningStyle.Render(style.Dot+" "+job.Name)
	}
}

// truncate shortens an error message so the row fits in one line.
func (m *Model) truncate(msg string, used int) string {
	room := m.Width - used - 1
	runes := []rune(msg)
	if m.Width <= 0 || len(runes) <= room {
		return msg
	}
	if room <= 1 {
		return ""
	}
	return string(runes[:room-1]) + "…"
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
