package tui_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/adapters/tui"
)

func TestModel_JobLifecycle(t *testing.T) {
	model := tui.NewModel(nil)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	model.Update(tui.MsgPlan{Locators: []string{"http://a.org/a", "/tmp/b.ttl", "/tmp/c.owl"}})
	model.Update(tui.MsgJobStart{SpanID: "s1", Name: "a.org_a.rdf", StartTime: start})
	model.Update(tui.MsgJobStart{SpanID: "s2", Name: "b.ttl", StartTime: start})
	model.Update(tui.MsgJobComplete{SpanID: "s1", EndTime: start.Add(120 * time.Millisecond)})
	model.Update(tui.MsgJobComplete{SpanID: "s2", EndTime: start.Add(2 * time.Second), Err: errors.New("no RDF triples")})

	require.Len(t, model.Jobs, 2)
	assert.Equal(t, tui.StatusDone, model.Jobs[0].Status)
	assert.Equal(t, 120*time.Millisecond, model.Jobs[0].Duration)
	assert.Equal(t, tui.StatusError, model.Jobs[1].Status)
	assert.Empty(t, model.SpanMap)

	finished, failed := model.Counts()
	assert.Equal(t, 2, finished)
	assert.Equal(t, 1, failed)

	view := model.View()
	assert.Contains(t, view, "IMPORTS 2/3 (1 failed)")
	assert.Contains(t, view, "a.org_a.rdf")
	assert.Contains(t, view, "120ms")
	assert.Contains(t, view, "no RDF triples")
}

func TestModel_UnknownSpanIgnored(t *testing.T) {
	model := tui.NewModel(nil)
	model.Update(tui.MsgJobComplete{SpanID: "missing", EndTime: time.Now()})
	assert.Empty(t, model.Jobs)
}

func TestModel_ShortTerminalKeepsNewestRows(t *testing.T) {
	model := tui.NewModel(nil)
	model.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	for _, name := range []string{"one.ttl", "two.ttl", "three.ttl", "four.ttl"} {
		model.Update(tui.MsgJobStart{SpanID: name, Name: name, StartTime: time.Now()})
	}

	view := model.View()
	assert.NotContains(t, view, "one.ttl")
	assert.NotContains(t, view, "two.ttl")
	assert.Contains(t, view, "three.ttl")
	assert.Contains(t, view, "four.ttl")
}

func TestModel_LongErrorIsTruncated(t *testing.T) {
	model := tui.NewModel(nil)
	model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	start := time.Now()
	model.Update(tui.MsgJobStart{SpanID: "s", Name: "x.ttl", StartTime: start})
	model.Update(tui.MsgJobComplete{SpanID: "s", EndTime: start, Err: errors.New(strings.Repeat("e", 100))})

	assert.NotContains(t, model.View(), strings.Repeat("e", 100))
	assert.Contains(t, model.View(), "…")
}

func TestModel_CtrlCInterrupts(t *testing.T) {
	interrupted := false
	model := tui.NewModel(func() { interrupted = true })

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, interrupted)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
