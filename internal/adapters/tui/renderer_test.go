package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/adapters/tui"
)

func newTestRenderer() *tui.Renderer {
	model := tui.NewModel(nil)
	return tui.NewRenderer(
		&model,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestRenderer_Lifecycle(t *testing.T) {
	renderer := newTestRenderer()

	require.NoError(t, renderer.Start(context.Background()))
	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())
}

func TestRenderer_ForwardsEvents(t *testing.T) {
	renderer := newTestRenderer()
	require.NoError(t, renderer.Start(context.Background()))

	start := time.Now()
	renderer.OnPlanEmit([]string{"a", "b"})
	renderer.OnJobStart("span1", "a.ttl", start)
	renderer.OnJobComplete("span1", start.Add(time.Millisecond), nil)

	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())
}
