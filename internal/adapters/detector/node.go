package detector

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/linear"
	"go.trai.ch/onto/internal/adapters/tui"
	"go.trai.ch/onto/internal/core/ports"
)

// NodeID is the unique identifier for the progress renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewRenderer(linear.NewRenderer(os.Stderr), newProgressView), nil
		},
	})
}

func newProgressView() ports.Renderer {
	model := tui.NewModel(interruptSelf)
	return tui.NewRenderer(&model,
		tea.WithOutput(os.Stderr),
		tea.WithoutSignalHandler(),
	)
}

// interruptSelf delivers the ctrl+c swallowed by raw mode to the signal
// context of main.
func interruptSelf() {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}
	_ = p.Signal(os.Interrupt)
}
