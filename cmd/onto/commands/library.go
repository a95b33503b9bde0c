package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/ui/style"
)

var (
	cachedMark   = lipgloss.NewStyle().Foreground(style.Green).Render(style.Dot)
	uncachedMark = style.Faint.Render(style.Circle)
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the documents in the library",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}
			writeEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}
}

func writeEntries(w io.Writer, entries []domain.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "The library is empty. Add ontologies with `onto import`.")
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Name))
	}

	var b strings.Builder
	for _, e := range entries {
		mark := uncachedMark
		if e.Cached {
			mark = cachedMark
		}
		fmt.Fprintf(&b, "%s %-*s  %8s", mark, width, e.Name, formatSize(e.Size))
		if e.Locator != "" {
			b.WriteString("  ")
			b.WriteString(style.Faint.Render(e.Locator))
		}
		b.WriteString("\n")
	}
	_, _ = io.WriteString(w, b.String())
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func (c *CLI) newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Pick a library document by number and show it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := c.app.Select(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, domain.ErrSelectionCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			return c.app.Show(cmd.Context(), name, cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|url|file>",
		Short: "Print an overview of a library document",
		Long: "Print an overview of a library document. A URL or a file outside the " +
			"library is parsed and shown without being imported.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Show(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a document, its cache entry and its provenance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Remove(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <old> <new>",
		Short: "Rename a document, its cache entry and its provenance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Move(cmd.Context(), args[0], args[1])
		},
	}
}
