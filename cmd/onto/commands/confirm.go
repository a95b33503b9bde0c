package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/ui/output"
)

// confirm asks a yes/no question on the command's streams. It refuses to
// guess when stdin is not a terminal.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	in := cmd.InOrStdin()
	if !output.IsInteractive(in) {
		return false, domain.ErrConfirmationRequired
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
