package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/onto/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or repair the local repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reset, _ := cmd.Flags().GetBool("reset")
			yes, _ := cmd.Flags().GetBool("yes")
			library, _ := cmd.Flags().GetString("library")

			if reset && !yes {
				ok, err := confirm(cmd, "Delete the local repository and all cached ontologies?")
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			lib, err := c.app.Init(cmd.Context(), app.InitOptions{Reset: reset, Library: library})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Library root: %s\n", lib.Root)
			return nil
		},
	}

	cmd.Flags().Bool("reset", false, "Delete and recreate the local repository")
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().StringP("library", "l", "", "Use this directory as the library root")

	return cmd
}
