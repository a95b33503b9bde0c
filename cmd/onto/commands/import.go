package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/onto/internal/app"
)

func (c *CLI) newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <url|file|dir>...",
		Short: "Fetch, validate and cache ontologies",
		Long: "Import ontologies from URLs or local paths into the library. A directory " +
			"imports every non-hidden file it contains. More than one source is imported " +
			"concurrently.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Import(cmd.Context(), args, importOptions(cmd))
			return err
		},
	}

	addImportFlags(cmd)

	return cmd
}

func (c *CLI) newBootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Import the sample ontology library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				ok, err := confirm(cmd, "Download the sample ontologies into the library?")
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			_, err := c.app.Bootstrap(cmd.Context(), importOptions(cmd))
			return err
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	addImportFlags(cmd)

	return cmd
}

func addImportFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("workers", "w", 0, "Number of concurrent imports (default from config)")
	cmd.Flags().StringP("output", "o", "auto", "Progress output: auto, tui or linear")
}

func importOptions(cmd *cobra.Command) app.ImportOptions {
	workers, _ := cmd.Flags().GetInt("workers")
	output, _ := cmd.Flags().GetString("output")
	return app.ImportOptions{Workers: workers, Output: output}
}
