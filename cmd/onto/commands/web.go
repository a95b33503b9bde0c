package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"go.trai.ch/onto/internal/app"
	"go.trai.ch/onto/internal/core/domain"
)

func (c *CLI) newWebCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Pick a vocabulary from an online directory and import it",
		Long: "List the vocabularies published by Linked Open Vocabularies, or by the " +
			"directory set in web.directory, and import the one picked by number.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString("from")
			_, err := c.app.Web(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), app.WebOptions{
				Directory: from,
				Import:    importOptions(cmd),
			})
			if errors.Is(err, domain.ErrSelectionCancelled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().String("from", "", "Vocabulary list URL (default from config)")
	addImportFlags(cmd)

	return cmd
}
