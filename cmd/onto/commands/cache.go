package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage parsed-graph cache entries",
	}

	cmd.AddCommand(c.newCacheRemoveCmd())
	cmd.AddCommand(c.newCacheMoveCmd())

	return cmd
}

func (c *CLI) newCacheRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete the cache entry of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.app.CacheRemove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No cache entry for %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed cache entry for %s\n", args[0])
			return nil
		},
	}
}

func (c *CLI) newCacheMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <old> <new>",
		Short: "Rename the cache entry of a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			moved, err := c.app.CacheMove(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !moved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No cache entry for %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved cache entry %s to %s\n", args[0], args[1])
			return nil
		},
	}
}
