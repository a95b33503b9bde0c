// Package commands implements the CLI commands for onto.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/onto/internal/app"
	"go.trai.ch/onto/internal/build"
	"go.trai.ch/onto/internal/core/domain"
)

// CLI represents the command line interface for onto.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Init(ctx context.Context, opts app.InitOptions) (*domain.Library, error)
	Import(ctx context.Context, locators []string, opts app.ImportOptions) (domain.BulkResult, error)
	Bootstrap(ctx context.Context, opts app.ImportOptions) (domain.BulkResult, error)
	Web(ctx context.Context, in io.Reader, out io.Writer, opts app.WebOptions) (domain.BulkResult, error)
	List(ctx context.Context) ([]domain.Entry, error)
	Select(ctx context.Context, in io.Reader, out io.Writer) (string, error)
	Show(ctx context.Context, name string, w io.Writer) error
	Remove(ctx context.Context, name string) error
	Move(ctx context.Context, oldName, newName string) error
	CacheRemove(ctx context.Context, name string) (bool, error)
	CacheMove(ctx context.Context, oldName, newName string) (bool, error)
}

// LogSettings is the part of the logger the global flags control.
type LogSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogSettings lets --verbose and --json-logs reconfigure the logger.
func WithLogSettings(l LogSettings) Option {
	return func(c *CLI) {
		c.logs = l
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "onto",
		Short:         "Keep a local library of ontologies",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Log as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.logs.SetVerbose(verbose)
		c.logs.SetJSON(jsonLogs)
	}

	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newImportCmd())
	rootCmd.AddCommand(c.newBootstrapCmd())
	rootCmd.AddCommand(c.newWebCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newSelectCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newMoveCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for prompts. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
