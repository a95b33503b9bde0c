// Package main is the entry point for the onto ontology library tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/joho/godotenv"
	"go.trai.ch/onto/cmd/onto/commands"
	"go.trai.ch/onto/internal/adapters/fs" //nolint:depguard // Remediation text for the fatal path
	"go.trai.ch/onto/internal/app"
	"go.trai.ch/onto/internal/core/domain"
	_ "go.trai.ch/onto/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	// ONTO_HOME may come from a .env file in the working directory.
	_ = godotenv.Load()

	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, func() {}, err
		}
		return c, func() { _ = c.Close() }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()
	components.Logger.SetOutput(stderr)

	// 2. Interface - CLI
	cli := commands.New(components.App, commands.WithLogSettings(components.Logger))
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		switch {
		case errors.Is(err, domain.ErrBulkImportFailed):
			// Every failed job has been logged already.
			return 1
		case app.IsFatal(err):
			components.Logger.Fatal(err, fs.RemedyCommand)
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
