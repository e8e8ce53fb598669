// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/naka-gawa/github-repos/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "github-repos",
		Short: "A CLI tool to list GitHub repositories and render them into a page.",
		Long: `github-repos fetches the public repositories of GitHub users and prints
them as JSON, and renders repository listings into the "repo-list" element
of an HTML page. The two commands are independent of each other.`,
		SilenceUsage: true,
	}

	// Add persistent flags available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("env-file", config.DefaultEnvFile, "Optional dotenv file to load before reading the environment")

	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newRenderCmd())
	return rootCmd
}

// Execute builds the root command with all its children and runs it.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a logger writing to the command's stderr when --verbose is set,
// and one that discards everything otherwise.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}
	return logger
}
