// Package main is the entrypoint for the lhsite CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time via ldflags.
var Version = "dev"

// configPath is set by the global --config flag.
var configPath string

func main() {
	root := &cobra.Command{
		Use:   "lhsite",
		Short: "Ledger Hall Institute site server",
		Long:  "lhsite serves the institute's content API and form intake endpoints from a markdown content directory.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(serveCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(suggestCmd())
	root.AddCommand(leadsCmd())
	root.AddCommand(versionCmd())

	root.PersistentFlags().StringVar(&configPath, "config", "lhsite.toml", "Path to the config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lhsite version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("lhsite %s\n", Version)
			return nil
		},
	}
}

// newLogger builds the zap logger used by the long-running commands.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}
