package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/atlas/cmd/atlas/commands"
	"github.com/teranos/atlas/config"
	"github.com/teranos/atlas/logger"
)

var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "atlas - asset metadata resolution",
	Long: `atlas - asset metadata resolution engine.

atlas turns a short asset name into a fully-resolved, environment-aware
card describing a model, dataset, or tokenizer, layered across bundled,
system, and per-user metadata sources.

Available commands:
  list    - List known assets grouped by source
  show    - Show the resolved card of one asset
  config  - Manage atlas configuration

Examples:
  atlas list                   # List all known assets
  atlas show llama-3-8b        # Show the resolved card
  atlas show llama-3-8b --ignore-env
  atlas config show            # Show current configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.ShowCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
