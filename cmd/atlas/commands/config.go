package commands

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/atlas/config"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage atlas configuration",
	Long: `Display the atlas configuration.

Configuration sources (in order of precedence):
1. Environment variables (ATLAS_* prefix)
2. Project config (./atlas.toml, searched upward)
3. User config (~/.atlas/atlas.toml)
4. System config (/etc/atlas/atlas.toml)
5. Default values`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current atlas configuration merged from all sources",
	RunE:  runConfigShow,
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var out []byte
	switch configFormat {
	case "json":
		out, err = json.MarshalIndent(cfg, "", "  ")
	case "yaml":
		out, err = yaml.Marshal(cfg)
	default:
		out, err = toml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
