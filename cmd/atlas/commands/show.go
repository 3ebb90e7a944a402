package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/atlas/asset"
)

// ShowCmd represents the show command
var ShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the resolved card of an asset",
	Long: `Resolve an asset name into its card and print the merged metadata of
every card in the base chain as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showIgnoreEnv bool

func init() {
	ShowCmd.Flags().BoolVar(&showIgnoreEnv, "ignore-env", false, "Resolve the bare name, skipping environment overlays")
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	var opts []asset.RetrieveOption
	if showIgnoreEnv {
		opts = append(opts, asset.IgnoreEnvironment())
	}

	card, err := store.RetrieveCard(args[0], opts...)
	if err != nil {
		if asset.IsNotFound(err) || asset.IsCardError(err) {
			pterm.Error.Println(err)
			return nil
		}
		return err
	}

	for c := card; c != nil; c = c.Base() {
		out, err := yaml.Marshal(map[string]interface{}(c.Metadata()))
		if err != nil {
			return fmt.Errorf("failed to marshal card metadata: %w", err)
		}

		pterm.Println(pterm.LightCyan(c.Name() + ":"))
		pterm.Println(string(out))
	}

	return nil
}
