package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/atlas/asset"
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known assets",
	Long: `List all assets known to the store, grouped by the source they were
scanned from. User-scope sources are shown first; they take precedence
over global-scope sources during resolution.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	pterm.Println(pterm.LightCyan("user:"))
	if err := dumpAssets(os.Stdout, store, asset.ScopeUser); err != nil {
		return err
	}

	pterm.Println()

	pterm.Println(pterm.LightCyan("global:"))
	return dumpAssets(os.Stdout, store, asset.ScopeGlobal)
}

func dumpAssets(w io.Writer, store *asset.Store, scope asset.Scope) error {
	groups, err := store.ListAssets(scope)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		fmt.Fprintln(w, "  n/a")
		return nil
	}

	writeAssetGroups(w, groups)
	return nil
}

// writeAssetGroups prints source-grouped asset names as nested indented
// text. Split out for testing.
func writeAssetGroups(w io.Writer, groups []asset.SourceAssets) {
	for _, group := range groups {
		fmt.Fprintf(w, "  %s\n", group.Source)
		for _, name := range group.Names {
			fmt.Fprintf(w, "   - %s\n", name)
		}
		fmt.Fprintln(w)
	}
}
