package cli

import (
	"github.com/spf13/cobra"
)

// listEntry is the JSON shape of one listed package.
type listEntry struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Installed bool   `json:"installed"`
	Size      int64  `json:"size"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered packages",
	Long:  `Display all registered packages in ascending id order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		ids := rt.registry.Packages()
		entries := make([]listEntry, 0, len(ids))
		for _, id := range ids {
			pkg := rt.registry.Open(id)
			if pkg == nil {
				continue
			}
			entries = append(entries, listEntry{
				ID:        id.String(),
				Type:      string(pkg.Type()),
				Installed: pkg.IsInstalled(),
				Size:      pkg.Size(),
			})
		}

		if jsonOutput {
			return outputJSON(entries)
		}

		if len(entries) == 0 {
			PrintEmptyState("No packages registered")
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			installed := "-"
			if e.Installed {
				installed = "installed"
			}
			rows = append(rows, []string{e.ID, e.Type, installed})
		}
		PrintTable([]string{"PACKAGE", "TYPE", "STATE"}, rows)
		return nil
	},
}
