package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/packstore/internal/pkgid"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove registered packages",
	Long:  `Remove packages from the registry. Installed content is left in place.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		for _, arg := range args {
			id, err := pkgid.ParseID(arg)
			if err != nil {
				return err
			}
			if err := rt.registry.Remove(id); err != nil {
				return err
			}
			if !jsonOutput {
				PrintSuccess(fmt.Sprintf("removed %s", id))
			}
		}

		if jsonOutput {
			return outputJSON(map[string][]string{"removed": args})
		}
		return nil
	},
}
