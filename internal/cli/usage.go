package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/packstore/internal/pkgid"
)

var usageCmd = &cobra.Command{
	Use:   "usage <id>",
	Short: "List packages depending on a package",
	Long:  `List every registered package declaring a dependency that matches the given id.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		id, err := pkgid.ParseID(args[0])
		if err != nil {
			return err
		}

		users := rt.registry.Usage(id)
		names := make([]string, 0, len(users))
		for _, uid := range users {
			names = append(names, uid.String())
		}

		if jsonOutput {
			return outputJSON(names)
		}

		if len(names) == 0 {
			PrintEmptyState("No packages depend on " + id.String())
			return nil
		}
		PrintList(names, 0)
		return nil
	},
}
