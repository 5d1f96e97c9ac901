package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/packstore/internal/plan"
)

var uninstallStore string

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <id>...",
	Short: "Uninstall packages from the target store",
	Long: `Build and execute an uninstallation plan for the given packages.

A package's content is removed before the content of its in-plan
dependencies.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(args, plan.Uninstall, "", uninstallStore)
	},
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallStore, "store", "", "Target store directory (default: configured store)")
}
