package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/packstore/internal/pkgid"
)

var depsOnlyInstalled bool

// depsReport is the JSON shape of a dependency analysis.
type depsReport struct {
	ID         string   `json:"id"`
	Resolved   []string `json:"resolved"`
	Unresolved []string `json:"unresolved"`
}

var depsCmd = &cobra.Command{
	Use:   "deps <id>",
	Short: "Analyze a package's dependencies",
	Long: `Partition the declared dependencies of a package into resolved and
unresolved against the registry. With --installed, only installed packages
count as matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		id, err := pkgid.ParseID(args[0])
		if err != nil {
			return err
		}
		report, err := rt.registry.AnalyzeDependencies(id, depsOnlyInstalled)
		if err != nil {
			return err
		}

		out := depsReport{ID: report.ID.String()}
		for _, rid := range report.Resolved {
			out.Resolved = append(out.Resolved, rid.String())
		}
		for _, dep := range report.Unresolved {
			out.Unresolved = append(out.Unresolved, dep.String())
		}

		if jsonOutput {
			return outputJSON(out)
		}

		if len(out.Resolved) == 0 && len(out.Unresolved) == 0 {
			PrintEmptyState("No dependencies declared")
			return nil
		}
		if len(out.Resolved) > 0 {
			PrintInfo("Resolved:")
			PrintList(out.Resolved, 1)
		}
		if len(out.Unresolved) > 0 {
			PrintInfo("Unresolved:")
			PrintList(out.Unresolved, 1)
		}
		return nil
	},
}

func init() {
	depsCmd.Flags().BoolVar(&depsOnlyInstalled, "installed", false, "Count only installed packages as matches")
}
