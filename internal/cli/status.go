package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/packstore/internal/pkgid"
)

// packageStatus is the JSON shape of a single package's status.
type packageStatus struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Filter       []string `json:"filter"`
	Dependencies []string `json:"dependencies"`
	Installed    bool     `json:"installed"`
	RegisteredAt string   `json:"registeredAt"`
	InstalledAt  string   `json:"installedAt,omitempty"`
	Size         int64    `json:"size"`
}

// registryStatus is the JSON shape of the registry overview.
type registryStatus struct {
	Root      string `json:"root"`
	Packages  int    `json:"packages"`
	Installed int    `json:"installed"`
}

var statusCmd = &cobra.Command{
	Use:   "status [id]",
	Short: "Show registry or package status",
	Long: `Without arguments, show a registry overview. With a package id, show
the package's type, filter, dependencies, and install state.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return registryOverview(rt)
		}

		id, err := pkgid.ParseID(args[0])
		if err != nil {
			return err
		}
		pkg := rt.registry.Open(id)
		if pkg == nil {
			return fmt.Errorf("package %s is not registered", id)
		}

		status := packageStatus{
			ID:           pkg.ID().String(),
			Type:         string(pkg.Type()),
			Filter:       pkg.Filter().Roots(),
			Installed:    pkg.IsInstalled(),
			RegisteredAt: pkg.RegisteredAt().Format(time.RFC3339),
			Size:         pkg.Size(),
		}
		for _, dep := range pkg.Dependencies() {
			status.Dependencies = append(status.Dependencies, dep.String())
		}
		if !pkg.InstalledAt().IsZero() {
			status.InstalledAt = pkg.InstalledAt().Format(time.RFC3339)
		}

		if jsonOutput {
			return outputJSON(status)
		}

		PrintLabelValue("Package", status.ID)
		PrintLabelValue("Type", status.Type)
		PrintLabelValue("Registered", status.RegisteredAt)
		if status.Installed {
			PrintLabelValue("Installed", status.InstalledAt)
		} else {
			PrintLabelValue("Installed", "no")
		}
		PrintLabelValue("Size", fmt.Sprintf("%d bytes", status.Size))
		if len(status.Filter) > 0 {
			PrintLabelValue("Filter", "")
			PrintList(status.Filter, 2)
		}
		if len(status.Dependencies) > 0 {
			PrintLabelValue("Dependencies", "")
			PrintList(status.Dependencies, 2)
		}
		return nil
	},
}

func registryOverview(rt *runtime) error {
	ids := rt.registry.Packages()
	installed := 0
	for _, id := range ids {
		if pkg := rt.registry.Open(id); pkg != nil && pkg.IsInstalled() {
			installed++
		}
	}

	status := registryStatus{
		Root:      rt.paths.Root,
		Packages:  len(ids),
		Installed: installed,
	}
	if jsonOutput {
		return outputJSON(status)
	}

	PrintLabelValue("Root", status.Root)
	PrintLabelValue("Packages", fmt.Sprintf("%d", status.Packages))
	PrintLabelValue("Installed", fmt.Sprintf("%d", status.Installed))
	return nil
}
