package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var registerReplace bool

var registerCmd = &cobra.Command{
	Use:   "register <archive>...",
	Short: "Register package archives",
	Long: `Read one or more package archives and add them to the registry.

The package id is taken from the archive manifest. Registering an id that is
already present fails unless --replace is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		var registered []string
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			id, err := rt.registry.Register(f, registerReplace)
			_ = f.Close()
			if err != nil {
				return fmt.Errorf("failed to register %s: %w", path, err)
			}
			registered = append(registered, id.String())
			if !jsonOutput {
				PrintSuccess(fmt.Sprintf("registered %s", id))
			}
		}

		if jsonOutput {
			return outputJSON(map[string][]string{"registered": registered})
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().BoolVar(&registerReplace, "replace", false, "Replace an already registered package with the same id")
}
