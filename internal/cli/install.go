package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/packstore/internal/pkgid"
	"github.com/danieljhkim/packstore/internal/plan"
	"github.com/danieljhkim/packstore/internal/scope"
)

var (
	installScope string
	installStore string
)

// taskResult is the JSON shape of one executed task.
type taskResult struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

// planResult is the JSON shape of an executed plan.
type planResult struct {
	Tasks        []taskResult `json:"tasks"`
	HasErrors    bool         `json:"hasErrors"`
	LeavingScope []string     `json:"leavingScope,omitempty"`
}

var installCmd = &cobra.Command{
	Use:   "install <id>...",
	Short: "Install packages into the target store",
	Long: `Build and execute an installation plan for the given packages.

Dependencies are validated against installed packages and the plan itself;
tasks run in dependency order. With --scope, content outside the granted
region is skipped and the affected packages are reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(args, plan.Install, installScope, installStore)
	},
}

func runPlan(args []string, typ plan.TaskType, scopeName, storeDir string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	builder := plan.NewBuilder(rt.registry).
		WithStore(rt.newStore(storeDir))
	if !jsonOutput {
		builder.WithListener(newPrintListener(os.Stdout))
	}

	var handler *scope.Handler
	if scopeName != "" {
		scopeType, err := pkgid.ParsePackageType(scopeName)
		if err != nil {
			return err
		}
		handler = builder.SetScope(scopeType)
	}

	for _, arg := range args {
		id, err := pkgid.ParseID(arg)
		if err != nil {
			return err
		}
		builder.AddTask(id, typ)
	}

	p, err := builder.Execute(context.Background())
	if err != nil {
		return err
	}

	result := planResult{HasErrors: p.HasErrors()}
	for _, t := range p.Tasks() {
		tr := taskResult{
			ID:    t.ID.String(),
			Type:  string(t.Type),
			State: string(t.State),
		}
		if t.Err != nil {
			tr.Error = t.Err.Error()
		}
		result.Tasks = append(result.Tasks, tr)
	}
	if handler != nil {
		for _, id := range handler.PackagesLeavingScope() {
			result.LeavingScope = append(result.LeavingScope, id.String())
		}
	}

	if jsonOutput {
		if err := outputJSON(result); err != nil {
			return err
		}
	} else {
		for _, tr := range result.Tasks {
			switch tr.State {
			case string(plan.TaskCompleted):
				PrintSuccess(fmt.Sprintf("%s %s", tr.Type, tr.ID))
			case string(plan.TaskError):
				PrintError(fmt.Sprintf("%s %s: %s", tr.Type, tr.ID, tr.Error))
			}
		}
		for _, id := range result.LeavingScope {
			PrintWarning(fmt.Sprintf("%s declared content outside the %s scope", id, scopeName))
		}
	}

	if p.HasErrors() {
		return fmt.Errorf("plan finished with errors")
	}
	return nil
}

func init() {
	installCmd.Flags().StringVar(&installScope, "scope", "", "Restrict installs to a scope (application or content)")
	installCmd.Flags().StringVar(&installStore, "store", "", "Target store directory (default: configured store)")
}
