package plan

import (
	"github.com/danieljhkim/packstore/internal/pkgid"
)

// TaskType distinguishes install from uninstall tasks.
type TaskType string

const (
	// Install installs a package into the target store.
	Install TaskType = "install"

	// Uninstall removes a package's content from the target store.
	Uninstall TaskType = "uninstall"
)

// TaskState tracks the lifecycle of one task.
type TaskState string

const (
	// TaskNew marks a task that has not run yet.
	TaskNew TaskState = "new"

	// TaskRunning marks the task currently executing.
	TaskRunning TaskState = "running"

	// TaskCompleted marks a task that executed successfully.
	TaskCompleted TaskState = "completed"

	// TaskError marks a task whose execution failed.
	TaskError TaskState = "error"
)

// Task is one install or uninstall request within a plan.
type Task struct {
	// ID is the target package.
	ID pkgid.ID

	// Type is the task type.
	Type TaskType

	// State is updated as the plan executes.
	State TaskState

	// Err holds the failure recorded for this task, if any.
	Err error
}

// Plan is an ordered, validated batch of tasks. A plan executes exactly
// once; its task order always places a package's install after the installs
// of its in-plan dependencies.
type Plan struct {
	tasks     []*Task
	executed  bool
	hasErrors bool
}

// Tasks returns the tasks in execution order.
func (p *Plan) Tasks() []*Task {
	return p.tasks
}

// IsExecuted reports whether the plan has finished executing.
func (p *Plan) IsExecuted() bool {
	return p.executed
}

// HasErrors reports whether any task recorded a failure.
func (p *Plan) HasErrors() bool {
	return p.hasErrors
}
