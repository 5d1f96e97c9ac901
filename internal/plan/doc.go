// Package plan builds and executes validated batches of package tasks.
//
// A Builder collects install/uninstall requests, then Execute validates the
// batch as a whole before touching the target store: every dependency must
// be satisfiable (by an installed package or by another install task in the
// same batch), and the in-plan dependency graph must be acyclic. Validation
// failures abort with zero mutations. Once validation passes, tasks run in
// a deterministic dependency-safe order; an individual task failure is
// recorded on the plan and does not stop the remaining tasks.
//
// Key components:
//   - Builder: collects tasks, scope, store session, and listener
//   - Plan: the ordered, executed batch with per-task outcomes
//   - Task: one install or uninstall request
package plan
