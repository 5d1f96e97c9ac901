package content

// Mode qualifies progress events.
type Mode string

const (
	// ModeText marks free-form progress messages.
	ModeText Mode = "text"

	// ModePaths marks per-path progress events.
	ModePaths Mode = "paths"
)

// Actions reported for per-path events.
const (
	// ActionAdded marks a path written to the store.
	ActionAdded = "A"

	// ActionDeleted marks a path removed from the store.
	ActionDeleted = "D"

	// ActionIgnored marks a path skipped because the effective filter
	// excluded it.
	ActionIgnored = "-"
)

// ProgressListener receives progress and error events during install and
// uninstall operations. Implementations are purely observational; return
// values are never consulted.
type ProgressListener interface {
	// OnMessage reports a progress event.
	OnMessage(mode Mode, action, path string)

	// OnError reports a failure attributed to a path.
	OnError(mode Mode, path string, err error)
}

// NopListener is a ProgressListener that discards all events.
type NopListener struct{}

// OnMessage discards the event.
func (NopListener) OnMessage(Mode, string, string) {}

// OnError discards the event.
func (NopListener) OnError(Mode, string, error) {}
