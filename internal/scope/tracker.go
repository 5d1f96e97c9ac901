package scope

import (
	"github.com/danieljhkim/packstore/internal/content"
)

// Tracker wraps a progress listener and counts reported paths outside the
// granted scope region. The narrowed filter should already have excluded
// the writes; the counter surfaces packages declaring broader scope than
// granted. A tracker lives for one install task.
type Tracker struct {
	next   content.ProgressListener
	app    bool // true: application region, false: content region
	misses int
}

// newTracker creates a tracker forwarding to next. A nil next is allowed.
func newTracker(next content.ProgressListener, app bool) *Tracker {
	return &Tracker{next: next, app: app}
}

// OnMessage counts out-of-region paths and forwards the event.
func (t *Tracker) OnMessage(mode content.Mode, action, path string) {
	if mode == content.ModePaths && IsApplicationPath(path) != t.app {
		t.misses++
	}
	if t.next != nil {
		t.next.OnMessage(mode, action, path)
	}
}

// OnError forwards the event.
func (t *Tracker) OnError(mode content.Mode, path string, err error) {
	if t.next != nil {
		t.next.OnError(mode, path, err)
	}
}

// Misses returns the number of out-of-scope paths observed.
func (t *Tracker) Misses() int {
	return t.misses
}
