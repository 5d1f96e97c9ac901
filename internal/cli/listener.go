package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/danieljhkim/packstore/internal/content"
)

var actionColors = map[string]*color.Color{
	content.ActionAdded:   successColor,
	content.ActionDeleted: errorColor,
	content.ActionIgnored: dimColor,
}

// printListener writes one line per progress event, colored by action.
type printListener struct {
	w io.Writer
}

func newPrintListener(w io.Writer) *printListener {
	return &printListener{w: w}
}

func (l *printListener) OnMessage(mode content.Mode, action, path string) {
	clr, ok := actionColors[action]
	if !ok {
		fmt.Fprintf(l.w, "%s %s\n", action, path)
		return
	}
	_, _ = clr.Fprintf(l.w, "%s %s\n", action, path)
}

func (l *printListener) OnError(mode content.Mode, path string, err error) {
	_, _ = errorColor.Fprintf(l.w, "E %s (%v)\n", path, err)
}
