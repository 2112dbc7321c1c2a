// Package stats summarizes the selections of a year.
package stats

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/printers"
)

// Stats prints per-month counts and streaks for Year.
type Stats struct {
	Widget *app.Widget
	Year   int
	// Now anchors the current streak. Defaults to time.Now.
	Now  time.Time
	JSON bool
	Out  io.Writer
}

func (n *Stats) Do(_ context.Context) error {
	if n.Widget == nil {
		return errors.New("can not report, no store")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	r := app.Report(n.Widget.Store(), n.Year, now)
	if n.JSON {
		return printers.JSON(out, r)
	}
	pp := printers.PrettyPrint{Out: out}
	pp.PrintYear(r)
	return nil
}
