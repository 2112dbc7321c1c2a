// Package mark selects or clears days from the command line.
package mark

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/runner/show"
)

// Mark applies Days of month On as one batch, then shows the month.
type Mark struct {
	Widget   *app.Widget
	On       app.Cursor
	Days     []int
	Selected bool
	JSON     bool
	Out      io.Writer
}

// Do commits the batch and reports persistence failures.
func (n *Mark) Do(ctx context.Context) error {
	if n.Widget == nil {
		return errors.New("can not mark, no store")
	}
	if err := n.Widget.Mark(n.On.Year, n.On.Month, n.Days, n.Selected); err != nil {
		return err
	}
	if err := n.Widget.SaveErr(); err != nil {
		return err
	}
	s := show.Show{Widget: n.Widget, On: n.On, JSON: n.JSON, Out: n.Out}
	return s.Do(ctx)
}
