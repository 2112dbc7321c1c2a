// Package show prints the selected days of one month.
package show

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/printers"
)

// Month is the JSON form of a shown month.
type Month struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Name  string `json:"name"`
	Days  []int  `json:"days"`
}

// Show prints the month On of Widget.
type Show struct {
	Widget *app.Widget
	On     app.Cursor
	JSON   bool
	Out    io.Writer
}

// Do moves the widget to On and prints its month.
func (n *Show) Do(_ context.Context) error {
	if n.Widget == nil {
		return errors.New("can not show, no store")
	}
	if err := n.Widget.SetCursor(n.On); err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	v := n.Widget.View()
	days := n.Widget.Store().Get(v.Cursor.Year, v.Cursor.Month).Sorted()
	if n.JSON {
		if days == nil {
			days = []int{}
		}
		return printers.JSON(out, Month{Year: v.Cursor.Year, Month: v.Cursor.Month, Name: v.MonthName, Days: days})
	}

	pp := printers.PrettyPrint{Out: out}
	pp.PrintMonth(v)
	pp.TitleWithCount("Selected", v.MonthCount)
	pp.Days(days)
	return nil
}
