// Package calendar renders a month of app.CellView rows and maps screen
// columns back to days.
package calendar

import (
	"fmt"
	"strings"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/grid"
	"tableflip.dev/daymark/pkg/tui/theme"
)

// CellWidth is the number of terminal columns per day cell.
const CellWidth = 4

// Width is the rendered width of a week row.
const Width = 7 * CellWidth

// Header renders the Monday-first weekday labels.
func Header(th theme.CalendarTheme) string {
	var b strings.Builder
	for i, label := range grid.Weekdays() {
		style := th.Header
		if i >= 5 {
			style = th.HeaderWeekend
		}
		b.WriteString(style.Render(fmt.Sprintf(" %-2s ", label)))
	}
	return b.String()
}

// Rows renders each week as one line. focus underlines that day; zero
// disables the focus marker.
func Rows(weeks [][7]app.CellView, focus int, th theme.CalendarTheme) []string {
	lines := make([]string, 0, len(weeks))
	for _, week := range weeks {
		var b strings.Builder
		for _, c := range week {
			b.WriteString(renderCell(c, focus, th))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// Render produces the header and week rows as one block.
func Render(weeks [][7]app.CellView, focus int, th theme.CalendarTheme) string {
	lines := append([]string{Header(th)}, Rows(weeks, focus, th)...)
	return strings.Join(lines, "\n")
}

// DayAt returns the day rendered at column x of week row, or 0 for empty
// cells and positions outside the grid.
func DayAt(weeks [][7]app.CellView, row, x int) int {
	if row < 0 || row >= len(weeks) || x < 0 || x >= Width {
		return 0
	}
	return weeks[row][x/CellWidth].Day
}

func renderCell(c app.CellView, focus int, th theme.CalendarTheme) string {
	if c.Empty() {
		return th.Empty.Render(strings.Repeat(" ", CellWidth))
	}

	style := th.Day
	if c.Weekend {
		style = th.Weekend
	}
	switch {
	case c.Pointed && c.Selected:
		style = th.PointedSelected.Inherit(style)
	case c.Pointed:
		style = th.Pointed.Inherit(style)
	case c.Selected:
		style = th.Selected.Inherit(style)
	}

	text := fmt.Sprintf("%2d", c.Day)
	if c.Day == focus {
		text = th.Focus.Inherit(style).Render(text)
		return style.Render(" ") + text + style.Render(" ")
	}
	return style.Render(" " + text + " ")
}
