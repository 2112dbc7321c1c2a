package app

import (
	"tableflip.dev/daymark/pkg/drag"
	"tableflip.dev/daymark/pkg/grid"
)

// CellView is a grid cell with its effective display state.
type CellView struct {
	grid.Cell
	// Selected is the persisted state, overridden by an active drag range.
	Selected bool
	// Pointed marks cells inside the active drag range.
	Pointed bool
}

// MonthView is everything a renderer needs for the displayed month.
type MonthView struct {
	Cursor     Cursor
	MonthName  string
	YearCount  int
	MonthCount int
	Years      []YearOption
	Months     []MonthOption
	Weeks      [][7]CellView
	Dragging   bool
}

// View derives the display state from the cursor, the store and the drag.
func (w *Widget) View() MonthView {
	c := w.cursor
	v := MonthView{
		Cursor:     c,
		MonthName:  c.MonthName(),
		YearCount:  w.store.CountYear(c.Year),
		MonthCount: w.store.CountMonth(c.Year, c.Month),
		Years:      YearOptions(c.Year, w.yearGap, w.store),
		Months:     MonthOptions(c.Year, w.store),
	}

	var rng *drag.Range
	if r, ok := w.tracker.Active(); ok {
		rng = &r
		v.Dragging = true
	}

	weeks, err := grid.Layout(c.Year, c.Month)
	if err != nil {
		// The cursor only ever holds valid months.
		w.logger.Printf("app: layout %d-%02d: %v", c.Year, c.Month, err)
		return v
	}
	persisted := w.store.Get(c.Year, c.Month)
	v.Weeks = make([][7]CellView, len(weeks))
	for i, week := range weeks {
		for j, cell := range week {
			cv := CellView{Cell: cell}
			if !cell.Empty() {
				cv.Selected, cv.Pointed = drag.Effective(persisted.Has(cell.Day), rng, cell.Day)
			}
			v.Weeks[i][j] = cv
		}
	}
	return v
}
