package app

import (
	"time"

	"tableflip.dev/daymark/pkg/grid"
)

// Cursor is the displayed year and month. Months are 1-based.
type Cursor struct {
	Year  int
	Month int
}

// NewCursor returns the cursor for the local calendar month of t.
func NewCursor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: int(t.Month())}
}

// NextMonth advances one month, rolling into January of the next year.
func (c Cursor) NextMonth() Cursor {
	if c.Month >= 12 {
		return Cursor{Year: c.Year + 1, Month: 1}
	}
	return Cursor{Year: c.Year, Month: c.Month + 1}
}

// PrevMonth steps back one month, rolling into December of the previous year.
func (c Cursor) PrevMonth() Cursor {
	if c.Month <= 1 {
		return Cursor{Year: c.Year - 1, Month: 12}
	}
	return Cursor{Year: c.Year, Month: c.Month - 1}
}

// NextYear advances one year. Years are unbounded.
func (c Cursor) NextYear() Cursor { return Cursor{Year: c.Year + 1, Month: c.Month} }

// PrevYear steps back one year.
func (c Cursor) PrevYear() Cursor { return Cursor{Year: c.Year - 1, Month: c.Month} }

// WithYear returns the cursor moved to year.
func (c Cursor) WithYear(year int) Cursor { return Cursor{Year: year, Month: c.Month} }

// WithMonth returns the cursor moved to month, rejecting months outside 1..12.
func (c Cursor) WithMonth(month int) (Cursor, error) {
	if err := grid.ValidMonth(month); err != nil {
		return c, err
	}
	return Cursor{Year: c.Year, Month: month}, nil
}

// Time returns midnight of the first day of the cursor month in loc.
func (c Cursor) Time(loc *time.Location) time.Time {
	return time.Date(c.Year, time.Month(c.Month), 1, 0, 0, 0, 0, loc)
}

// MonthName returns the English name of the cursor month.
func (c Cursor) MonthName() string {
	return MonthName(c.Month)
}

// MonthName returns the English name of month (1..12), or "" when invalid.
func MonthName(month int) string {
	if grid.ValidMonth(month) != nil {
		return ""
	}
	return time.Month(month).String()
}
