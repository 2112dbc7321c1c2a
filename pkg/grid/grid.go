// Package grid computes the Monday-first day layout of a calendar month.
package grid

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned for a month outside 1..12 or a day outside
// 1..31.
var ErrInvalidArgument = errors.New("invalid argument")

// Cell is a single position in the month grid. A zero Day is an empty filler
// cell before the first or after the last day of the month.
type Cell struct {
	Day     int
	Weekend bool
}

// Empty reports whether the cell is a blank filler.
func (c Cell) Empty() bool { return c.Day == 0 }

// Week is one Monday..Sunday row.
type Week [7]Cell

// Days returns the day numbers in the week, skipping empty cells.
func (w Week) Days() []int {
	days := make([]int, 0, 7)
	for _, c := range w {
		if !c.Empty() {
			days = append(days, c.Day)
		}
	}
	return days
}

var weekdays = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Weekdays returns the two letter column labels, Monday first.
func Weekdays() [7]string { return weekdays }

// ValidMonth returns ErrInvalidArgument when month is outside 1..12.
func ValidMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("grid: month %d: %w", month, ErrInvalidArgument)
	}
	return nil
}

// DaysIn returns the number of days in the month using day 0 of the next month.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBefore returns the count of blank cells before day 1 in a Monday-first
// week.
func DaysBefore(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(first) - int(time.Monday) + 7) % 7
}

// Layout returns the weeks of the month. Each week holds seven cells; cells
// outside the month are empty.
func Layout(year, month int) ([]Week, error) {
	if err := ValidMonth(month); err != nil {
		return nil, err
	}

	before := DaysBefore(year, month)
	days := DaysIn(year, month)
	rows := (before + days + 6) / 7

	weeks := make([]Week, rows)
	for i := 1; i <= rows*7; i++ {
		if i <= before || i > before+days {
			continue
		}
		weeks[(i-1)/7][(i-1)%7] = Cell{
			Day:     i - before,
			Weekend: i%7 == 6 || i%7 == 0,
		}
	}
	return weeks, nil
}

// Position returns the zero based week row and column of day within the month
// layout. ok is false when day is not in the month.
func Position(year, month, day int) (row, col int, ok bool) {
	if ValidMonth(month) != nil || day < 1 || day > DaysIn(year, month) {
		return 0, 0, false
	}
	idx := DaysBefore(year, month) + day - 1
	return idx / 7, idx % 7, true
}
