// Package selection holds the immutable year/month/day selection snapshot and
// its JSON form.
package selection

import (
	"fmt"
	"sort"

	"tableflip.dev/daymark/pkg/grid"
)

// ErrInvalidArgument is returned for a month outside 1..12 or a day outside
// 1..31.
var ErrInvalidArgument = grid.ErrInvalidArgument

// YearMonth is the composite key of a month entry.
type YearMonth struct {
	Year  int
	Month int
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%d-%02d", ym.Year, ym.Month)
}

// Store is an immutable snapshot of selected days. The zero value is an empty
// store. Snapshots produced by Apply share every untouched month set with
// their input, so callers can detect change by comparing Get pointers.
type Store struct {
	months map[YearMonth]*Days
}

// Get returns the selected days of the month, or nil when none are selected.
func (s Store) Get(year, month int) *Days {
	return s.months[YearMonth{Year: year, Month: month}]
}

// CountMonth returns the number of selected days in the month.
func (s Store) CountMonth(year, month int) int {
	return s.Get(year, month).Len()
}

// CountYear returns the number of selected days across all months of year.
func (s Store) CountYear(year int) int {
	n := 0
	for ym, days := range s.months {
		if ym.Year == year {
			n += days.Len()
		}
	}
	return n
}

// Len returns the number of months holding at least one selected day.
func (s Store) Len() int { return len(s.months) }

// Empty reports whether no day is selected.
func (s Store) Empty() bool { return len(s.months) == 0 }

// Years returns the years that hold selections, ascending.
func (s Store) Years() []int {
	seen := make(map[int]struct{})
	for ym := range s.months {
		seen[ym.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Months returns the months of year that hold selections, ascending.
func (s Store) Months(year int) []int {
	var months []int
	for ym := range s.months {
		if ym.Year == year {
			months = append(months, ym.Month)
		}
	}
	sort.Ints(months)
	return months
}

// Apply returns a new snapshot where every day in days is added to the month
// when selected is true, or removed when false. Months left empty are dropped.
// When nothing changes, s itself is returned.
func Apply(s Store, year, month int, days []int, selected bool) (Store, error) {
	if err := grid.ValidMonth(month); err != nil {
		return s, fmt.Errorf("selection: %w", err)
	}
	for _, day := range days {
		if !validDay(day) {
			return s, fmt.Errorf("selection: day %d: %w", day, ErrInvalidArgument)
		}
	}

	key := YearMonth{Year: year, Month: month}
	cur := s.months[key]
	next := cur.with(days, selected)
	if next == cur {
		return s, nil
	}

	months := make(map[YearMonth]*Days, len(s.months)+1)
	for k, v := range s.months {
		months[k] = v
	}
	if next.Len() == 0 {
		delete(months, key)
	} else {
		months[key] = next
	}
	return Store{months: months}, nil
}

// Equal reports whether both snapshots select the same days.
func Equal(a, b Store) bool {
	if len(a.months) != len(b.months) {
		return false
	}
	for k, v := range a.months {
		if !v.Equal(b.months[k]) {
			return false
		}
	}
	return true
}
