package app

import (
	"fmt"

	"tableflip.dev/daymark/pkg/selection"
)

// DefaultYearGap is the number of selectable years on each side of the
// current year in the year picker.
const DefaultYearGap = 4

// YearOption is an entry of the year picker. Page options sit one past each
// end of the window; choosing one jumps the window by a full page.
type YearOption struct {
	Year  int
	Count int
	Page  bool
}

// Label renders the option the way the picker shows it.
func (o YearOption) Label() string {
	if o.Page {
		return "..."
	}
	return fmt.Sprintf("%d (%d)", o.Year, o.Count)
}

// YearOptions returns the page sentinel year-gap-1, the years year-gap through
// year+gap with their selected-day counts, and the sentinel year+gap+1.
func YearOptions(year, gap int, s selection.Store) []YearOption {
	if gap < 0 {
		gap = 0
	}
	opts := make([]YearOption, 0, 2*gap+3)
	opts = append(opts, YearOption{Year: year - gap - 1, Page: true})
	for y := year - gap; y <= year+gap; y++ {
		opts = append(opts, YearOption{Year: y, Count: s.CountYear(y)})
	}
	opts = append(opts, YearOption{Year: year + gap + 1, Page: true})
	return opts
}

// MonthOption is an entry of the month picker.
type MonthOption struct {
	Month int
	Name  string
	Count int
}

// Label renders the option the way the picker shows it.
func (o MonthOption) Label() string {
	return fmt.Sprintf("%s (%d)", o.Name, o.Count)
}

// MonthOptions returns the twelve months of year with their selected-day
// counts.
func MonthOptions(year int, s selection.Store) []MonthOption {
	opts := make([]MonthOption, 12)
	for i := range opts {
		m := i + 1
		opts[i] = MonthOption{Month: m, Name: MonthName(m), Count: s.CountMonth(year, m)}
	}
	return opts
}
