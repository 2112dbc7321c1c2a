package app

import (
	"time"

	"tableflip.dev/daymark/pkg/grid"
	"tableflip.dev/daymark/pkg/selection"
)

// MonthReport summarizes one month of a year report.
type MonthReport struct {
	Month int    `json:"month"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	Days  int    `json:"days"`
}

// ReportResult summarizes the selections of a year.
type ReportResult struct {
	Year          int           `json:"year"`
	Total         int           `json:"total"`
	Months        []MonthReport `json:"months"`
	LongestStreak int           `json:"longestStreak"`
	// CurrentStreak counts consecutive selected days ending at the reference
	// day passed to Report, or zero when that day is outside the year.
	CurrentStreak int `json:"currentStreak"`
}

// Report builds per-month counts and streaks for year. now is the reference
// day for the current streak.
func Report(s selection.Store, year int, now time.Time) ReportResult {
	r := ReportResult{Year: year, Total: s.CountYear(year)}

	run := 0
	for m := 1; m <= 12; m++ {
		days := s.Get(year, m)
		last := grid.DaysIn(year, m)
		r.Months = append(r.Months, MonthReport{Month: m, Name: MonthName(m), Count: days.Len(), Days: last})

		for d := 1; d <= last; d++ {
			if days.Has(d) {
				run++
				if run > r.LongestStreak {
					r.LongestStreak = run
				}
			} else {
				run = 0
			}
			if now.Year() == year && int(now.Month()) == m && now.Day() == d {
				r.CurrentStreak = run
			}
		}
	}
	return r
}
