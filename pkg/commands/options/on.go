// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daymark/pkg/app"
)

const (
	layoutYearMonth = "2006-1"
	layoutMonth     = "1"
)

// OnOptions selects the month a command works on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a month, example: --on="2022-6" or --on="6". Defaults to the current month.`)
}

// GetOn resolves the flag against now. A bare month is taken from the
// current year.
func (o *OnOptions) GetOn(now time.Time) (app.Cursor, error) {
	if o.OnString == "" {
		return app.NewCursor(now), nil
	}
	t, err := time.Parse(layoutYearMonth, o.OnString)
	if err == nil {
		return app.NewCursor(t), nil
	}
	t, err = time.Parse(layoutMonth, o.OnString)
	if err != nil {
		return app.Cursor{}, fmt.Errorf("invalid --on %q, expected YYYY-M or M", o.OnString)
	}
	return app.Cursor{Year: now.Year(), Month: int(t.Month())}, nil
}

// YearOptions selects the year a command reports on.
type YearOptions struct {
	Year int
}

func AddYearArgs(cmd *cobra.Command, o *YearOptions) {
	cmd.Flags().IntVar(&o.Year, "year", 0,
		"Specify the year. Defaults to the current year.")
}

// GetYear returns the flag value, or the year of now when unset.
func (o *YearOptions) GetYear(now time.Time) int {
	if o.Year == 0 {
		return now.Year()
	}
	return o.Year
}
