package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/grid"
)

const width = len("11 12 13 14 15 16 17") // an example week

// PrintMonth prints the month grid of v with selected days highlighted.
func (pp *PrettyPrint) PrintMonth(v app.MonthView) {
	out := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	title := fmt.Sprintf("%s %d", v.MonthName, v.Cursor.Year)
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), title)

	h := color.New(color.Faint)
	_, _ = h.Fprintln(out, strings.Join(weekdayLabels(), " "))

	plain := color.New(color.Faint, color.FgWhite)
	weekend := color.New(color.Faint, color.FgRed)
	selected := color.New(color.Bold, color.FgHiGreen)

	for _, week := range v.Weeks {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			switch {
			case c.Empty():
				cells = append(cells, "  ")
			case c.Selected:
				cells = append(cells, selected.Sprintf("%2d", c.Day))
			case c.Weekend:
				cells = append(cells, weekend.Sprintf("%2d", c.Day))
			default:
				cells = append(cells, plain.Sprintf("%2d", c.Day))
			}
		}
		_, _ = fmt.Fprintln(out, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	_, _ = fmt.Fprintln(out, "")
}

// PrintYear prints a per-month summary table followed by streaks.
func (pp *PrettyPrint) PrintYear(r app.ReportResult) {
	out := pp.out()
	bold := color.New(color.Bold)

	pp.TitleWithCount(fmt.Sprint(r.Year), r.Total)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Month"), bold.Sprint("Selected"), bold.Sprint("Of"))
	for _, m := range r.Months {
		tbl.AddRow(m.Name, m.Count, m.Days)
	}
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(out, tbl)

	_, _ = fmt.Fprintf(out, "\nLongest streak: %d\n", r.LongestStreak)
	_, _ = fmt.Fprintf(out, "Current streak: %d\n", r.CurrentStreak)
}

func weekdayLabels() []string {
	wd := grid.Weekdays()
	return wd[:]
}
