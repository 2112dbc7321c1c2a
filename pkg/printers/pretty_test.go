package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/selection"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestPrintMonth(t *testing.T) {
	noColor(t)
	w := app.New(app.Options{Now: time.Date(2022, time.June, 1, 0, 0, 0, 0, time.Local)})
	if err := w.Mark(2022, 6, []int{10, 11}, true); err != nil {
		t.Fatalf("mark: %v", err)
	}

	buf := &bytes.Buffer{}
	pp := &PrettyPrint{Out: buf}
	pp.PrintMonth(w.View())

	lines := strings.Split(buf.String(), "\n")
	if got := strings.TrimSpace(lines[0]); got != "June 2022" {
		t.Fatalf("title = %q", got)
	}
	if lines[1] != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("header = %q", lines[1])
	}
	if lines[2] != "       1  2  3  4  5" {
		t.Fatalf("first week = %q", lines[2])
	}
	if lines[6] != "27 28 29 30" {
		t.Fatalf("last week = %q", lines[6])
	}
}

func TestPrintYear(t *testing.T) {
	noColor(t)
	s, err := selection.Apply(selection.Store{}, 2022, 3, []int{1, 2, 3}, true)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	buf := &bytes.Buffer{}
	pp := &PrettyPrint{Out: buf}
	pp.PrintYear(app.Report(s, 2022, time.Date(2022, time.March, 3, 0, 0, 0, 0, time.Local)))

	out := buf.String()
	for _, want := range []string{"2022 - 3 days", "March", "Longest streak: 3", "Current streak: 3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestDaysNone(t *testing.T) {
	noColor(t)
	buf := &bytes.Buffer{}
	pp := &PrettyPrint{Out: buf}
	pp.Days(nil)
	pp.Days([]int{3, 1})
	if got := buf.String(); got != " none\n3 1\n" {
		t.Fatalf("got %q", got)
	}
}
