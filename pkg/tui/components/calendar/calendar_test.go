package calendar

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/grid"
	"tableflip.dev/daymark/pkg/tui/theme"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func february2022(t *testing.T) [][7]app.CellView {
	t.Helper()
	weeks, err := grid.Layout(2022, 2)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	out := make([][7]app.CellView, len(weeks))
	for i, w := range weeks {
		for j, c := range w {
			out[i][j] = app.CellView{Cell: c, Selected: c.Day == 7}
		}
	}
	return out
}

func TestRender(t *testing.T) {
	weeks := february2022(t)
	lines := strings.Split(stripANSI(Render(weeks, 7, theme.Default().Calendar)), "\n")

	want := []string{
		" Mo  Tu  We  Th  Fr  Sa  Su ",
		"      1   2   3   4   5   6 ",
		"  7   8   9  10  11  12  13 ",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	for i, l := range lines {
		if n := ansi.PrintableRuneWidth(l); n != Width {
			t.Fatalf("line %d width = %d", i, n)
		}
	}
}

func TestDayAt(t *testing.T) {
	weeks := february2022(t)
	tests := map[string]struct {
		row, x int
		want   int
	}{
		"leading blank": {row: 0, x: 0, want: 0},
		"first":         {row: 0, x: 4, want: 1},
		"cell edge":     {row: 0, x: 7, want: 1},
		"sunday":        {row: 0, x: 27, want: 6},
		"second week":   {row: 1, x: 0, want: 7},
		"past width":    {row: 1, x: 28, want: 0},
		"past rows":     {row: len(weeks), x: 0, want: 0},
		"negative":      {row: -1, x: 4, want: 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := DayAt(weeks, tc.row, tc.x); got != tc.want {
				t.Fatalf("DayAt(%d, %d) = %d, want %d", tc.row, tc.x, got, tc.want)
			}
		})
	}
}
