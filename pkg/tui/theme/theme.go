package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Calendar CalendarTheme
	Switcher SwitcherTheme
	Picker   PickerTheme
	Footer   FooterTheme
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Header          lipgloss.Style
	HeaderWeekend   lipgloss.Style
	Empty           lipgloss.Style
	Day             lipgloss.Style
	Weekend         lipgloss.Style
	Selected        lipgloss.Style
	Pointed         lipgloss.Style
	PointedSelected lipgloss.Style
	Focus           lipgloss.Style
}

// SwitcherTheme styles the year and month switcher rows.
type SwitcherTheme struct {
	Arrow lipgloss.Style
	Label lipgloss.Style
	Open  lipgloss.Style
}

// PickerTheme styles the year/month option list.
type PickerTheme struct {
	Item      lipgloss.Style
	Current   lipgloss.Style
	Highlight lipgloss.Style
	Page      lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

var (
	heatLow  = mustHex("#6c6c6c")
	heatHigh = mustHex("#5fd75f")
)

// Default returns the built-in theme used across the UI.
func Default() Theme {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	return Theme{
		Calendar: CalendarTheme{
			Header:          header,
			HeaderWeekend:   header.Foreground(lipgloss.Color("167")),
			Empty:           lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Day:             lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Weekend:         lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
			Selected:        lipgloss.NewStyle().Background(lipgloss.Color("35")).Foreground(lipgloss.Color("0")),
			Pointed:         lipgloss.NewStyle().Background(lipgloss.Color("238")),
			PointedSelected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Focus:           lipgloss.NewStyle().Underline(true).Bold(true),
		},
		Switcher: SwitcherTheme{
			Arrow: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Label: lipgloss.NewStyle().Bold(true),
			Open:  lipgloss.NewStyle().Bold(true).Reverse(true),
		},
		Picker: PickerTheme{
			Item:      lipgloss.NewStyle(),
			Current:   lipgloss.NewStyle().Bold(true),
			Highlight: lipgloss.NewStyle().Reverse(true),
			Page:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

// Heat returns a foreground style shading count against max, from grey for
// nothing selected to green for the busiest option.
func Heat(count, max int) lipgloss.Style {
	if count <= 0 || max <= 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(heatLow.Hex()))
	}
	t := float64(count) / float64(max)
	if t > 1 {
		t = 1
	}
	c := heatLow.BlendLab(heatHigh, 0.35+0.65*t)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Clamped().Hex()))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
