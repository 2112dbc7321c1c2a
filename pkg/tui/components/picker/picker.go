// Package picker is a vertical option list used for the year and month
// switchers.
package picker

import (
	"fmt"

	"tableflip.dev/daymark/pkg/tui/theme"
)

// Item is one option.
type Item struct {
	Label   string
	Value   int
	Count   int
	Page    bool
	Current bool
}

// Model tracks the highlighted option.
type Model struct {
	items []Item
	index int
}

// New returns a picker highlighting the current item.
func New(items []Item) Model {
	m := Model{items: items}
	for i, it := range items {
		if it.Current {
			m.index = i
		}
	}
	return m
}

// Len returns the number of options.
func (m Model) Len() int { return len(m.items) }

// Index returns the highlighted option index.
func (m Model) Index() int { return m.index }

// Move shifts the highlight by delta, clamped to the list.
func (m *Model) Move(delta int) {
	m.index += delta
	if m.index < 0 {
		m.index = 0
	}
	if m.index >= len(m.items) {
		m.index = len(m.items) - 1
	}
}

// Selected returns the highlighted option.
func (m Model) Selected() (Item, bool) {
	if m.index < 0 || m.index >= len(m.items) {
		return Item{}, false
	}
	return m.items[m.index], true
}

// At returns option i.
func (m Model) At(i int) (Item, bool) {
	if i < 0 || i >= len(m.items) {
		return Item{}, false
	}
	return m.items[i], true
}

// Lines renders one line per option. Counts are shaded by heat against the
// busiest option.
func (m Model) Lines(th theme.Theme) []string {
	max := 0
	for _, it := range m.items {
		if it.Count > max {
			max = it.Count
		}
	}
	lines := make([]string, len(m.items))
	for i, it := range m.items {
		marker := "  "
		if i == m.index {
			marker = "> "
		}
		var text string
		switch {
		case it.Page:
			text = th.Picker.Page.Render(it.Label)
		default:
			style := th.Picker.Item
			if it.Current {
				style = th.Picker.Current
			}
			if i == m.index {
				style = th.Picker.Highlight.Inherit(style)
			}
			text = style.Render(it.Label) + " " + theme.Heat(it.Count, max).Render(fmt.Sprintf("(%d)", it.Count))
		}
		lines[i] = marker + text
	}
	return lines
}
