package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/daymark/pkg/app"
	"tableflip.dev/daymark/pkg/grid"
	"tableflip.dev/daymark/pkg/store"
	"tableflip.dev/daymark/pkg/tui/components/calendar"
	"tableflip.dev/daymark/pkg/tui/components/picker"
	"tableflip.dev/daymark/pkg/tui/theme"
)

// Screen rows of the fixed layout. Week rows start at lineGrid; the picker,
// when open, starts one blank line below the last week.
const (
	lineYear   = 0
	lineMonth  = 1
	lineHeader = 3
	lineGrid   = 4
)

// labelWidth is the centred label between the switcher arrows, sized so a
// switcher row is as wide as the calendar.
const labelWidth = calendar.Width - 4

type pickerKind int

const (
	pickNone pickerKind = iota
	pickYear
	pickMonth
)

// Watcher reports changes to the persisted selection made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan store.Event, error)
}

// Model is the Bubble Tea model wrapping an app.Widget.
type Model struct {
	ctx     context.Context
	widget  *app.Widget
	watcher Watcher
	theme   theme.Theme
	keys    keyMap
	help    help.Model
	now     func() time.Time

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	focus    int
	picking  pickerKind
	list     picker.Model
	status   string
	showHelp bool
	width    int
	height   int
}

// New builds a model for w. watcher may be nil to disable live reloads.
func New(ctx context.Context, w *app.Widget, watcher Watcher) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:     ctx,
		widget:  w,
		watcher: watcher,
		theme:   theme.Default(),
		keys:    defaultKeys(),
		help:    help.New(),
		now:     time.Now,
	}
	m.resetFocus()
	return m
}

// resetFocus puts the focus on today when today is displayed, otherwise on
// the first of the month.
func (m *Model) resetFocus() {
	m.focus = 1
	now := m.now()
	if c := m.widget.Cursor(); c.Year == now.Year() && c.Month == int(now.Month()) {
		m.focus = now.Day()
	}
}

// Init starts watching the store for external changes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.watcher)
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, watcher Watcher) tea.Cmd {
	if watcher == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := watcher.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update handles key, mouse and store events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "watch: " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		if m.widget.Reload() {
			m.clampFocus()
			m.refreshPicker()
			m.status = "reloaded"
			if msg.event.Key != "" {
				m.status += " " + msg.event.Key
			}
		}
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.watcher))
		}
	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.stopWatch()
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.handleClick(mouse.X, mouse.Y)
		}
	case tea.MouseMotionMsg:
		if _, ok := m.widget.Drag(); ok {
			mouse := msg.Mouse()
			if day := m.dayAt(mouse.X, mouse.Y); day > 0 {
				m.widget.PointerMove(day)
				m.focus = day
			}
		}
	case tea.MouseReleaseMsg:
		if m.widget.PointerUp() {
			m.committed()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) {
	if m.picking != pickNone {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.list.Move(-1)
		case key.Matches(msg, m.keys.Down):
			m.list.Move(1)
		case key.Matches(msg, m.keys.Toggle):
			if it, ok := m.list.Selected(); ok {
				m.choose(it)
			}
		case key.Matches(msg, m.keys.Close):
			m.picking = pickNone
		case key.Matches(msg, m.keys.Years):
			m.togglePicker(pickYear)
		case key.Matches(msg, m.keys.Months):
			m.togglePicker(pickMonth)
		}
		return
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(7)
	case key.Matches(msg, m.keys.Toggle):
		if m.widget.Activate(m.focus) {
			m.committed()
		}
	case key.Matches(msg, m.keys.PrevMonth):
		m.widget.PrevMonth()
		m.clampFocus()
	case key.Matches(msg, m.keys.NextMonth):
		m.widget.NextMonth()
		m.clampFocus()
	case key.Matches(msg, m.keys.PrevYear):
		m.widget.PrevYear()
		m.clampFocus()
	case key.Matches(msg, m.keys.NextYear):
		m.widget.NextYear()
		m.clampFocus()
	case key.Matches(msg, m.keys.Years):
		m.togglePicker(pickYear)
	case key.Matches(msg, m.keys.Months):
		m.togglePicker(pickMonth)
	case key.Matches(msg, m.keys.Today):
		now := m.now()
		if err := m.widget.SetCursor(app.NewCursor(now)); err == nil {
			m.focus = now.Day()
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}
}

func (m *Model) handleClick(x, y int) {
	weeks := m.widget.View().Weeks
	switch {
	case y == lineYear:
		switch switcherZone(x) {
		case -1:
			m.widget.PrevYear()
			m.clampFocus()
			m.refreshPicker()
		case 1:
			m.widget.NextYear()
			m.clampFocus()
			m.refreshPicker()
		default:
			m.togglePicker(pickYear)
		}
	case y == lineMonth:
		switch switcherZone(x) {
		case -1:
			m.widget.PrevMonth()
			m.clampFocus()
			m.refreshPicker()
		case 1:
			m.widget.NextMonth()
			m.clampFocus()
			m.refreshPicker()
		default:
			m.togglePicker(pickMonth)
		}
	case y >= lineGrid && y < lineGrid+len(weeks):
		if day := calendar.DayAt(weeks, y-lineGrid, x); day > 0 {
			m.focus = day
			m.widget.PointerDown(day)
		}
	case m.picking != pickNone && y >= pickerTop(weeks):
		if it, ok := m.list.At(y - pickerTop(weeks)); ok {
			m.choose(it)
		}
	}
}

// switcherZone maps a column of a switcher row to -1 for the back arrow, 1
// for the forward arrow and 0 for the label.
func switcherZone(x int) int {
	switch {
	case x < 2:
		return -1
	case x >= 2+labelWidth:
		return 1
	default:
		return 0
	}
}

func pickerTop(weeks [][7]app.CellView) int {
	return lineGrid + len(weeks) + 1
}

func (m *Model) dayAt(x, y int) int {
	return calendar.DayAt(m.widget.View().Weeks, y-lineGrid, x)
}

func (m *Model) moveFocus(delta int) {
	m.focus += delta
	m.clampFocus()
}

func (m *Model) clampFocus() {
	c := m.widget.Cursor()
	last := grid.DaysIn(c.Year, c.Month)
	if m.focus > last {
		m.focus = last
	}
	if m.focus < 1 {
		m.focus = 1
	}
}

func (m *Model) committed() {
	v := m.widget.View()
	m.status = fmt.Sprintf("%s %d: %d selected", v.MonthName, v.Cursor.Year, v.MonthCount)
	m.refreshPicker()
}

func (m *Model) togglePicker(kind pickerKind) {
	if m.picking == kind {
		m.picking = pickNone
		return
	}
	m.openPicker(kind)
}

func (m *Model) openPicker(kind pickerKind) {
	m.picking = kind
	m.list = picker.New(m.pickerItems(kind))
}

// refreshPicker rebuilds an open picker after the cursor or counts changed,
// keeping the highlight where it was.
func (m *Model) refreshPicker() {
	if m.picking == pickNone {
		return
	}
	idx := m.list.Index()
	m.list = picker.New(m.pickerItems(m.picking))
	m.list.Move(idx - m.list.Index())
}

func (m *Model) pickerItems(kind pickerKind) []picker.Item {
	v := m.widget.View()
	var items []picker.Item
	switch kind {
	case pickYear:
		for _, o := range v.Years {
			label := fmt.Sprint(o.Year)
			if o.Page {
				label = o.Label()
			}
			items = append(items, picker.Item{
				Label:   label,
				Value:   o.Year,
				Count:   o.Count,
				Page:    o.Page,
				Current: !o.Page && o.Year == v.Cursor.Year,
			})
		}
	case pickMonth:
		for _, o := range v.Months {
			items = append(items, picker.Item{
				Label:   o.Name,
				Value:   o.Month,
				Count:   o.Count,
				Current: o.Month == v.Cursor.Month,
			})
		}
	}
	return items
}

func (m *Model) choose(it picker.Item) {
	switch m.picking {
	case pickYear:
		m.widget.SetYear(it.Value)
		m.clampFocus()
		if it.Page {
			// Paging re-centres the window and leaves the picker open.
			m.openPicker(pickYear)
			return
		}
	case pickMonth:
		if err := m.widget.SetMonth(it.Value); err != nil {
			m.status = err.Error()
		}
		m.clampFocus()
	}
	m.picking = pickNone
}

// View renders the switchers, the month grid, an open picker and the footer.
func (m *Model) View() string {
	v := m.widget.View()
	th := m.theme

	yearLabel := app.YearOption{Year: v.Cursor.Year, Count: v.YearCount}.Label()
	monthLabel := app.MonthOption{Month: v.Cursor.Month, Name: v.MonthName, Count: v.MonthCount}.Label()

	lines := []string{
		m.switcher(yearLabel, m.picking == pickYear),
		m.switcher(monthLabel, m.picking == pickMonth),
		"",
		calendar.Header(th.Calendar),
	}
	lines = append(lines, calendar.Rows(v.Weeks, m.focus, th.Calendar)...)
	lines = append(lines, "")
	if m.picking != pickNone {
		lines = append(lines, m.list.Lines(th)...)
		lines = append(lines, "")
	}
	if m.status != "" {
		lines = append(lines, th.Footer.Status.Render(m.status))
	}
	m.help.ShowAll = m.showHelp
	lines = append(lines, th.Footer.Help.Render(m.help.View(m.keys)))
	return strings.Join(lines, "\n")
}

func (m *Model) switcher(label string, open bool) string {
	th := m.theme.Switcher
	pad := labelWidth - ansi.PrintableRuneWidth(label)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	text := strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left)
	style := th.Label
	if open {
		style = th.Open
	}
	return th.Arrow.Render("‹ ") + style.Render(text) + th.Arrow.Render(" ›")
}

// Run launches the interactive program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, w *app.Widget, watcher Watcher) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(ctx, w, watcher)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	m.stopWatch()
	return err
}
