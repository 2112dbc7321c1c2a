// Package app composes the selection store, the drag tracker and the
// calendar cursor into the widget that UIs and CLIs drive.
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"tableflip.dev/daymark/pkg/drag"
	"tableflip.dev/daymark/pkg/grid"
	"tableflip.dev/daymark/pkg/selection"
	"tableflip.dev/daymark/pkg/store"
)

// Options configures a Widget.
type Options struct {
	// Selections persists the store. When nil the widget is in-memory only.
	Selections *store.Selections
	// Logger receives persistence warnings. Defaults to discarding.
	Logger *log.Logger
	// YearGap is the year picker half-width. Zero means DefaultYearGap.
	YearGap int
	// Now picks the initial cursor month. Defaults to time.Now.
	Now time.Time
}

// Widget owns the latest selection snapshot, the calendar cursor and the
// in-progress drag. It is driven from a single event loop and is not safe for
// concurrent use.
type Widget struct {
	cursor     Cursor
	store      selection.Store
	tracker    drag.Tracker
	selections *store.Selections
	logger     *log.Logger
	yearGap    int
	saveErr    error
}

// New creates a widget and loads the persisted selection. Load failures are
// logged and leave the widget with an empty store.
func New(opts Options) *Widget {
	w := &Widget{
		selections: opts.Selections,
		logger:     opts.Logger,
		yearGap:    opts.YearGap,
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard, "", 0)
	}
	if w.yearGap <= 0 {
		w.yearGap = DefaultYearGap
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	w.cursor = NewCursor(now)
	if w.selections != nil {
		if w.selections.Logger == nil {
			w.selections.Logger = w.logger
		}
		w.store = w.selections.Load()
	}
	return w
}

// Cursor returns the displayed month.
func (w *Widget) Cursor() Cursor { return w.cursor }

// Store returns the current snapshot.
func (w *Widget) Store() selection.Store { return w.store }

// YearGap returns the year picker half-width.
func (w *Widget) YearGap() int { return w.yearGap }

// Drag returns the active drag range, if any.
func (w *Widget) Drag() (drag.Range, bool) { return w.tracker.Active() }

// PointerDown starts a drag on day of the displayed month. Days outside the
// month are ignored.
func (w *Widget) PointerDown(day int) bool {
	if !w.inMonth(day) {
		return false
	}
	return w.tracker.Down(day, w.store.Get(w.cursor.Year, w.cursor.Month).Has(day))
}

// PointerMove stretches an active drag to day.
func (w *Widget) PointerMove(day int) bool {
	if !w.inMonth(day) {
		return false
	}
	return w.tracker.Move(day)
}

// PointerUp releases the drag and commits its range. Reports whether a drag
// was active.
func (w *Widget) PointerUp() bool {
	c, ok := w.tracker.Up()
	if !ok {
		return false
	}
	w.commit(w.cursor.Year, w.cursor.Month, c.Days, c.Selected)
	return true
}

// Activate toggles a single day of the displayed month without going
// through the drag tracker. Used for keyboard activation.
func (w *Widget) Activate(day int) bool {
	if !w.inMonth(day) {
		return false
	}
	selected := !w.store.Get(w.cursor.Year, w.cursor.Month).Has(day)
	w.commit(w.cursor.Year, w.cursor.Month, []int{day}, selected)
	return true
}

// Mark selects or deselects days of any month, as a single committed batch.
func (w *Widget) Mark(year, month int, days []int, selected bool) error {
	if err := grid.ValidMonth(month); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	last := grid.DaysIn(year, month)
	for _, d := range days {
		if d < 1 || d > last {
			return fmt.Errorf("app: day %d of %d-%02d: %w", d, year, month, grid.ErrInvalidArgument)
		}
	}
	w.commit(year, month, days, selected)
	return nil
}

// Replace swaps in a whole snapshot, for imports, and persists it.
func (w *Widget) Replace(s selection.Store) {
	w.tracker.Reset()
	w.store = s
	w.save()
}

// Reload re-reads the persisted store after an external change. Reports
// whether the in-memory snapshot was replaced.
func (w *Widget) Reload() bool {
	if w.selections == nil {
		return false
	}
	s, changed := w.selections.Reload()
	if !changed {
		return false
	}
	w.store = s
	return true
}

// NextMonth moves the cursor forward one month.
func (w *Widget) NextMonth() { w.moveTo(w.cursor.NextMonth()) }

// PrevMonth moves the cursor back one month.
func (w *Widget) PrevMonth() { w.moveTo(w.cursor.PrevMonth()) }

// NextYear moves the cursor forward one year.
func (w *Widget) NextYear() { w.moveTo(w.cursor.NextYear()) }

// PrevYear moves the cursor back one year.
func (w *Widget) PrevYear() { w.moveTo(w.cursor.PrevYear()) }

// SetYear moves the cursor to year. Choosing a page sentinel from
// YearOptions lands here too and re-centres the picker window on it.
func (w *Widget) SetYear(year int) { w.moveTo(w.cursor.WithYear(year)) }

// SetMonth moves the cursor to month of the displayed year.
func (w *Widget) SetMonth(month int) error {
	c, err := w.cursor.WithMonth(month)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	w.moveTo(c)
	return nil
}

// SetCursor moves to an arbitrary month.
func (w *Widget) SetCursor(c Cursor) error {
	if err := grid.ValidMonth(c.Month); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	w.moveTo(c)
	return nil
}

func (w *Widget) moveTo(c Cursor) {
	if c == w.cursor {
		return
	}
	// A drag range only has meaning on the grid it started on.
	w.tracker.Reset()
	w.cursor = c
}

func (w *Widget) inMonth(day int) bool {
	return day >= 1 && day <= grid.DaysIn(w.cursor.Year, w.cursor.Month)
}

func (w *Widget) commit(year, month int, days []int, selected bool) {
	next, err := selection.Apply(w.store, year, month, days, selected)
	if err != nil {
		w.logger.Printf("app: apply %d-%02d: %v", year, month, err)
		return
	}
	w.store = next
	w.save()
}

func (w *Widget) save() {
	if w.selections == nil {
		return
	}
	// Failures are logged by Selections; the in-memory store stays
	// authoritative for the session.
	w.saveErr = w.selections.Save(w.store)
}

// SaveErr returns the error of the most recent save, or nil if it succeeded.
// Interactive callers ignore it; one-shot commands report it.
func (w *Widget) SaveErr() error { return w.saveErr }
