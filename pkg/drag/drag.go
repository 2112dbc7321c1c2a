// Package drag tracks a pointer drag across the day cells of one month.
//
// A Tracker is either idle or dragging. Pressing on a day starts a range whose
// target state is the inverse of that day's current selection; moving over
// other days stretches the range; releasing emits a Commit covering every day
// between the two ends. The tracker never touches the persisted selection, it
// only describes what a release would commit.
package drag

// Range is the transient state of an in-progress drag.
type Range struct {
	From     int
	To       int
	Selected bool
}

// Low returns the smaller end of the range.
func (r Range) Low() int {
	if r.From < r.To {
		return r.From
	}
	return r.To
}

// High returns the larger end of the range.
func (r Range) High() int {
	if r.From > r.To {
		return r.From
	}
	return r.To
}

// Contains reports whether day lies between the ends, inclusive.
func (r Range) Contains(day int) bool {
	return r.Low() <= day && day <= r.High()
}

// Days returns every day from Low to High.
func (r Range) Days() []int {
	days := make([]int, 0, r.High()-r.Low()+1)
	for d := r.Low(); d <= r.High(); d++ {
		days = append(days, d)
	}
	return days
}

// Commit is emitted when a drag is released.
type Commit struct {
	Days     []int
	Selected bool
}

// Tracker is the drag state machine. The zero value is idle.
type Tracker struct {
	active bool
	rng    Range
}

// Down starts a drag on day. currentlySelected is the persisted state of day;
// the range targets its inverse. Targets that are not days (day < 1) leave
// the tracker untouched. Reports whether a drag started.
func (t *Tracker) Down(day int, currentlySelected bool) bool {
	if !isDay(day) {
		return false
	}
	t.active = true
	t.rng = Range{From: day, To: day, Selected: !currentlySelected}
	return true
}

// Move stretches the active range to day. Reports whether the range changed.
func (t *Tracker) Move(day int) bool {
	if !t.active || !isDay(day) || day == t.rng.To {
		return false
	}
	t.rng.To = day
	return true
}

// Up ends the drag and returns the batch to commit. ok is false when no drag
// was active.
func (t *Tracker) Up() (c Commit, ok bool) {
	if !t.active {
		return Commit{}, false
	}
	rng := t.rng
	t.Reset()
	return Commit{Days: rng.Days(), Selected: rng.Selected}, true
}

// Reset discards any active range without committing it.
func (t *Tracker) Reset() {
	t.active = false
	t.rng = Range{}
}

// Active returns the current range, if dragging.
func (t *Tracker) Active() (Range, bool) {
	return t.rng, t.active
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool { return t.active }

// Effective merges the persisted state of day with an optional active range.
// Days inside the range are pointed and show the range's target state.
func Effective(persisted bool, r *Range, day int) (selected, pointed bool) {
	if r != nil && r.Contains(day) {
		return r.Selected, true
	}
	return persisted, false
}

func isDay(day int) bool {
	return day >= 1 && day <= 31
}
