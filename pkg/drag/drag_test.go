package drag

import (
	"reflect"
	"testing"
)

func TestDownOnNonDayIsNoop(t *testing.T) {
	var tr Tracker
	if tr.Down(0, false) {
		t.Fatalf("expected pointer down on an empty cell to be ignored")
	}
	if tr.Dragging() {
		t.Fatalf("expected tracker to stay idle")
	}
	if _, ok := tr.Up(); ok {
		t.Fatalf("expected no commit without an active drag")
	}
}

func TestDragForwardAndBackward(t *testing.T) {
	tests := []struct {
		name      string
		from      int
		moves     []int
		persisted bool
		want      Commit
	}{
		{
			name:  "forward",
			from:  10,
			moves: []int{11, 12, 15},
			want:  Commit{Days: []int{10, 11, 12, 13, 14, 15}, Selected: true},
		},
		{
			name:      "backward deselect",
			from:      8,
			moves:     []int{7, 5},
			persisted: true,
			want:      Commit{Days: []int{5, 6, 7, 8}, Selected: false},
		},
		{
			name:  "single day",
			from:  3,
			moves: nil,
			want:  Commit{Days: []int{3}, Selected: true},
		},
		{
			name:  "back to start",
			from:  20,
			moves: []int{22, 20},
			want:  Commit{Days: []int{20}, Selected: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tracker
			if !tr.Down(tt.from, tt.persisted) {
				t.Fatalf("expected drag to start")
			}
			for _, d := range tt.moves {
				tr.Move(d)
			}
			got, ok := tr.Up()
			if !ok {
				t.Fatalf("expected a commit")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("commit = %+v, want %+v", got, tt.want)
			}
			if tr.Dragging() {
				t.Fatalf("expected tracker to be idle after release")
			}
		})
	}
}

func TestMoveSuppressesRedundantUpdates(t *testing.T) {
	var tr Tracker
	if tr.Move(4) {
		t.Fatalf("move while idle must not change state")
	}
	tr.Down(4, false)
	if tr.Move(4) {
		t.Fatalf("move onto the current end must not report a change")
	}
	if !tr.Move(6) {
		t.Fatalf("expected move to a new day to change the range")
	}
	if tr.Move(0) {
		t.Fatalf("move over a non-day target must be ignored")
	}
	r, ok := tr.Active()
	if !ok || r != (Range{From: 4, To: 6, Selected: true}) {
		t.Fatalf("range = %+v, %v", r, ok)
	}
}

func TestResetDiscards(t *testing.T) {
	var tr Tracker
	tr.Down(2, false)
	tr.Move(9)
	tr.Reset()
	if _, ok := tr.Up(); ok {
		t.Fatalf("expected no commit after reset")
	}
}

func TestEffective(t *testing.T) {
	r := &Range{From: 12, To: 10, Selected: false}
	tests := []struct {
		persisted bool
		rng       *Range
		day       int
		selected  bool
		pointed   bool
	}{
		{persisted: true, rng: nil, day: 11, selected: true, pointed: false},
		{persisted: true, rng: r, day: 11, selected: false, pointed: true},
		{persisted: false, rng: r, day: 10, selected: false, pointed: true},
		{persisted: true, rng: r, day: 13, selected: true, pointed: false},
		{persisted: false, rng: r, day: 9, selected: false, pointed: false},
	}
	for _, tt := range tests {
		selected, pointed := Effective(tt.persisted, tt.rng, tt.day)
		if selected != tt.selected || pointed != tt.pointed {
			t.Fatalf("Effective(%v, %+v, %d) = (%v, %v), want (%v, %v)",
				tt.persisted, tt.rng, tt.day, selected, pointed, tt.selected, tt.pointed)
		}
	}
}
