package selection

// Days is an immutable set of day-of-month numbers (1..31) that remembers
// insertion order. A nil *Days is the empty set.
type Days struct {
	order []int
	mask  uint32
}

// NewDays builds a set from days in the given order. Duplicates and values
// outside 1..31 are dropped.
func NewDays(days ...int) *Days {
	return (*Days)(nil).with(days, true)
}

// Len returns the number of days in the set.
func (d *Days) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// Has reports whether day is in the set.
func (d *Days) Has(day int) bool {
	if d == nil || !validDay(day) {
		return false
	}
	return d.mask&(1<<uint(day)) != 0
}

// Slice returns the days in insertion order. The result is a copy.
func (d *Days) Slice() []int {
	if d == nil {
		return nil
	}
	return append([]int(nil), d.order...)
}

// Sorted returns the days in ascending order.
func (d *Days) Sorted() []int {
	if d == nil {
		return nil
	}
	out := make([]int, 0, len(d.order))
	for day := 1; day <= 31; day++ {
		if d.mask&(1<<uint(day)) != 0 {
			out = append(out, day)
		}
	}
	return out
}

// Equal reports whether both sets hold the same days, ignoring order.
func (d *Days) Equal(o *Days) bool {
	if d.Len() != o.Len() {
		return false
	}
	if d == nil || o == nil {
		return true
	}
	return d.mask == o.mask
}

// with returns the set after adding or removing days. The receiver is
// returned unchanged when no day alters membership.
func (d *Days) with(days []int, selected bool) *Days {
	var mask uint32
	if d != nil {
		mask = d.mask
	}
	next := mask
	var added []int
	for _, day := range days {
		if !validDay(day) {
			continue
		}
		bit := uint32(1) << uint(day)
		if selected {
			if next&bit == 0 {
				added = append(added, day)
			}
			next |= bit
		} else {
			next &^= bit
		}
	}
	if next == mask {
		return d
	}

	out := &Days{mask: next}
	if d != nil {
		out.order = make([]int, 0, len(d.order)+len(added))
		for _, day := range d.order {
			if next&(1<<uint(day)) != 0 {
				out.order = append(out.order, day)
			}
		}
	}
	out.order = append(out.order, added...)
	return out
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}
