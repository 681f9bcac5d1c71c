package layout

import "sort"

// Slot is the position of one item along the scroll axis: the shape a
// renderer's skip-measurement fast path expects from a layout lookup.
type Slot struct {
	// Length is the item's height in rows.
	Length int
	// Offset is the distance from the top of the content to the item.
	Offset int
	// Index is the item's position in the list.
	Index int
}

// End returns the offset just past the item.
func (s Slot) End() int {
	return s.Offset + s.Length
}

// Table holds per-item heights and cumulative offsets.
// A Table is never modified after Build returns it.
type Table struct {
	heights []int
	offsets []int
	extent  int
	// monotonic is false when a negative height made offsets decrease,
	// in which case searches fall back to a linear scan.
	monotonic bool
}

// Build computes a Table from heights in one left-to-right pass.
// The heights slice is copied; the caller may reuse it.
func Build(heights []int) *Table {
	t := &Table{
		heights:   make([]int, len(heights)),
		offsets:   make([]int, len(heights)),
		monotonic: true,
	}
	copy(t.heights, heights)

	running := 0
	for i, h := range t.heights {
		t.offsets[i] = running
		running += h
		if h < 0 {
			t.monotonic = false
		}
	}
	t.extent = running
	return t
}

// Len returns the number of items in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.heights)
}

// At returns the layout of the item at index.
// An index outside [0, Len()) always yields an *IndexError.
func (t *Table) At(index int) (Slot, error) {
	if index < 0 || index >= t.Len() {
		return Slot{}, &IndexError{Index: index, Len: t.Len()}
	}
	return Slot{
		Length: t.heights[index],
		Offset: t.offsets[index],
		Index:  index,
	}, nil
}

// Heights returns a copy of the per-item heights.
func (t *Table) Heights() []int {
	out := make([]int, t.Len())
	if t != nil {
		copy(out, t.heights)
	}
	return out
}

// Offsets returns a copy of the per-item start offsets.
func (t *Table) Offsets() []int {
	out := make([]int, t.Len())
	if t != nil {
		copy(out, t.offsets)
	}
	return out
}

// Extent returns the total content height, the sum of every item's height.
func (t *Table) Extent() int {
	if t == nil {
		return 0
	}
	return t.extent
}

// Equal reports whether two tables hold identical heights and offsets.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	for i := 0; i < t.Len(); i++ {
		if t.heights[i] != other.heights[i] || t.offsets[i] != other.offsets[i] {
			return false
		}
	}
	return true
}

// IndexAt returns the index of the item covering the given scroll offset.
// Offsets before the content map to the first item and offsets past it to
// the last. Returns -1 for an empty table.
func (t *Table) IndexAt(offset int) int {
	n := t.Len()
	if n == 0 {
		return -1
	}
	i := t.firstEndingAfter(offset)
	if i >= n {
		return n - 1
	}
	return i
}

// Visible returns the half-open range [first, last) of items that intersect
// the viewport starting at offset and spanning viewport rows.
// Zero-height items on the top edge are not visible. The range is empty
// (first == last) when nothing intersects.
func (t *Table) Visible(offset, viewport int) (first, last int) {
	n := t.Len()
	if n == 0 || viewport <= 0 {
		return 0, 0
	}
	bottom := offset + viewport

	if !t.monotonic {
		return t.scanVisible(offset, bottom)
	}

	first = t.firstEndingAfter(offset)
	last = sort.Search(n, func(i int) bool {
		return t.offsets[i] >= bottom
	})
	if last < first {
		last = first
	}
	return first, last
}

func (t *Table) firstEndingAfter(offset int) int {
	n := len(t.heights)
	if !t.monotonic {
		for i := 0; i < n; i++ {
			if t.offsets[i]+t.heights[i] > offset {
				return i
			}
		}
		return n
	}
	return sort.Search(n, func(i int) bool {
		return t.offsets[i]+t.heights[i] > offset
	})
}

// scanVisible is the linear fallback for tables with negative heights.
// Items with negative height have no area and never intersect.
func (t *Table) scanVisible(offset, bottom int) (first, last int) {
	first, last = -1, -1
	for i := range t.heights {
		start, end := t.offsets[i], t.offsets[i]+t.heights[i]
		if start < bottom && end > offset {
			if first < 0 {
				first = i
			}
			last = i + 1
		}
	}
	if first < 0 {
		return 0, 0
	}
	return first, last
}
