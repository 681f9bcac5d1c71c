package vlist

import "github.com/grindlemire/go-vlist/internal/layout"

// Snapshot is the published state of a List: the extracted descriptors and
// their layout table. A Snapshot never changes once published, so renderers
// can hold one for the duration of a frame.
type Snapshot struct {
	descs []Descriptor
	table *layout.Table
}

var emptySnapshot = &Snapshot{table: layout.Build(nil)}

func newSnapshot(descs []Descriptor) *Snapshot {
	return &Snapshot{
		descs: descs,
		table: layout.Build(Heights(descs)),
	}
}

// Len returns the number of items.
func (s *Snapshot) Len() int {
	return len(s.descs)
}

// LayoutAt returns the position and height of item index.
// Out-of-range indexes return an *IndexError.
func (s *Snapshot) LayoutAt(index int) (Slot, error) {
	return s.table.At(index)
}

// Items returns the {key, content} pairs in order.
func (s *Snapshot) Items() []Entry {
	out := make([]Entry, len(s.descs))
	for i, d := range s.descs {
		out[i] = Entry{Key: d.Key, Content: d.Content}
	}
	return out
}

// Descriptors returns a copy of the extracted descriptors.
func (s *Snapshot) Descriptors() []Descriptor {
	out := make([]Descriptor, len(s.descs))
	copy(out, s.descs)
	return out
}

// Keys returns item keys in order.
func (s *Snapshot) Keys() []string {
	out := make([]string, len(s.descs))
	for i, d := range s.descs {
		out[i] = d.Key
	}
	return out
}

// KeyAt returns the key of item index.
func (s *Snapshot) KeyAt(index int) (string, error) {
	if index < 0 || index >= len(s.descs) {
		return "", &IndexError{Index: index, Len: len(s.descs)}
	}
	return s.descs[index].Key, nil
}

// ContentAt returns the content of item index.
func (s *Snapshot) ContentAt(index int) (any, error) {
	if index < 0 || index >= len(s.descs) {
		return nil, &IndexError{Index: index, Len: len(s.descs)}
	}
	return s.descs[index].Content, nil
}

// Extent returns the total height of all items.
func (s *Snapshot) Extent() int {
	return s.table.Extent()
}

// Visible returns the half-open range of item indexes intersecting a
// viewport of the given height scrolled to offset.
func (s *Snapshot) Visible(offset, viewport int) (first, last int) {
	return s.table.Visible(offset, viewport)
}

// IndexAt returns the index of the item covering offset, or -1 if empty.
func (s *Snapshot) IndexAt(offset int) int {
	return s.table.IndexAt(offset)
}

// Table returns the layout table.
func (s *Snapshot) Table() *Table {
	return s.table
}
