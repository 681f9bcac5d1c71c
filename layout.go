// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package vlist

import "github.com/grindlemire/go-vlist/internal/layout"

// DefaultHeight is the height in rows of an item that declares no size.
const DefaultHeight = layout.DefaultHeight

// Size is the height specification of a list item.
type Size = layout.Size

// Unit specifies how a Size is interpreted.
type Unit = layout.Unit

const (
	UnitDefault  = layout.UnitDefault
	UnitFixed    = layout.UnitFixed
	UnitComputed = layout.UnitComputed
)

// Slot is the layout of a single item: {Length, Offset, Index}.
type Slot = layout.Slot

// Table is an immutable table of item heights and cumulative offsets.
type Table = layout.Table

// IndexError reports a layout lookup outside the table.
type IndexError = layout.IndexError

// Fixed returns a Size of exactly n rows.
func Fixed(n int) Size { return layout.Fixed(n) }

// Computed returns a Size whose height is produced once by fn.
func Computed(fn func() int) Size { return layout.Computed(fn) }

// DefaultSize returns a Size that resolves to DefaultHeight.
func DefaultSize() Size { return layout.Default() }

// BuildTable computes a layout table from resolved heights.
func BuildTable(heights []int) *Table { return layout.Build(heights) }
