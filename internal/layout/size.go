package layout

// DefaultHeight is the height in rows of an item that declares no size.
const DefaultHeight = 50

// Unit specifies how a Size is interpreted.
type Unit uint8

const (
	UnitDefault  Unit = iota // Falls back to DefaultHeight
	UnitFixed                // Literal number of rows
	UnitComputed             // Produced by a zero-argument function
)

// Size is the height specification of a single list item.
// The zero value is the default size.
type Size struct {
	Amount int
	Func   func() int
	Unit   Unit
}

// Default returns a Size that resolves to DefaultHeight.
func Default() Size {
	return Size{Unit: UnitDefault}
}

// Fixed returns a Size of exactly n rows. Negative values are kept as-is.
func Fixed(n int) Size {
	return Size{Amount: n, Unit: UnitFixed}
}

// Computed returns a Size whose height is produced by fn.
// fn must be free of side effects; it runs once per extraction pass.
func Computed(fn func() int) Size {
	return Size{Func: fn, Unit: UnitComputed}
}

// Resolve computes the concrete height. For UnitComputed the function is
// invoked exactly once per call; a nil function resolves like UnitDefault.
func (s Size) Resolve() int {
	switch s.Unit {
	case UnitFixed:
		return s.Amount
	case UnitComputed:
		if s.Func == nil {
			return DefaultHeight
		}
		return s.Func()
	default:
		return DefaultHeight
	}
}

// IsDefault returns true if this size falls back to DefaultHeight.
func (s Size) IsDefault() bool {
	return s.Unit == UnitDefault || (s.Unit == UnitComputed && s.Func == nil)
}

func (u Unit) String() string {
	switch u {
	case UnitDefault:
		return "default"
	case UnitFixed:
		return "fixed"
	case UnitComputed:
		return "computed"
	default:
		return "unknown"
	}
}
