package layout

import "fmt"

// IndexError reports a layout lookup outside [0, Len).
// It is always a programming error in the caller.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("layout index %d out of range (table is empty)", e.Index)
	}
	return fmt.Sprintf("layout index %d out of range [0, %d)", e.Index, e.Len)
}
