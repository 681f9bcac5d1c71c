package vlist

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMissingKey is matched by a ConfigurationError raised for an item
// without a key.
var ErrMissingKey = errors.New("missing key")

// ConfigurationError is a structural problem in the declared items that
// aborts extraction. No partial result accompanies it.
type ConfigurationError struct {
	// Position is the index of the offending item among recognized items.
	Position int
	Err      error
	Hint     string // optional suggestion for fixing the error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	var sb strings.Builder
	sb.WriteString("vlist: item ")
	sb.WriteString(strconv.Itoa(e.Position))
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
