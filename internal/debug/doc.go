// Package debug provides optional file-based debug logging.
//
// When the VLIST_DEBUG environment variable (or an explicit path) names a
// file, [NewLogger] returns a zap logger that appends to it. Otherwise
// logging is a no-op.
package debug
