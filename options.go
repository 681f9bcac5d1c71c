package vlist

import "go.uber.org/zap"

// Option configures a List.
type Option func(*List)

// WithLogger sets the logger for a single list, overriding the package
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(lst *List) {
		if l != nil {
			lst.logger = l
		}
	}
}

// WithDuplicateKeyWarnings makes every rebuild scan for duplicate keys and
// log a warning for each one. Duplicates are still accepted.
func WithDuplicateKeyWarnings() Option {
	return func(lst *List) {
		lst.warnDuplicates = true
	}
}

// WithChildren sets the initial children. New returns the extraction error,
// if any.
func WithChildren(children ...Node) Option {
	return func(lst *List) {
		lst.initial = children
	}
}
