package vlist

import (
	"maps"
	"slices"
	"sync/atomic"

	"go.uber.org/zap"
)

// List turns declared children into a published Snapshot.
//
// SetChildren and Invalidate must be called from a single goroutine (the
// one driving the UI). Snapshot, LayoutAt and Len may be called from any
// goroutine: a rebuild completes before its Snapshot is swapped in, so
// readers only ever see a whole table.
type List struct {
	snap atomic.Pointer[Snapshot]

	// memo identifies the children slice the current snapshot was built
	// from. Only the writer goroutine touches it.
	memo     inputKey
	memoized bool

	logger         *zap.Logger
	warnDuplicates bool
	initial        []Node
}

// inputKey is the identity of a children slice: its backing array and
// length. Two calls with the same slice value share a key.
type inputKey struct {
	data *Node
	n    int
}

func keyOf(children []Node) inputKey {
	if len(children) == 0 {
		return inputKey{}
	}
	return inputKey{data: &children[0], n: len(children)}
}

// New creates a List with an empty snapshot and applies opts.
func New(opts ...Option) (*List, error) {
	l := &List{logger: Logger()}
	for _, opt := range opts {
		opt(l)
	}
	l.snap.Store(emptySnapshot)

	if l.initial != nil {
		children := l.initial
		l.initial = nil
		if err := l.SetChildren(children); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// SetChildren replaces the list's children.
//
// Passing the same slice as the previous successful call is a no-op: no
// extraction runs and no Computed size is invoked. Any other slice is
// extracted and laid out from scratch, then published as a new Snapshot.
// On error the previous Snapshot stays published.
func (l *List) SetChildren(children []Node) error {
	key := keyOf(children)
	if l.memoized && key == l.memo {
		return nil
	}

	descs, err := Extract(children)
	if err != nil {
		l.logger.Debug("extract failed, keeping previous snapshot", zap.Error(err))
		return err
	}

	snap := newSnapshot(descs)
	if l.warnDuplicates {
		l.reportDuplicates(descs)
	}
	l.reportNegativeHeights(descs)

	l.snap.Store(snap)
	l.memo = key
	l.memoized = true

	l.logger.Debug("layout rebuilt",
		zap.Int("children", len(children)),
		zap.Int("items", snap.Len()),
		zap.Int("extent", snap.Extent()),
	)
	return nil
}

// Invalidate forgets which slice the current snapshot came from, so the
// next SetChildren rebuilds even if given the same slice. Use it after
// mutating a children slice in place.
func (l *List) Invalidate() {
	l.memo = inputKey{}
	l.memoized = false
}

// Snapshot returns the currently published snapshot.
func (l *List) Snapshot() *Snapshot {
	return l.snap.Load()
}

// Len returns the number of items in the current snapshot.
func (l *List) Len() int {
	return l.Snapshot().Len()
}

// LayoutAt returns the layout of item index in the current snapshot.
func (l *List) LayoutAt(index int) (Slot, error) {
	return l.Snapshot().LayoutAt(index)
}

func (l *List) reportDuplicates(descs []Descriptor) {
	dups := DuplicateKeys(descs)
	for _, key := range slices.Sorted(maps.Keys(dups)) {
		l.logger.Warn("duplicate item key",
			zap.String("key", key),
			zap.Ints("positions", dups[key]),
		)
	}
}

func (l *List) reportNegativeHeights(descs []Descriptor) {
	for i, d := range descs {
		if d.Height < 0 {
			l.logger.Debug("negative item height",
				zap.String("key", d.Key),
				zap.Int("position", i),
				zap.Int("height", d.Height),
			)
		}
	}
}
