package vlist

// Extract turns children into descriptors, in order.
//
// Nodes that are not items are dropped. Every item must carry a key; the
// first one that does not aborts the pass with a *ConfigurationError and a
// nil result. Keys are checked before any size is resolved, so a failed pass
// never invokes a Computed size. On success each Computed size is invoked
// exactly once.
func Extract(children []Node) ([]Descriptor, error) {
	items := collectItems(nil, children)

	for i, it := range items {
		if it.Key == "" {
			return nil, &ConfigurationError{
				Position: i,
				Err:      ErrMissingKey,
				Hint:     "every item needs a stable, non-empty key",
			}
		}
	}

	descs := make([]Descriptor, len(items))
	for i, it := range items {
		descs[i] = Descriptor{
			Key:     it.Key,
			Height:  it.Size.Resolve(),
			Content: it.Content,
		}
	}
	return descs, nil
}

// collectItems appends the items found in nodes to dst, flattening
// fragments depth-first.
func collectItems(dst []*Item, nodes []Node) []*Item {
	for _, n := range nodes {
		switch v := n.(type) {
		case Item:
			dst = append(dst, &v)
		case *Item:
			if v != nil {
				dst = append(dst, v)
			}
		case Fragment:
			dst = collectItems(dst, v)
		case []Node:
			dst = collectItems(dst, v)
		}
	}
	return dst
}

// Heights returns the resolved heights of descs, in order.
func Heights(descs []Descriptor) []int {
	heights := make([]int, len(descs))
	for i, d := range descs {
		heights[i] = d.Height
	}
	return heights
}

// DuplicateKeys returns every key used by more than one descriptor, mapped
// to the positions that use it. Extraction does not reject duplicates; this
// is for callers that want to enforce uniqueness themselves.
func DuplicateKeys(descs []Descriptor) map[string][]int {
	seen := make(map[string][]int, len(descs))
	for i, d := range descs {
		seen[d.Key] = append(seen[d.Key], i)
	}
	dups := make(map[string][]int)
	for key, positions := range seen {
		if len(positions) > 1 {
			dups[key] = positions
		}
	}
	return dups
}
