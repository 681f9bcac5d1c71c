package vlist

// Node is an opaque child of a list. Only Item and *Item nodes take part in
// layout; Fragment and []Node are flattened in place; anything else is
// ignored.
type Node = any

// Fragment groups nodes without adding a level to the list.
type Fragment []Node

// Item declares one list entry.
type Item struct {
	// Key identifies the item across rebuilds. It must be non-empty and
	// should be unique; the renderer recycles rows by key.
	Key string
	// Size is the item's height specification. The zero value is the
	// default height.
	Size Size
	// Content is whatever the renderer draws for this item.
	Content any
}

// NewItem returns an Item with the given key, size and content.
func NewItem(key string, size Size, content any) Item {
	return Item{Key: key, Size: size, Content: content}
}

// Descriptor is a validated item with its height resolved.
type Descriptor struct {
	Key     string
	Height  int
	Content any
}

// Entry is the {key, content} pair handed to a renderer for keying and
// drawing.
type Entry struct {
	Key     string
	Content any
}
