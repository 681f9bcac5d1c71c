// Package vlist provides a declarative, children-based list API for
// virtualized terminal renderers.
//
// Callers describe items as [Item] values (a key, a [Size], and opaque
// content) mixed freely with other nodes. [Extract] keeps only the items,
// checks that each one has a key, and resolves every size to a concrete
// height. A [List] memoizes that work and publishes an immutable [Snapshot]
// whose [Snapshot.LayoutAt] answers "where is item i and how tall is it"
// without measuring anything on screen.
//
// Users import this single package; layout types are re-exported from
// internal/layout.
package vlist
