// Package layout implements the layout table behind a virtualized list.
//
// A [Size] describes how tall an item is: a fixed number of rows, a function
// computing it once, or the default. [Build] turns the resolved heights into
// a [Table] of heights and cumulative offsets in a single pass, after which
// [Table.At] answers position lookups in constant time without measuring
// anything on screen. Types are re-exported through the root vlist package.
package layout
