// Package layout paginates labelled text blocks onto fixed-size pages.
//
// The Engine is a pure function of (State, Block) to (State, []Op): it
// word-wraps a block to the printable width, breaks to a new page before a
// block that would cross the bottom margin, and flows paragraphs taller than a
// page line by line onto the following pages. Words are never split. Callers
// own the accumulated render ops; Builder is the usual accumulator used by the
// document producers.
//
// Lengths are millimetres and font sizes are points. Line height is
// fontSize × Geometry.LineHeightRatio. Wrapped lines are memoised in a
// bounded LRU cache, which does not affect results.
package layout
