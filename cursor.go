package vgatext

// Cursor tracks the next write position on a console (0-based).
//
// Col ranges over [0, width]: the value width is a transient pending-wrap
// state that is resolved before the next visible write. Row grows without
// bound; once it reaches the surface height, writes are dropped.
type Cursor struct {
	Row int
	Col int
}
