// Package input converts event-driven keyboard and mouse input into a
// polling model for fixed-tick game loops.
//
// Devices absorb raw toolkit events as they arrive (Press, Release, Move,
// Wheel) without blocking, and the game loop reads them back through query
// methods (IsPressed, JustPressed, Moved, ...). Once per tick, after all
// queries, the loop calls Sync to advance the frame boundary that edge
// queries compare against. Event ingestion is safe from any goroutine;
// Sync must come from the single loop goroutine.
package input

// Code identifies a key or mouse button. Codes come from the host toolkit
// (SDL scancodes for keys, SDL button numbers for mouse buttons) and are
// treated as opaque map keys: any value is accepted, and codes that were
// never pressed read as released.
type Code int

// Position is a mouse position normalized to the surface it was observed
// on. X and Y are fractions of the surface extent, with (0,0) the top-left
// corner and (1,1) the bottom-right. The zero value is the position
// reported before any mouse movement.
type Position struct {
	X, Y float32
}
