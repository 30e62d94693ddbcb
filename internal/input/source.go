// Package input reports where the cursor and the host window sit on screen.
package input

import "image"

// Source is queried once per tracking tick. Positions are absolute screen
// pixels.
type Source interface {
	Cursor() image.Point
	// WindowPosition returns the top-left corner of the host window. ok is
	// false while the window has not been placed on screen.
	WindowPosition() (pos image.Point, ok bool)
}

// Fixed is a Source that reports values set by the caller. It backs tests and
// replays.
type Fixed struct {
	CursorPos image.Point
	WindowPos image.Point
	Placed    bool
}

// NewFixed returns a placed Fixed source.
func NewFixed(cursor, window image.Point) *Fixed {
	return &Fixed{CursorPos: cursor, WindowPos: window, Placed: true}
}

// Cursor returns CursorPos.
func (f *Fixed) Cursor() image.Point { return f.CursorPos }

// WindowPosition returns WindowPos when Placed is set.
func (f *Fixed) WindowPosition() (image.Point, bool) {
	if !f.Placed {
		return image.Point{}, false
	}
	return f.WindowPos, true
}

// MoveCursor sets the cursor position.
func (f *Fixed) MoveCursor(x, y int) { f.CursorPos = image.Pt(x, y) }
