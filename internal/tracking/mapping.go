// Package tracking converts cursor samples into marker points and marker
// points into render translations.
package tracking

import (
	"image"

	"tracking/internal/core"
	"tracking/internal/input"

	"github.com/yohamta/donburi/features/math"
)

// Sample is one reading of the cursor and the window origin, both in absolute
// screen pixels.
type Sample struct {
	Cursor image.Point
	Window image.Point
}

// Read queries src. It reports false when the window has not been placed yet,
// in which case the tick should be skipped.
func Read(src input.Source) (Sample, bool) {
	win, ok := src.WindowPosition()
	if !ok {
		return Sample{}, false
	}
	return Sample{Cursor: src.Cursor(), Window: win}, true
}

// Mapping normalizes window-relative cursor positions. Window is the host
// window size, whose center is the zero point. Reference is the resolution the
// result is divided by.
type Mapping struct {
	Window    core.Size
	Reference core.Size
}

// DefaultMapping targets the 500x500 demo window on a 1920x1080 display.
func DefaultMapping() Mapping {
	return Mapping{Window: core.DefaultWindow, Reference: core.DefaultReference}
}

// Valid reports whether both sizes are usable.
func (m Mapping) Valid() bool { return m.Window.Valid() && m.Reference.Valid() }

// Point returns the normalized point for a marker with the given origin. Y is
// negated since screen Y grows downward.
func (m Mapping) Point(s Sample, origin math.Vec2) math.Vec2 {
	half := m.Window.Half()
	relX := float64(s.Cursor.X-s.Window.X) - half.X
	relY := float64(s.Cursor.Y-s.Window.Y) - half.Y
	return math.NewVec2(
		(relX+origin.X)/float64(m.Reference.W),
		-(relY+origin.Y)/float64(m.Reference.H),
	)
}
