package core

import "github.com/yohamta/donburi/features/math"

// Size describes pixel dimensions of a window or display.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Half returns the offset from a corner to the center.
func (s Size) Half() math.Vec2 {
	return math.NewVec2(float64(s.W)/2, float64(s.H)/2)
}

// DefaultWindow is the size of the demo window.
var DefaultWindow = Size{W: 500, H: 500}

// DefaultReference is the display resolution the tracking space is normalized
// against.
var DefaultReference = Size{W: 1920, H: 1080}
