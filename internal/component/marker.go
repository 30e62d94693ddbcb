package component

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MarkerData is a point driven by the cursor. Origin and range are fixed at
// construction; only Point changes afterwards.
type MarkerData struct {
	Point math.Vec2

	origin math.Vec2
	rng    float64
}

// NewMarker returns a marker at the zero point with the given offset and scale.
func NewMarker(origin math.Vec2, rng float64) MarkerData {
	return MarkerData{origin: origin, rng: rng}
}

// Origin is the offset added after scaling.
func (m MarkerData) Origin() math.Vec2 { return m.origin }

// Range is the factor Point is scaled by.
func (m MarkerData) Range() float64 { return m.rng }

// Position returns Point*Range + Origin.
func (m MarkerData) Position() math.Vec2 {
	return math.NewVec2(m.Point.X*m.rng+m.origin.X, m.Point.Y*m.rng+m.origin.Y)
}

var Marker = donburi.NewComponentType[MarkerData]()
