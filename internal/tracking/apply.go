package tracking

import "tracking/internal/component"

// Apply writes the marker's position into the transform translation. Scale,
// depth and rotation are left alone.
func Apply(m component.MarkerData, t *component.TransformData) {
	pos := m.Position()
	t.X = pos.X
	t.Y = pos.Y
}
