package render

import (
	"tracking/internal/component"
	"tracking/internal/core"
)

// Rect is a screen-space rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Camera is an orthographic 2D camera centered on the viewport. World Y grows
// upward, one world unit is one pixel.
type Camera struct {
	Viewport core.Size
}

// ToScreen converts a world position into screen pixels.
func (c Camera) ToScreen(x, y float64) (float64, float64) {
	half := c.Viewport.Half()
	return half.X + x, half.Y - y
}

// SpriteRect returns the screen rectangle covered by a square sprite centered
// on t.
func (c Camera) SpriteRect(t component.TransformData) Rect {
	cx, cy := c.ToScreen(t.X, t.Y)
	return Rect{X: cx - t.ScaleX/2, Y: cy - t.ScaleY/2, W: t.ScaleX, H: t.ScaleY}
}
