//go:build ebiten

package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Ebiten reads the cursor and window from the running game. Ebitengine reports
// the cursor relative to the window, so the absolute position is rebuilt from
// the window origin.
type Ebiten struct{}

// NewEbiten returns a Source backed by Ebitengine.
func NewEbiten() *Ebiten { return &Ebiten{} }

// Cursor returns the absolute cursor position.
func (e *Ebiten) Cursor() image.Point {
	wx, wy := ebiten.WindowPosition()
	cx, cy := ebiten.CursorPosition()
	return image.Pt(wx+cx, wy+cy)
}

// WindowPosition reports the window origin. The window counts as unplaced until
// Ebitengine reports a positive window size.
func (e *Ebiten) WindowPosition() (image.Point, bool) {
	if w, h := ebiten.WindowSize(); w <= 0 || h <= 0 {
		return image.Point{}, false
	}
	x, y := ebiten.WindowPosition()
	return image.Pt(x, y), true
}
