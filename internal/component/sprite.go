package component

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is a solid colored square. Lower Order draws first.
type SpriteData struct {
	Color color.RGBA
	Order int
}

var Sprite = donburi.NewComponentType[SpriteData]()
