package component

import "github.com/yohamta/donburi"

// TransformData places a sprite in world space. World space is centered on the
// window with Y growing upward.
type TransformData struct {
	X, Y, Z                float64
	ScaleX, ScaleY, ScaleZ float64
	Rotation               float64
}

var Transform = donburi.NewComponentType[TransformData]()
