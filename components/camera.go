package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position  math.Vec2
	LookAhead math.Vec2 // Current smoothed offset along the player's facing
}

var Camera = donburi.NewComponentType[CameraData]()
