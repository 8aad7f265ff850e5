package components

import "github.com/yohamta/donburi"

// HatchData drives the descent hatch's pulse animation.
type HatchData struct {
	Pulse float64 // draw scale offset fed by the hatch's tween
}

var Hatch = donburi.NewComponentType[HatchData]()
