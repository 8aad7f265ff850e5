package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type ItemData struct {
	Type      string // "health", "ammo", "speed", "damage", "shield"
	Effect    float64
	Radius    float64
	Color     color.RGBA
	BobOffset float64 // vertical draw offset driven by the item's tween

	// Source room and slot, used to remember pickups across room changes
	RoomID int
	Index  int
}

var Item = donburi.NewComponentType[ItemData]()
