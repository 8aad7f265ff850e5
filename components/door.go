package components

import (
	"github.com/automoto/vaultrush/dungeon"
	"github.com/yohamta/donburi"
)

type DoorData struct {
	Direction    dungeon.Direction
	TargetRoomID int
}

var Door = donburi.NewComponentType[DoorData]()
