package factory

import (
	"github.com/automoto/vaultrush/archetypes"
	"github.com/automoto/vaultrush/components"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDoor spawns the body filling a wall gap. The rooms system
// decides whether it blocks or carries the player through.
func CreateDoor(ecs *ecs.ECS, dir dungeon.Direction, targetRoomID int, r physics.Rect) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	body := physics.NewBody(physics.Vec2{X: r.X, Y: r.Y}, physics.Rect{Width: r.Width, Height: r.Height})
	body.Active = false
	components.Body.SetValue(door, components.BodyData{Body: body})

	components.Door.SetValue(door, components.DoorData{
		Direction:    dir,
		TargetRoomID: targetRoomID,
	})

	return door
}
