package factory

import (
	"github.com/automoto/vaultrush/archetypes"
	"github.com/automoto/vaultrush/components"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns one border wall segment.
func CreateWall(ecs *ecs.ECS, r physics.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	body := physics.NewBody(physics.Vec2{X: r.X, Y: r.Y}, physics.Rect{Width: r.Width, Height: r.Height})
	body.Active = false
	components.Body.SetValue(wall, components.BodyData{Body: body})

	return wall
}

// CreateObstacle spawns one interior block from a generator record.
func CreateObstacle(ecs *ecs.ECS, ob dungeon.Obstacle) *donburi.Entry {
	e := archetypes.Obstacle.Spawn(ecs)

	body := physics.NewBody(physics.Vec2{X: ob.X, Y: ob.Y}, physics.Rect{Width: ob.Width, Height: ob.Height})
	body.Active = false
	components.Body.SetValue(e, components.BodyData{Body: body})

	return e
}
