package archetypes

import (
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Health,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Health,
		components.State,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
		components.AutoDestroy,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Body,
		components.Tween,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Body,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Body,
	)
	Hatch = newArchetype(
		tags.Hatch,
		components.Hatch,
		components.Body,
		components.Tween,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Run = newArchetype(
		components.Run,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
