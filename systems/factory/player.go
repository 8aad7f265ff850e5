package factory

import (
	"github.com/automoto/vaultrush/archetypes"
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := physics.NewBody(physics.Vec2{X: x, Y: y}, physics.Circle{Radius: cfg.Player.Radius})
	body.Mass = cfg.Player.Mass
	body.KnockbackResistance = cfg.Player.KnockbackResistance
	body.MaxKnockbackSpeed = cfg.Player.MaxKnockbackSpeed
	body.Knockback = &physics.KnockbackState{}
	components.Body.SetValue(player, components.BodyData{Body: body})

	components.Player.SetValue(player, components.PlayerData{
		Facing:  physics.Vec2{X: 1, Y: 0},
		Ammo:    cfg.Player.MaxAmmo,
		MaxAmmo: cfg.Player.MaxAmmo,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(player, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})

	return player
}
