package factory

import (
	"github.com/automoto/vaultrush/archetypes"
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a bullet at pos flying along dir.
func CreateProjectile(ecs *ecs.ECS, pos, dir physics.Vec2, damage float64, critical bool) *donburi.Entry {
	b := archetypes.Projectile.Spawn(ecs)

	if dir == (physics.Vec2{}) {
		dir = physics.Vec2{X: 1, Y: 0}
	}
	dir = dir.Normalize()

	// Muzzle offset so the bullet clears the player's own hitbox
	start := pos.Add(dir.Scale(cfg.Player.Radius + cfg.Combat.ShotRadius + 2))

	body := physics.NewBody(start, physics.Circle{Radius: cfg.Combat.ShotRadius})
	body.Velocity = dir.Scale(cfg.Combat.ShotSpeed)
	// Bullets keep their speed: no floor friction, no gravity
	zero := 0.0
	body.Friction = &zero
	body.IgnoreGravity = true
	components.Body.SetValue(b, components.BodyData{Body: body})

	components.Projectile.SetValue(b, components.ProjectileData{
		Damage:   damage,
		Force:    cfg.Combat.ShotForce,
		Critical: critical,
	})
	components.AutoDestroy.SetValue(b, components.AutoDestroyData{
		FramesRemaining: cfg.Combat.ShotLifetime,
	})

	return b
}
