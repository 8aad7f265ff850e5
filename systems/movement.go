package systems

import (
	"github.com/automoto/vaultrush/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDelta is the fixed simulation step; ebiten ticks at 60 TPS.
const tickDelta = 1.0 / 60.0

// UpdateMovement applies environment areas and integrates every body.
// Runs after the control systems have set velocities and before
// collision resolution.
func UpdateMovement(ecs *ecs.ECS) {
	run := getRun(ecs)
	if run == nil {
		return
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		// Static geometry (walls, obstacles, pickups) sits out
		if !body.Active {
			return
		}
		// Bullets fly over floor patches; their friction override stays
		if !e.HasComponent(components.Projectile) {
			run.World.ApplyAreaEffects(body.Body)
		}
		run.World.Move(body.Body, tickDelta)
	})
}
