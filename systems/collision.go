package systems

import (
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable entry slices to avoid per-frame allocations
var (
	staticEntries []*donburi.Entry
	enemyEntries  []*donburi.Entry
)

// UpdateCollisions runs the pairwise collision pass: mobiles against
// room geometry, enemies against each other, contact damage against
// the player, and projectile hits. Runs after UpdateMovement so it
// sees post-integration positions.
func UpdateCollisions(ecs *ecs.ECS) {
	run := getRun(ecs)
	if run == nil {
		return
	}
	w := run.World

	staticEntries = staticEntries[:0]
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		staticEntries = append(staticEntries, e)
	})
	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		staticEntries = append(staticEntries, e)
	})

	enemyEntries = enemyEntries[:0]
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemyEntries = append(enemyEntries, e)
	})

	playerEntry, hasPlayer := tags.Player.First(ecs.World)

	// Mobiles against room geometry
	if hasPlayer {
		resolveAgainstStatics(w, components.Body.Get(playerEntry))
	}
	for _, e := range enemyEntries {
		resolveAgainstStatics(w, components.Body.Get(e))
	}

	// Enemies shoulder each other out of the way
	for i := 0; i < len(enemyEntries); i++ {
		a := components.Body.Get(enemyEntries[i])
		for j := i + 1; j < len(enemyEntries); j++ {
			b := components.Body.Get(enemyEntries[j])
			if w.CheckBodies(a.Body, b.Body) {
				w.Resolve(a.Body, b.Body)
			}
		}
	}

	// Contact damage
	if hasPlayer {
		playerBody := components.Body.Get(playerEntry)
		for _, e := range enemyEntries {
			enemy := components.Enemy.Get(e)
			enemyBody := components.Body.Get(e)
			if !w.CheckBodies(playerBody.Body, enemyBody.Body) {
				continue
			}
			tc := enemy.TypeConfig
			queueDamage(playerEntry, components.DamageEventData{
				Amount: tc.ContactDamage,
				Origin: enemyBody.Position,
				Force:  tc.ContactKnockback,
			})
			w.Resolve(playerBody.Body, enemyBody.Body)
		}
	}

	updateProjectiles(ecs, run)
}

func resolveAgainstStatics(w *physics.World, body *components.BodyData) {
	for _, e := range staticEntries {
		static := components.Body.Get(e)
		if w.CheckBodies(body.Body, static.Body) {
			w.Resolve(body.Body, static.Body)
		}
	}
}

// updateProjectiles despawns bullets on geometry and queues damage on
// the enemies they strike.
func updateProjectiles(ecs *ecs.ECS, run *components.RunData) {
	w := run.World
	var toRemove []*donburi.Entry

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		proj := components.Projectile.Get(e)

		for _, s := range staticEntries {
			if w.CheckBodies(body.Body, components.Body.Get(s).Body) {
				toRemove = append(toRemove, e)
				return
			}
		}

		for _, enemyEntry := range enemyEntries {
			enemyBody := components.Body.Get(enemyEntry)
			if !w.CheckBodies(body.Body, enemyBody.Body) {
				continue
			}
			queueDamage(enemyEntry, components.DamageEventData{
				Amount:   proj.Damage,
				Origin:   body.Position,
				Force:    cfg.Combat.ShotForce,
				Critical: proj.Critical,
			})
			toRemove = append(toRemove, e)
			return
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
