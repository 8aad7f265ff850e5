package systems

import (
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// critDamageMultiplier scales damage on critical hits; knockback crits
// are scaled inside the physics engine.
const critDamageMultiplier = 1.5

// UpdateCombat consumes the damage events queued by the swing, shot
// and contact checks: applies damage through shields, arms knockback,
// flags hitstun and sweeps the dead.
func UpdateCombat(ecs *ecs.ECS) {
	run := getRun(ecs)
	if run == nil {
		return
	}

	var processed []*donburi.Entry
	var dead []*donburi.Entry

	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		processed = append(processed, e)
		ev := components.DamageEvent.Get(e)

		if e.HasComponent(components.Player) {
			applyPlayerHit(ecs, run, e, ev)
			return
		}
		if e.HasComponent(components.Enemy) {
			if applyEnemyHit(ecs, run, e, ev) {
				dead = append(dead, e)
			}
		}
	})

	for _, e := range processed {
		if e.Valid() && e.HasComponent(components.DamageEvent) {
			e.RemoveComponent(components.DamageEvent)
		}
	}

	for _, e := range dead {
		killEnemy(ecs, run, e)
	}

	sweepPlayer(ecs)
}

func applyPlayerHit(ecs *ecs.ECS, run *components.RunData, e *donburi.Entry, ev *components.DamageEventData) {
	player := components.Player.Get(e)
	if player.InvulnFrames > 0 {
		return
	}

	amount := ev.Amount
	if player.Shield > 0 {
		absorbed := amount
		if absorbed > player.Shield {
			absorbed = player.Shield
		}
		player.Shield -= absorbed
		amount -= absorbed
	}

	health := components.Health.Get(e)
	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}
	player.InvulnFrames = cfg.Player.InvulnFrames

	knockback(run, components.Body.Get(e), ev)
	TriggerFlash(e, cfg.Combat.DamageFlashFrames, 1, 0.3, 0.3)
	TriggerScreenShake(ecs, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
}

// applyEnemyHit returns true when the hit was lethal.
func applyEnemyHit(ecs *ecs.ECS, run *components.RunData, e *donburi.Entry, ev *components.DamageEventData) bool {
	enemy := components.Enemy.Get(e)
	if enemy.InvulnFrames > 0 {
		return false
	}

	amount := ev.Amount
	if ev.Critical {
		amount *= critDamageMultiplier
	}

	health := components.Health.Get(e)
	health.Current -= amount
	enemy.InvulnFrames = enemy.TypeConfig.InvulnFrames

	if health.Current <= 0 {
		health.Current = 0
		return true
	}

	knockback(run, components.Body.Get(e), ev)
	setState(components.State.Get(e), cfg.StateHit)
	TriggerFlash(e, cfg.Combat.HitFlashFrames, 1, 1, 1)
	return false
}

func knockback(run *components.RunData, body *components.BodyData, ev *components.DamageEventData) {
	dir := body.Position.Sub(ev.Origin)
	run.World.ApplyForce(body.Body,
		physics.Force{X: dir.X, Y: dir.Y, Duration: cfg.Combat.MeleeDuration},
		&physics.Attacker{Speed: ev.Force, Critical: ev.Critical},
	)
}

func killEnemy(ecs *ecs.ECS, run *components.RunData, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)

	if enemy.TypeName == dungeon.EnemyBoss {
		run.BossDefeated = true
		TriggerScreenShake(ecs, cfg.ScreenShake.BossChargeIntensity, cfg.ScreenShake.BossChargeDuration*2)
	}

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		components.Player.Get(playerEntry).Kills++
	}

	e.Remove()
}

// sweepPlayer removes the player once health hits zero; the scene
// notices the empty world and flips to the game over screen.
func sweepPlayer(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	health := components.Health.Get(playerEntry)
	if health.Current <= 0 {
		playerEntry.Remove()
	}
}

// queueDamage attaches a damage event to an entity, merging with any
// event already queued this frame.
func queueDamage(e *donburi.Entry, ev components.DamageEventData) {
	if e.HasComponent(components.DamageEvent) {
		queued := components.DamageEvent.Get(e)
		queued.Amount += ev.Amount
		queued.Origin = ev.Origin
		queued.Force = max(queued.Force, ev.Force)
		queued.Critical = queued.Critical || ev.Critical
		return
	}
	e.AddComponent(components.DamageEvent)
	components.DamageEvent.Set(e, &ev)
}
