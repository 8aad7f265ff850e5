package systems

import (
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/systems/factory"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer handles movement, dashing, melee swings and shooting.
// Must run AFTER UpdateInput and BEFORE UpdateMovement.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	input := getOrCreateInput(ecs)

	tickTimers(player)

	moveDir := readMoveDir(input)
	if moveDir != (physics.Vec2{}) {
		player.Facing = moveDir
	}

	// The dash carries the body; steering resumes when it ends.
	// Attacks stay live mid-dash, and land critical while it holds.
	if !isDashing(body) {
		if GetAction(input, cfg.ActionDash).JustPressed && player.DashCooldown <= 0 {
			startDash(player, body)
		}
		accelerate(body, moveDir, speedCap(player))
	}

	if GetAction(input, cfg.ActionAttack).JustPressed && player.AttackCooldown <= 0 {
		meleeSwing(ecs, playerEntry, player, body)
	}

	if GetAction(input, cfg.ActionShoot).JustPressed && player.ShotCooldown <= 0 &&
		player.Ammo >= cfg.Combat.ShotAmmoCost {
		player.Ammo -= cfg.Combat.ShotAmmoCost
		player.ShotCooldown = cfg.Combat.ShotCooldown
		factory.CreateProjectile(ecs, body.Position, player.Facing, shotDamage(player), isDashing(body))
	}
}

func tickTimers(player *components.PlayerData) {
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.AttackCooldown > 0 {
		player.AttackCooldown--
	}
	if player.ShotCooldown > 0 {
		player.ShotCooldown--
	}
	if player.DashCooldown > 0 {
		player.DashCooldown--
	}
	if player.SpeedBoostFrames > 0 {
		player.SpeedBoostFrames--
		if player.SpeedBoostFrames == 0 {
			player.SpeedBoostScale = 0
		}
	}
	if player.DamageBoostFrames > 0 {
		player.DamageBoostFrames--
		if player.DamageBoostFrames == 0 {
			player.DamageBoostScale = 0
		}
	}
}

func readMoveDir(input *components.InputData) physics.Vec2 {
	var dir physics.Vec2
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dir.X -= 1
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dir.X += 1
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dir.Y -= 1
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dir.Y += 1
	}
	return dir.Normalize()
}

// accelerate steers the body toward dir. Friction is left to the
// movement system, so releasing the stick glides to a stop and ice or
// mud patches change the feel without any extra code here.
func accelerate(body *components.BodyData, dir physics.Vec2, maxSpeed float64) {
	if dir == (physics.Vec2{}) {
		return
	}
	body.Velocity = body.Velocity.Add(dir.Scale(cfg.Player.Acceleration * tickDelta))
	if body.Velocity.Length() > maxSpeed {
		body.Velocity = body.Velocity.Normalize().Scale(maxSpeed)
	}
}

func speedCap(player *components.PlayerData) float64 {
	max := cfg.Player.MaxSpeed
	if player.SpeedBoostFrames > 0 && player.SpeedBoostScale > 0 {
		max *= player.SpeedBoostScale
	}
	return max
}

func shotDamage(player *components.PlayerData) float64 {
	dmg := cfg.Combat.ShotDamage
	if player.DamageBoostFrames > 0 && player.DamageBoostScale > 0 {
		dmg *= player.DamageBoostScale
	}
	return dmg
}

func meleeDamage(player *components.PlayerData) float64 {
	dmg := cfg.Combat.MeleeDamage
	if player.DamageBoostFrames > 0 && player.DamageBoostScale > 0 {
		dmg *= player.DamageBoostScale
	}
	return dmg
}

func startDash(player *components.PlayerData, body *components.BodyData) {
	player.DashCooldown = cfg.Player.DashCooldown
	if player.InvulnFrames < cfg.Player.DashHitstop {
		player.InvulnFrames = cfg.Player.DashHitstop
	}
	body.Dash = &physics.DashState{
		Active:    true,
		Timer:     cfg.Player.DashDuration,
		Direction: player.Facing,
		Speed:     cfg.Player.DashSpeed,
		MaxTrail:  cfg.Player.DashTrail,
	}
}

func isDashing(body *components.BodyData) bool {
	return body.Dash != nil && body.Dash.Active
}

// meleeSwing checks a circle in front of the player against every
// enemy in the room and queues a damage event per enemy caught in it.
func meleeSwing(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData, body *components.BodyData) {
	player.AttackCooldown = cfg.Combat.MeleeCooldown

	center := body.Position.Add(player.Facing.Scale(cfg.Combat.MeleeReach))
	swing := physics.Circle{X: center.X, Y: center.Y, Radius: cfg.Combat.MeleeRadius}
	crit := cfg.Player.DashCritBonus && isDashing(body)

	hitAny := false
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemyBody := components.Body.Get(e)
		shape := enemyBody.CollisionShape()
		if shape == nil || !physics.Check(swing, shape) {
			return
		}
		hitAny = true
		queueDamage(e, components.DamageEventData{
			Amount:   meleeDamage(player),
			Origin:   body.Position,
			Force:    cfg.Combat.MeleeForce,
			Critical: crit,
		})
	})

	if hitAny {
		TriggerScreenShake(ecs, cfg.ScreenShake.MeleeIntensity, cfg.ScreenShake.MeleeDuration)
		TriggerFlash(playerEntry, cfg.Combat.HitFlashFrames, 1, 1, 1)
	}
}
