package systems

import (
	"math/rand"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	patrolLegLength   = 60.0 // half-side of the patrol square around home
	wanderRadius      = 90.0
	flankCloseRange   = 100.0 // inside this a flanker stops offsetting and commits
	recoverFrames     = 45
	waypointTolerance = 8.0
)

func UpdateEnemies(ecs *ecs.ECS) {
	run := getRun(ecs)
	if run == nil {
		return
	}

	// Get player position for AI decisions
	var playerPos *physics.Vec2
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		pos := components.Body.Get(playerEntry).Position
		playerPos = &pos
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.InvulnFrames > 0 {
			enemy.InvulnFrames--
		}
		if enemy.ChargeCooldown > 0 {
			enemy.ChargeCooldown--
		}

		body := components.Body.Get(e)

		// Hitstun owns the body while knockback plays out
		if kb := body.Knockback; kb != nil && kb.Active {
			return
		}

		updateEnemyAI(ecs, e, enemy, body, run, playerPos)
	})
}

func updateEnemyAI(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, body *components.BodyData, run *components.RunData, playerPos *physics.Vec2) {
	state := components.State.Get(e)
	state.StateTimer++

	// No AI without a player to hunt
	if playerPos == nil {
		steer(body, physics.Vec2{}, 0)
		return
	}

	dist := physics.Distance(body.Position, *playerPos)

	switch state.CurrentState {
	case cfg.StateNone:
		// Freshly spawned, pick the type's opening state
		setState(state, initialEnemyState(enemy.TypeName))
	case cfg.StateIdle:
		handleIdleState(enemy, body, state, run, *playerPos, dist)
	case cfg.StatePatrol:
		handlePatrolState(enemy, body, state, run, *playerPos, dist)
	case cfg.StateLurk:
		handleLurkState(enemy, body, state, *playerPos, dist)
	case cfg.StateChase:
		handleChaseState(ecs, e, enemy, body, state, run, *playerPos, dist)
	case cfg.StateCharge:
		handleChargeState(body, state)
	case cfg.StateRecover:
		if state.StateTimer > recoverFrames {
			setState(state, cfg.StateChase)
		}
	case cfg.StateHit:
		if state.StateTimer > enemy.TypeConfig.HitstunFrames {
			enemy.Woken = true
			setState(state, cfg.StateChase)
		}
	}
}

func handleIdleState(enemy *components.EnemyData, body *components.BodyData, state *components.StateData, run *components.RunData, playerPos physics.Vec2, dist float64) {
	if wakes(enemy, run, body.Position, playerPos, dist) {
		enemy.Woken = true
		setState(state, cfg.StateChase)
		return
	}

	// Drift between random points near home
	enemy.WanderTimer--
	if enemy.WanderTimer <= 0 || physics.Distance(body.Position, enemy.WanderTarget) < waypointTolerance {
		enemy.WanderTimer = cfg.Enemy.WanderInterval
		enemy.WanderTarget = physics.Vec2{
			X: enemy.Home.X + (rand.Float64()*2-1)*wanderRadius,
			Y: enemy.Home.Y + (rand.Float64()*2-1)*wanderRadius,
		}
	}
	seek(body, enemy, enemy.WanderTarget, enemy.TypeConfig.Speed*cfg.Enemy.WanderSpeedScale)
}

func handlePatrolState(enemy *components.EnemyData, body *components.BodyData, state *components.StateData, run *components.RunData, playerPos physics.Vec2, dist float64) {
	if wakes(enemy, run, body.Position, playerPos, dist) {
		enemy.Woken = true
		setState(state, cfg.StateChase)
		return
	}

	target := patrolCorner(enemy.Home, enemy.PatrolIndex)
	if physics.Distance(body.Position, target) < waypointTolerance {
		enemy.PatrolIndex = (enemy.PatrolIndex + 1) % 4
		target = patrolCorner(enemy.Home, enemy.PatrolIndex)
	}
	seek(body, enemy, target, enemy.TypeConfig.Speed)
}

func handleLurkState(enemy *components.EnemyData, body *components.BodyData, state *components.StateData, playerPos physics.Vec2, dist float64) {
	// Hold perfectly still until the player steps into the trap
	steer(body, physics.Vec2{}, 0)
	if dist <= enemy.TypeConfig.LurkRadius {
		enemy.Woken = true
		setState(state, cfg.StateChase)
	}
}

func handleChaseState(ecs *ecs.ECS, e *donburi.Entry, enemy *components.EnemyData, body *components.BodyData, state *components.StateData, run *components.RunData, playerPos physics.Vec2, dist float64) {
	tc := enemy.TypeConfig

	// Types with a finite chase range give up when the player slips far
	// enough away; hysteresis keeps them from flickering at the edge.
	if tc.ChaseRange > 0 && dist > tc.ChaseRange*cfg.Enemy.HysteresisMultiplier {
		enemy.Woken = false
		setState(state, restState(enemy.TypeName))
		return
	}

	// Boss winds up a charge when the lane is clear
	if tc.ChargeSpeed > 0 && enemy.ChargeCooldown <= 0 && dist <= tc.ChargeRange &&
		hasLineOfSight(run, body.Position, playerPos) {
		startCharge(ecs, enemy, body, state, playerPos)
		return
	}

	target := playerPos
	if tc.FlankOffset > 0 && dist > flankCloseRange {
		// Approach on a curve: aim beside the player until close
		side := perpToward(body.Position, playerPos)
		target = playerPos.Add(side.Scale(tc.FlankOffset))
	}

	speed := tc.Speed
	if enemy.Woken && tc.BurstSpeed > 0 {
		speed = tc.BurstSpeed
	}
	seek(body, enemy, target, speed)
}

func handleChargeState(body *components.BodyData, state *components.StateData) {
	if body.Dash == nil || !body.Dash.Active {
		body.Dash = nil
		setState(state, cfg.StateRecover)
	}
}

func startCharge(ecs *ecs.ECS, enemy *components.EnemyData, body *components.BodyData, state *components.StateData, playerPos physics.Vec2) {
	tc := enemy.TypeConfig
	enemy.ChargeCooldown = tc.ChargeCooldown
	dir := playerPos.Sub(body.Position).Normalize()
	enemy.Facing = dir
	body.Dash = &physics.DashState{
		Active:    true,
		Timer:     tc.ChargeDuration,
		Direction: dir,
		Speed:     tc.ChargeSpeed,
		MaxTrail:  6,
	}
	setState(state, cfg.StateCharge)
	TriggerScreenShake(ecs, cfg.ScreenShake.BossChargeIntensity, cfg.ScreenShake.BossChargeDuration)
}

// wakes reports whether the player is close enough, and visible enough,
// to pull this enemy out of its rest state.
func wakes(enemy *components.EnemyData, run *components.RunData, from, playerPos physics.Vec2, dist float64) bool {
	tc := enemy.TypeConfig
	if tc.ChaseRange > 0 && dist > tc.ChaseRange {
		return false
	}
	return hasLineOfSight(run, from, playerPos)
}

// restState is where a type goes when it loses interest.
func restState(typeName string) cfg.StateID {
	switch typeName {
	case dungeon.EnemyPatrol:
		return cfg.StatePatrol
	case dungeon.EnemyAmbush:
		return cfg.StateLurk
	default:
		return cfg.StateIdle
	}
}

// initialEnemyState is the state a freshly spawned enemy starts in.
func initialEnemyState(typeName string) cfg.StateID {
	switch typeName {
	case dungeon.EnemyChaser, dungeon.EnemyBoss:
		return cfg.StateChase
	default:
		return restState(typeName)
	}
}

func setState(state *components.StateData, next cfg.StateID) {
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

func patrolCorner(home physics.Vec2, index int) physics.Vec2 {
	corners := [4]physics.Vec2{
		{X: home.X - patrolLegLength, Y: home.Y - patrolLegLength},
		{X: home.X + patrolLegLength, Y: home.Y - patrolLegLength},
		{X: home.X + patrolLegLength, Y: home.Y + patrolLegLength},
		{X: home.X - patrolLegLength, Y: home.Y + patrolLegLength},
	}
	return corners[index%4]
}

// perpToward returns the perpendicular of the line to the player,
// flipped so a given enemy always circles the same way.
func perpToward(from, to physics.Vec2) physics.Vec2 {
	perp := to.Sub(from).Normalize().Perp()
	// Stable handedness per position keeps the curve from wobbling
	if int(from.X+from.Y)%2 == 0 {
		return perp.Scale(-1)
	}
	return perp
}

func seek(body *components.BodyData, enemy *components.EnemyData, target physics.Vec2, speed float64) {
	dir := target.Sub(body.Position).Normalize()
	if dir != (physics.Vec2{}) {
		enemy.Facing = dir
	}
	steer(body, dir, speed)
}

// steer accelerates toward dir so world friction sets the equilibrium:
// with the normal preset a cruise works out to the configured speed,
// mud drags it well under and ice lets it skid past on turns.
func steer(body *components.BodyData, dir physics.Vec2, speed float64) {
	if dir == (physics.Vec2{}) || speed == 0 {
		return
	}
	body.Velocity = body.Velocity.Add(dir.Scale(speed * 6 * tickDelta))
	if body.Velocity.Length() > speed {
		body.Velocity = body.Velocity.Normalize().Scale(speed)
	}
}

// hasLineOfSight casts a ray at the target and reports whether any
// obstacle in the current room blocks it.
func hasLineOfSight(run *components.RunData, from, to physics.Vec2) bool {
	room := run.CurrentRoom()
	if room == nil {
		return true
	}
	delta := to.Sub(from)
	dist := delta.Length()
	if dist == 0 {
		return true
	}
	dir := delta.Scale(1 / dist)
	for _, ob := range room.Obstacles {
		r := physics.Rect{X: ob.X, Y: ob.Y, Width: ob.Width, Height: ob.Height}
		if hit := physics.RaycastRect(from, dir, r); hit != nil && hit.Distance < dist {
			return false
		}
	}
	return true
}
