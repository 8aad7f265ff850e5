package systems

import (
	"testing"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/stretchr/testify/assert"
)

// lineOfSightRun builds the minimum run state the AI helpers read: one
// current room with the given obstacles.
func lineOfSightRun(obstacles ...dungeon.Obstacle) *components.RunData {
	return &components.RunData{
		Map: &dungeon.Dungeon{Rooms: map[int]*dungeon.Room{0: {
			Width:     800,
			Height:    600,
			Obstacles: obstacles,
		}}},
	}
}

func TestRestState_PerType(t *testing.T) {
	assert.Equal(t, cfg.StatePatrol, restState(dungeon.EnemyPatrol))
	assert.Equal(t, cfg.StateLurk, restState(dungeon.EnemyAmbush))
	assert.Equal(t, cfg.StateIdle, restState(dungeon.EnemyNormal))
	assert.Equal(t, cfg.StateIdle, restState(dungeon.EnemyFast))
	assert.Equal(t, cfg.StateIdle, restState(dungeon.EnemyStrong))
}

func TestInitialEnemyState_ChasersAndBossesWakeHot(t *testing.T) {
	assert.Equal(t, cfg.StateChase, initialEnemyState(dungeon.EnemyChaser))
	assert.Equal(t, cfg.StateChase, initialEnemyState(dungeon.EnemyBoss))
	assert.Equal(t, cfg.StatePatrol, initialEnemyState(dungeon.EnemyPatrol))
	assert.Equal(t, cfg.StateLurk, initialEnemyState(dungeon.EnemyAmbush))
	assert.Equal(t, cfg.StateIdle, initialEnemyState(dungeon.EnemyNormal))
}

func TestSetState_RecordsThePreviousState(t *testing.T) {
	state := &components.StateData{CurrentState: cfg.StateIdle, StateTimer: 40}

	setState(state, cfg.StateChase)

	assert.Equal(t, cfg.StateChase, state.CurrentState)
	assert.Equal(t, cfg.StateIdle, state.PreviousState)
	assert.Zero(t, state.StateTimer)
}

func TestPatrolCorner_CyclesTheSquare(t *testing.T) {
	home := physics.Vec2{X: 200, Y: 200}

	assert.Equal(t, physics.Vec2{X: 200 - patrolLegLength, Y: 200 - patrolLegLength}, patrolCorner(home, 0))
	assert.Equal(t, physics.Vec2{X: 200 + patrolLegLength, Y: 200 - patrolLegLength}, patrolCorner(home, 1))
	assert.Equal(t, physics.Vec2{X: 200 + patrolLegLength, Y: 200 + patrolLegLength}, patrolCorner(home, 2))
	assert.Equal(t, physics.Vec2{X: 200 - patrolLegLength, Y: 200 + patrolLegLength}, patrolCorner(home, 3))
	assert.Equal(t, patrolCorner(home, 0), patrolCorner(home, 4), "index wraps")
}

func TestPerpToward_IsPerpendicularAndStable(t *testing.T) {
	from := physics.Vec2{X: 100, Y: 100}
	to := physics.Vec2{X: 300, Y: 220}

	p := perpToward(from, to)

	line := to.Sub(from).Normalize()
	assert.InDelta(t, 0, p.Dot(line), 1e-9)
	assert.InDelta(t, 1, p.Length(), 1e-9)
	assert.Equal(t, p, perpToward(from, to), "same position picks the same side")
}

func TestSteer_CapsAtTheCruiseSpeed(t *testing.T) {
	body := &components.BodyData{Body: physics.NewBody(physics.Vec2{}, physics.Circle{Radius: 10})}

	for i := 0; i < 30; i++ {
		steer(body, physics.Vec2{X: 1, Y: 0}, 120)
	}

	assert.InDelta(t, 120, body.Velocity.X, 1e-9)
	assert.InDelta(t, 120, body.Velocity.Length(), 1e-9)
}

func TestSteer_ZeroDirectionLeavesVelocityAlone(t *testing.T) {
	body := &components.BodyData{Body: physics.NewBody(physics.Vec2{}, physics.Circle{Radius: 10})}
	body.Velocity = physics.Vec2{X: 5, Y: 5}

	steer(body, physics.Vec2{}, 120)

	assert.Equal(t, physics.Vec2{X: 5, Y: 5}, body.Velocity)
}

func TestHasLineOfSight_ObstacleBlocks(t *testing.T) {
	run := lineOfSightRun(dungeon.Obstacle{X: 390, Y: 280, Width: 20, Height: 40})

	assert.False(t, hasLineOfSight(run, physics.Vec2{X: 100, Y: 300}, physics.Vec2{X: 700, Y: 300}))
	assert.True(t, hasLineOfSight(run, physics.Vec2{X: 100, Y: 100}, physics.Vec2{X: 700, Y: 100}),
		"clear lane above the block")
}

func TestHasLineOfSight_ObstacleBehindTheTargetDoesNotBlock(t *testing.T) {
	run := lineOfSightRun(dungeon.Obstacle{X: 600, Y: 280, Width: 20, Height: 40})

	assert.True(t, hasLineOfSight(run, physics.Vec2{X: 100, Y: 300}, physics.Vec2{X: 500, Y: 300}))
}

func TestWakes_RangeGatesTheChase(t *testing.T) {
	run := lineOfSightRun()
	enemy := &components.EnemyData{TypeConfig: &cfg.EnemyTypeConfig{ChaseRange: 200}}
	from := physics.Vec2{X: 100, Y: 100}

	assert.True(t, wakes(enemy, run, from, physics.Vec2{X: 250, Y: 100}, 150))
	assert.False(t, wakes(enemy, run, from, physics.Vec2{X: 500, Y: 100}, 400), "outside chase range")
}

func TestWakes_ZeroRangeNeverSleeps(t *testing.T) {
	run := lineOfSightRun()
	enemy := &components.EnemyData{TypeConfig: &cfg.EnemyTypeConfig{ChaseRange: 0}}

	assert.True(t, wakes(enemy, run, physics.Vec2{}, physics.Vec2{X: 5000}, 5000))
}

func TestWakes_WallsHideThePlayer(t *testing.T) {
	run := lineOfSightRun(dungeon.Obstacle{X: 190, Y: 80, Width: 20, Height: 40})
	enemy := &components.EnemyData{TypeConfig: &cfg.EnemyTypeConfig{ChaseRange: 400}}

	assert.False(t, wakes(enemy, run, physics.Vec2{X: 100, Y: 100}, physics.Vec2{X: 300, Y: 100}, 200))
}
