package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedUpdater struct{ called bool }

func (f *fixedUpdater) Update(dt float64) { f.called = true }

func TestMove_PureEulerWithoutForces(t *testing.T) {
	w := NewWorld()
	w.SetEnvironment(EnvSpace) // zero friction, zero gravity

	b := NewBody(Vec2{1, 2}, nil)
	b.Velocity = Vec2{3, -4}
	w.Move(b, 0.5)

	assert.Equal(t, Vec2{1 + 3*0.5, 2 - 4*0.5}, b.Position)
	assert.Equal(t, Vec2{3, -4}, b.Velocity, "no damping in a frictionless world")
}

func TestMove_SkipsInactiveAndSelfGoverned(t *testing.T) {
	w := NewWorld()
	w.SetEnvironment(EnvSpace)

	b := NewBody(Vec2{0, 0}, nil)
	b.Velocity = Vec2{10, 0}
	b.Active = false
	w.Move(b, 1)
	assert.Equal(t, Vec2{0, 0}, b.Position)

	b.Active = true
	b.Updater = &fixedUpdater{}
	w.Move(b, 1)
	assert.Equal(t, Vec2{0, 0}, b.Position, "self-governed bodies are skipped")

	b.PhysicsControlled = true
	w.Move(b, 1)
	assert.Equal(t, Vec2{10, 0}, b.Position, "physics-controlled flag re-enables integration")
}

func TestMove_FrictionPerEnvironment(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		dt   float64
		in   Vec2
		want Vec2
	}{
		{"normal", "", 0.1, Vec2{10, 10}, Vec2{4, 4}},           // factor 1 - 6*0.1
		{"ice barely damps", EnvIce, 0.1, Vec2{10, 10}, Vec2{9.4, 9.4}},
		{"mud saturates to zero", EnvMud, 0.1, Vec2{10, 10}, Vec2{0, 0}},
		{"water drags X harder", EnvWater, 0.05, Vec2{10, 10}, Vec2{4.6, 5.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld() // friction 6, gravity zero
			b := NewBody(Vec2{0, 0}, nil)
			b.EnvironmentTag = tt.tag
			if tt.tag == EnvWater {
				f := 6.0
				b.Friction = &f // pin the base coefficient, tag picks the multipliers
			}
			b.Velocity = tt.in
			w.Move(b, tt.dt)
			assert.InDelta(t, tt.want.X, b.Velocity.X, 1e-9)
			assert.InDelta(t, tt.want.Y, b.Velocity.Y, 1e-9)
		})
	}
}

func TestMove_VelocityThresholdZeroes(t *testing.T) {
	w := NewWorld()
	b := NewBody(Vec2{0, 0}, nil)
	b.Velocity = Vec2{0.2, -0.2}
	w.Move(b, 0.1) // 0.2 * 0.4 = 0.08, below the 0.1 threshold

	assert.Equal(t, Vec2{0, 0}, b.Velocity)
	assert.Equal(t, Vec2{0.02, -0.02}, b.Position, "position integrates before damping")
}

func TestMove_GravityOverrideAndOptOut(t *testing.T) {
	w := NewWorld()
	w.Gravity = Vec2{0, 100}
	w.Friction = 0

	b := NewBody(Vec2{0, 0}, nil)
	w.Move(b, 0.1)
	assert.InDelta(t, 10, b.Velocity.Y, 1e-9)

	g := Vec2{50, 0}
	b.Velocity = Vec2{}
	b.Gravity = &g
	w.Move(b, 0.1)
	assert.Equal(t, Vec2{5, 0}, b.Velocity, "override replaces the world vector")

	b.Velocity = Vec2{}
	b.IgnoreGravity = true
	w.Move(b, 0.1)
	assert.Equal(t, Vec2{0, 0}, b.Velocity)
}

func TestMove_TerminalVelocityClampsPerAxis(t *testing.T) {
	w := NewWorld()
	w.SetEnvironment(EnvSpace)

	b := NewBody(Vec2{0, 0}, nil)
	b.TerminalVelocity = 300
	b.Velocity = Vec2{500, -500}
	w.Move(b, 0.01)

	assert.Equal(t, Vec2{300, -300}, b.Velocity)
}

func TestMove_KnockbackOverridesIntegration(t *testing.T) {
	w := NewWorld()
	w.SetEnvironment(EnvSpace)

	b := NewBody(Vec2{0, 0}, nil)
	b.Velocity = Vec2{100, 0} // must not integrate while knocked back
	b.Knockback = &KnockbackState{
		Active:    true,
		Timer:     0.05,
		Direction: Vec2{0, 1},
		Speed:     200,
	}

	w.Move(b, 0.016)
	assert.Equal(t, Vec2{0, 200 * 0.016}, b.Position)
	assert.True(t, b.Knockback.Active)

	for i := 0; i < 10 && b.Knockback.Active; i++ {
		w.Move(b, 0.016)
	}
	require.False(t, b.Knockback.Active, "timer must run out")
	assert.Zero(t, b.Knockback.Speed)

	// Back to normal integration afterwards.
	before := b.Position
	w.Move(b, 0.5)
	assert.Equal(t, before.Add(Vec2{50, 0}), b.Position)
}

func TestMove_DashTrailIsBounded(t *testing.T) {
	w := NewWorld()
	w.SetEnvironment(EnvSpace)

	b := NewBody(Vec2{0, 0}, nil)
	b.Dash = &DashState{
		Active:    true,
		Timer:     1,
		Direction: Vec2{1, 0},
		Speed:     100,
		MaxTrail:  3,
	}

	for i := 0; i < 5; i++ {
		w.Move(b, 0.1)
	}

	require.Len(t, b.Dash.Trail, 3, "oldest entries dropped")
	assert.Equal(t, Vec2{30, 0}, b.Dash.Trail[0])
	assert.Equal(t, Vec2{50, 0}, b.Dash.Trail[2])
	assert.Equal(t, Vec2{50, 0}, b.Position)
}

func TestMove_DashExpires(t *testing.T) {
	w := NewWorld()
	b := NewBody(Vec2{0, 0}, nil)
	b.Dash = &DashState{Active: true, Timer: 0.1, Direction: Vec2{1, 0}, Speed: 100, MaxTrail: 8}

	w.Move(b, 0.1)
	assert.False(t, b.Dash.Active)
}

func TestMove_KnockbackBeatsDash(t *testing.T) {
	w := NewWorld()
	b := NewBody(Vec2{0, 0}, nil)
	b.Knockback = &KnockbackState{Active: true, Timer: 1, Direction: Vec2{0, 1}, Speed: 10}
	b.Dash = &DashState{Active: true, Timer: 1, Direction: Vec2{1, 0}, Speed: 10, MaxTrail: 4}

	w.Move(b, 0.1)

	assert.Equal(t, Vec2{0, 1}, b.Position, "knockback displacement only")
	assert.Empty(t, b.Dash.Trail, "dash branch never ran")
}
