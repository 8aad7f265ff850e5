package physics

import "time"

// Updater is implemented by entity wrappers that advance their own
// motion. Move leaves such bodies alone unless the body is flagged
// PhysicsControlled.
type Updater interface {
	Update(dt float64)
}

// KnockbackHandler receives knockback on behalf of a body. When a body
// carries one, ApplyForce delegates to it instead of arming the body's
// KnockbackState.
type KnockbackHandler interface {
	ApplyKnockback(dir Vec2, force, duration float64)
}

// Body is the movable state the engine integrates. A body is owned by
// the entity it represents; the engine only reads and mutates bodies
// passed into it and never retains them between calls.
type Body struct {
	Position Vec2
	Velocity Vec2

	// Shape is stored in local space; collision tests place it at the
	// body's current position. A nil shape falls back to a point test.
	Shape Shape

	Mass                float64 // 0 is treated as 1
	KnockbackResistance float64 // 0 is treated as 1
	MaxKnockbackSpeed   float64 // 0 means uncapped
	TerminalVelocity    float64 // 0 means unclamped, otherwise per axis

	Friction      *float64 // overrides World.Friction while set
	Gravity       *Vec2    // overrides World.Gravity while set
	IgnoreGravity bool

	Active            bool
	PhysicsControlled bool

	Updater   Updater
	Handler   KnockbackHandler
	Knockback *KnockbackState
	Dash      *DashState

	// EnvironmentTag is the type of the area the body currently sits
	// in, empty outside any area.
	EnvironmentTag string
	area           *Area
}

// NewBody returns an active body with the given local-space shape.
func NewBody(pos Vec2, shape Shape) *Body {
	return &Body{
		Position:            pos,
		Shape:               shape,
		Mass:                1,
		KnockbackResistance: 1,
		Active:              true,
	}
}

// CollisionShape returns the body's shape placed at its current
// position, or nil when the body has no shape.
func (b *Body) CollisionShape() Shape {
	if b.Shape == nil {
		return nil
	}
	return placeShape(b.Shape, b.Position)
}

// KnockbackState tracks an active knockback impulse. The Last* fields
// are diagnostics; LastAppliedAt is wall-clock time and takes no part
// in simulation determinism.
type KnockbackState struct {
	Active    bool
	Timer     float64
	Direction Vec2
	Speed     float64

	LastForce      float64
	LastAttackerID string
	LastAppliedAt  time.Time
}

// DashState tracks an active dash and a bounded trail of recent
// positions, oldest dropped first.
type DashState struct {
	Active    bool
	Timer     float64
	Direction Vec2
	Speed     float64
	Trail     []Vec2
	MaxTrail  int
}
