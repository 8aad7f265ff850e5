package physics

import "math"

// Move advances b by dt seconds. Inactive bodies and bodies that run
// their own Updater are skipped unless flagged PhysicsControlled.
// Knockback takes priority over dashing, which takes priority over
// plain Euler integration; a tick consumed by knockback or dash does
// not integrate, damp or fall.
func (w *World) Move(b *Body, dt float64) {
	if b == nil || !b.Active {
		return
	}
	if b.Updater != nil && !b.PhysicsControlled {
		return
	}

	if kb := b.Knockback; kb != nil && kb.Active {
		b.Position = b.Position.Add(kb.Direction.Scale(kb.Speed * dt))
		kb.Timer -= dt
		if kb.Timer <= 0 {
			kb.Active = false
			kb.Speed = 0
		}
		return
	}

	if d := b.Dash; d != nil && d.Active {
		b.Position = b.Position.Add(d.Direction.Scale(d.Speed * dt))
		d.Trail = append(d.Trail, b.Position)
		if d.MaxTrail > 0 && len(d.Trail) > d.MaxTrail {
			d.Trail = d.Trail[len(d.Trail)-d.MaxTrail:]
		}
		d.Timer -= dt
		if d.Timer <= 0 {
			d.Active = false
		}
		return
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	w.applyFriction(b, dt)
	w.applyGravity(b, dt)
	if b.TerminalVelocity > 0 {
		b.Velocity.X = clampAxis(b.Velocity.X, b.TerminalVelocity)
		b.Velocity.Y = clampAxis(b.Velocity.Y, b.TerminalVelocity)
	}
}

// applyFriction damps velocity using the body's friction override or
// the world coefficient, adjusted by environment: ice barely grips,
// water drags harder on X than Y, mud drags hardest. A zero
// coefficient skips damping entirely, threshold included.
func (w *World) applyFriction(b *Body, dt float64) {
	f := w.Friction
	if b.Friction != nil {
		f = *b.Friction
	}
	if f == 0 {
		return
	}
	fx, fy := f, f
	switch b.EnvironmentTag {
	case EnvIce:
		fx *= 0.1
		fy *= 0.1
	case EnvWater:
		fx *= 1.8
		fy *= 1.5
	case EnvMud:
		fx *= 2.5
		fy *= 2.5
	}
	b.Velocity.X = dampen(b.Velocity.X, fx, dt, w.VelocityThreshold)
	b.Velocity.Y = dampen(b.Velocity.Y, fy, dt, w.VelocityThreshold)
}

func dampen(v, friction, dt, threshold float64) float64 {
	factor := 1 - friction*dt
	if factor < 0 {
		factor = 0
	}
	v *= factor
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}

func (w *World) applyGravity(b *Body, dt float64) {
	if b.IgnoreGravity {
		return
	}
	g := w.Gravity
	if b.Gravity != nil {
		g = *b.Gravity
	}
	b.Velocity = b.Velocity.Add(g.Scale(dt))
}

// clampAxis clamps a component to [-max, max].
func clampAxis(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}
