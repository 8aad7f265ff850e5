package physics

import "time"

// DefaultCritMultiplier scales knockback on critical hits when the
// attacker does not supply its own multiplier.
const DefaultCritMultiplier = 1.5

// knockbackSpeedFactor converts a force magnitude into knockback speed
// in units per second.
const knockbackSpeedFactor = 300.0

// Force is a raw impulse request. Mass is a force-side scale factor; 0
// is treated as 1.
type Force struct {
	X, Y     float64
	Duration float64
	Mass     float64
}

// Attacker describes the striking entity for knockback scaling. Zero
// Mass, KnockbackMultiplier and CritMultiplier take their defaults of
// 1, 1 and DefaultCritMultiplier.
type Attacker struct {
	ID                  string
	Speed               float64
	Mass                float64
	KnockbackMultiplier float64
	KnockbackBonus      float64
	Critical            bool
	CritMultiplier      float64
}

// ApplyForce arms knockback on b. With an attacker the magnitude is
//
//	attackerSpeed * multiplier * attackerMass / (bodyMass * resistance) + bonus
//
// times the crit multiplier on critical hits; without one it is the
// force vector's length scaled the same way by the masses. Direction
// is the normalized force vector, (1, 0) when the vector is zero.
// Knockback speed is magnitude times 300, capped at the body's
// MaxKnockbackSpeed. Bodies with a KnockbackHandler delegate to it;
// bodies with neither a handler nor a KnockbackState are left
// untouched.
func (w *World) ApplyForce(b *Body, f Force, atk *Attacker) {
	if b.Handler == nil && b.Knockback == nil {
		return
	}

	dir := Vec2{f.X, f.Y}.Normalize()
	if dir == (Vec2{}) {
		dir = Vec2{X: 1}
	}

	bodyMass := defaultOne(b.Mass)
	resistance := defaultOne(b.KnockbackResistance)

	var magnitude float64
	if atk != nil {
		magnitude = atk.Speed * defaultOne(atk.KnockbackMultiplier) * defaultOne(atk.Mass) /
			(bodyMass * resistance)
		magnitude += atk.KnockbackBonus
		if atk.Critical {
			crit := atk.CritMultiplier
			if crit == 0 {
				crit = DefaultCritMultiplier
			}
			magnitude *= crit
		}
	} else {
		magnitude = Vec2{f.X, f.Y}.Length() * defaultOne(f.Mass) / (bodyMass * resistance)
	}

	speed := magnitude * knockbackSpeedFactor
	if b.MaxKnockbackSpeed > 0 && speed > b.MaxKnockbackSpeed {
		speed = b.MaxKnockbackSpeed
	}

	if b.Handler != nil {
		b.Handler.ApplyKnockback(dir, magnitude, f.Duration)
		return
	}

	kb := b.Knockback
	kb.Active = true
	kb.Timer = f.Duration
	kb.Direction = dir
	kb.Speed = speed
	kb.LastForce = magnitude
	kb.LastAttackerID = ""
	if atk != nil {
		kb.LastAttackerID = atk.ID
	}
	kb.LastAppliedAt = time.Now()
}

func defaultOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
