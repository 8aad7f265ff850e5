package components

import (
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
)

// DamageEventData is attached to an entity that took a hit this frame.
// The combat system consumes and removes it.
type DamageEventData struct {
	Amount   float64
	Origin   physics.Vec2 // where the hit came from, for knockback direction
	Force    float64      // attacker speed fed into knockback scaling
	Critical bool
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
