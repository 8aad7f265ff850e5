package components

import (
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing       physics.Vec2 // last non-zero move direction, unit length
	Ammo         float64
	MaxAmmo      float64
	InvulnFrames int

	// Cooldown timers in frames
	AttackCooldown int
	ShotCooldown   int
	DashCooldown   int

	// Pickup boosts
	SpeedBoostFrames  int
	SpeedBoostScale   float64
	DamageBoostFrames int
	DamageBoostScale  float64
	Shield            float64

	Kills int
}

var Player = donburi.NewComponentType[PlayerData]()
