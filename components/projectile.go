package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Damage   float64
	Force    float64 // attacker speed fed into knockback scaling
	Critical bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
