package components

import (
	"github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "normal", "fast", "strong" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Facing     physics.Vec2

	// AI state management
	Home         physics.Vec2 // spawn point, anchors wander and patrol
	WanderTarget physics.Vec2
	WanderTimer  int // frames until the next wander reroll
	PatrolIndex  int // current corner of the patrol square
	Woken        bool

	// Combat
	InvulnFrames   int // Invincibility frames after being hit
	ChargeCooldown int // frames until the boss may charge again
}

var Enemy = donburi.NewComponentType[EnemyData]()
