package config

import (
	"image/color"

	"github.com/automoto/vaultrush/dungeon"
)

// DungeonConfig contains run generation configuration
type DungeonConfig struct {
	RoomWidth  float64
	RoomHeight float64
	GridCols   int
	GridRows   int

	// Rooms per depth: BaseRooms + depth*RoomsPerDepth, capped at MaxRooms
	BaseRooms     int
	RoomsPerDepth int
	MaxRooms      int

	// Difficulty window per depth: [depth, depth+DifficultySpan] capped at 10
	DifficultySpan int

	// Frames a door stays inert after a transition so the player does
	// not bounce straight back through it
	DoorCooldown int

	DoorWidth float64 // passable gap carved into the room border
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name       string
	Speed      float64 // cruise speed in units per second
	ChaseRange float64 // player distance that wakes the enemy (0 = always awake)

	// Body
	Radius              float64
	Mass                float64
	KnockbackResistance float64
	MaxKnockbackSpeed   float64

	// Combat
	ContactDamage    float64
	ContactKnockback float64 // attacker speed fed into knockback scaling
	HitstunFrames    int
	InvulnFrames     int

	// Visual
	Color color.RGBA

	// Type quirks
	FlankOffset    float64 // perpendicular offset while closing (flank)
	LurkRadius     float64 // wake radius while lurking (ambush)
	BurstSpeed     float64 // speed once woken (ambush)
	ChargeSpeed    float64 // dash speed during a charge (boss)
	ChargeDuration float64 // seconds (boss)
	ChargeCooldown int     // frames between charges (boss)
	ChargeRange    float64 // player distance that triggers a charge (boss)
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Per-type configurations keyed by the generator's type names
	Types map[string]EnemyTypeConfig

	// Wander tuning for idle enemies
	WanderSpeedScale float64 // fraction of cruise speed while wandering
	WanderInterval   int     // frames between wander target rerolls

	// Chase hysteresis: give up at ChaseRange * this
	HysteresisMultiplier float64
}

// Dungeon is the global run generation configuration
var Dungeon DungeonConfig

// Enemy is the global enemy configuration
var Enemy EnemyConfig

func init() {
	Dungeon = DungeonConfig{
		RoomWidth:  800,
		RoomHeight: 600,
		GridCols:   5,
		GridRows:   5,

		BaseRooms:     6,
		RoomsPerDepth: 2,
		MaxRooms:      14,

		DifficultySpan: 5,

		DoorCooldown: 30,
		DoorWidth:    72.0,
	}

	normalType := EnemyTypeConfig{
		Name:              "Vaultling",
		Speed:             120.0,
		ChaseRange:        220.0,
		Radius:            13.0,
		Mass:              1.0,
		MaxKnockbackSpeed: 600.0,
		ContactDamage:     10,
		ContactKnockback:  1.6,
		HitstunFrames:     12,
		InvulnFrames:      20,
		Color:             LightRed,
	}

	fastType := EnemyTypeConfig{
		Name:              "Skitter",
		Speed:             210.0,
		ChaseRange:        260.0,
		Radius:            11.0,
		Mass:              0.8,
		MaxKnockbackSpeed: 800.0,
		ContactDamage:     8,
		ContactKnockback:  1.4,
		HitstunFrames:     8,
		InvulnFrames:      15,
		Color:             Yellow,
	}

	strongType := EnemyTypeConfig{
		Name:              "Bulwark",
		Speed:             85.0,
		ChaseRange:        180.0,
		Radius:            17.0,
		Mass:              2.0,
		MaxKnockbackSpeed: 350.0,
		ContactDamage:     18,
		ContactKnockback:  2.4,
		HitstunFrames:     18,
		InvulnFrames:      25,
		Color:             Orange,
	}

	chaserType := EnemyTypeConfig{
		Name:              "Bloodhound",
		Speed:             140.0,
		ChaseRange:        0, // never sleeps
		Radius:            13.0,
		Mass:              1.0,
		MaxKnockbackSpeed: 600.0,
		ContactDamage:     10,
		ContactKnockback:  1.6,
		HitstunFrames:     12,
		InvulnFrames:      20,
		Color:             Magenta,
	}

	patrolType := EnemyTypeConfig{
		Name:              "Warden",
		Speed:             110.0,
		ChaseRange:        170.0,
		Radius:            13.0,
		Mass:              1.2,
		MaxKnockbackSpeed: 550.0,
		ContactDamage:     9,
		ContactKnockback:  1.5,
		HitstunFrames:     12,
		InvulnFrames:      20,
		Color:             Green,
	}

	flankType := EnemyTypeConfig{
		Name:              "Sidewinder",
		Speed:             150.0,
		ChaseRange:        240.0,
		Radius:            12.0,
		Mass:              0.9,
		MaxKnockbackSpeed: 700.0,
		ContactDamage:     10,
		ContactKnockback:  1.6,
		HitstunFrames:     10,
		InvulnFrames:      15,
		Color:             LightBlue,
		FlankOffset:       90.0,
	}

	ambushType := EnemyTypeConfig{
		Name:              "Lurker",
		Speed:             90.0,
		ChaseRange:        120.0,
		Radius:            12.0,
		Mass:              1.0,
		MaxKnockbackSpeed: 650.0,
		ContactDamage:     14,
		ContactKnockback:  2.0,
		HitstunFrames:     10,
		InvulnFrames:      15,
		Color:             Purple,
		LurkRadius:        120.0,
		BurstSpeed:        240.0,
	}

	bossType := EnemyTypeConfig{
		Name:                "Vault Keeper",
		Speed:               95.0,
		ChaseRange:          0, // always awake
		Radius:              26.0,
		Mass:                4.0,
		KnockbackResistance: 2.0,
		MaxKnockbackSpeed:   150.0,
		ContactDamage:       25,
		ContactKnockback:    3.2,
		HitstunFrames:       6,
		InvulnFrames:        10,
		Color:               Red,
		ChargeSpeed:         520.0,
		ChargeDuration:      0.45,
		ChargeCooldown:      180,
		ChargeRange:         320.0,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			dungeon.EnemyNormal: normalType,
			dungeon.EnemyFast:   fastType,
			dungeon.EnemyStrong: strongType,
			dungeon.EnemyChaser: chaserType,
			dungeon.EnemyPatrol: patrolType,
			dungeon.EnemyFlank:  flankType,
			dungeon.EnemyAmbush: ambushType,
			dungeon.EnemyBoss:   bossType,
		},
		WanderSpeedScale:     0.35,
		WanderInterval:       90,
		HysteresisMultiplier: 1.5,
	}
}
