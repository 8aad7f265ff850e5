package config

// PhysicsConfig contains simulation tuning shared by every room
type PhysicsConfig struct {
	Elasticity        float64 // restitution for knockback bounces off walls
	VelocityThreshold float64 // speeds below this are zeroed by friction

	// Wall thickness of the room border bodies
	WallThickness float64

	// Separation shove when mobile bodies overlap (attacker speed
	// equivalent fed into knockback scaling)
	SeparationForce float64
}

// EnvPatchConfig describes the environment areas stamped into rooms.
// Patches are derived from room data, so the same room always carries
// the same patch.
type EnvPatchConfig struct {
	// "cross" template rooms carry a water pool in the center gap
	WaterPoolSize float64

	// "maze" template rooms carry a mud strip between the two walls
	MudStripWidth float64

	// The boss room floor is ice wall to wall
	BossIceMargin float64
}

// Physics is the global physics configuration
var Physics PhysicsConfig

// EnvPatch is the global environment patch configuration
var EnvPatch EnvPatchConfig

func init() {
	Physics = PhysicsConfig{
		Elasticity:        0.5,
		VelocityThreshold: 0.1,
		WallThickness:     16.0,
		SeparationForce:   0.6,
	}

	EnvPatch = EnvPatchConfig{
		WaterPoolSize: 160.0,
		MudStripWidth: 120.0,
		BossIceMargin: 16.0,
	}
}
