package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every entity draws on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (units per second; the movement system integrates with dt)
	Acceleration float64
	MaxSpeed     float64

	// Combat
	MaxHealth    float64
	MaxAmmo      float64
	InvulnFrames int

	// Body
	Radius              float64
	Mass                float64
	MaxKnockbackSpeed   float64
	KnockbackResistance float64

	// Dash
	DashSpeed     float64 // units per second while dashing
	DashDuration  float64 // seconds
	DashTrail     int     // trail points kept for the afterimage
	DashCooldown  int     // frames
	DashHitstop   int     // invulnerability frames granted by a dash
	DashCritBonus bool    // attacks during a dash land critical
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	// Melee swing
	MeleeDamage   float64
	MeleeReach    float64 // hitbox center offset from the player along facing
	MeleeRadius   float64
	MeleeCooldown int     // frames
	MeleeForce    float64 // attacker speed fed into knockback scaling
	MeleeDuration float64 // seconds of knockback slide

	// Projectile shot
	ShotDamage   float64
	ShotSpeed    float64 // units per second
	ShotRadius   float64
	ShotCooldown int // frames
	ShotLifetime int // frames before the bullet despawns
	ShotAmmoCost float64
	ShotForce    float64

	// Pickup boosts
	BoostFrames int // speed and damage boost duration

	// Flash effects (frames)
	HitFlashFrames    int // white flash when dealing damage
	DamageFlashFrames int // red flash when taking damage
	PickupFlashFrames int // green flash on item pickup
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistance  float64 // Max look-ahead offset along facing in pixels
	LookAheadSmoothing float64 // How fast look-ahead offset changes (0.0-1.0)
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	MeleeIntensity        float64 // pixels
	MeleeDuration         int     // frames
	PlayerDamageIntensity float64 // pixels
	PlayerDamageDuration  int     // frames
	BossChargeIntensity   float64 // pixels
	BossChargeDuration    int     // frames
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	BarWidth  float64
	BarHeight float64
	Margin    float64

	HealthBgColor color.RGBA
	HealthFgColor color.RGBA
	AmmoFgColor   color.RGBA
	ShieldFgColor color.RGBA

	BossBarWidth  float64
	BossBarHeight float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	TitleY          float64
	StatsY          float64
	HintY           float64
	Title           string
	ContinueHint    string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool   // Start with the debug overlay enabled
	Seed    string // Fixed run seed ("" = random)
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Combat CombatConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var UI UIConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		Acceleration: 1800.0,
		MaxSpeed:     260.0,

		// Combat
		MaxHealth:    100,
		MaxAmmo:      50,
		InvulnFrames: 45,

		// Body
		Radius:              14.0,
		Mass:                1.0,
		MaxKnockbackSpeed:   700.0,
		KnockbackResistance: 1.0,

		// Dash
		DashSpeed:     900.0,
		DashDuration:  0.18,
		DashTrail:     10,
		DashCooldown:  45,
		DashHitstop:   14,
		DashCritBonus: true,
	}

	// Combat Config
	Combat = CombatConfig{
		MeleeDamage:   20,
		MeleeReach:    30.0,
		MeleeRadius:   22.0,
		MeleeCooldown: 18,
		MeleeForce:    2.4,
		MeleeDuration: 0.12,

		ShotDamage:   12,
		ShotSpeed:    560.0,
		ShotRadius:   3.5,
		ShotCooldown: 10,
		ShotLifetime: 50,
		ShotAmmoCost: 1,
		ShotForce:    1.2,

		BoostFrames: 600, // 10 seconds at 60fps

		HitFlashFrames:    3,
		DamageFlashFrames: 5,
		PickupFlashFrames: 6,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing:    0.12,
		LookAheadDistance:  40.0,
		LookAheadSmoothing: 0.08,
	}

	// Screen Shake Config
	ScreenShake = ScreenShakeConfig{
		MeleeIntensity:        1.5,
		MeleeDuration:         4,
		PlayerDamageIntensity: 4.0,
		PlayerDamageDuration:  8,
		BossChargeIntensity:   6.0,
		BossChargeDuration:    14,
	}

	// UI Config
	UI = UIConfig{
		BarWidth:  130,
		BarHeight: 13,
		Margin:    10,

		HealthBgColor: color.RGBA{40, 40, 40, 255},
		HealthFgColor: color.RGBA{40, 220, 40, 255},
		AmmoFgColor:   color.RGBA{255, 162, 38, 255},
		ShieldFgColor: color.RGBA{77, 195, 255, 255},

		BossBarWidth:  300,
		BossBarHeight: 10,
	}

	// Game Over Config
	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:      LightRed,
		TextColor:       White,
		HintColor:       LightBlue,
		TitleY:          170,
		StatsY:          250,
		HintY:           420,
		Title:           "YOU DIED",
		ContinueHint:    "Press ENTER to run again",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay: false,
		Seed:    "",
	}
}
