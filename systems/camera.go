package systems

import (
	"math"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be dead), skip camera update
	}
	body := components.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	run := getRun(e)
	if run == nil {
		return
	}
	room := run.CurrentRoom()
	if room == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if body.Velocity.Length() > 1 {
		targetLookX := player.Facing.X * cfg.Camera.LookAheadDistance
		targetLookY := player.Facing.Y * cfg.Camera.LookAheadDistance
		camera.LookAhead.X += (targetLookX - camera.LookAhead.X) * cfg.Camera.LookAheadSmoothing
		camera.LookAhead.Y += (targetLookY - camera.LookAhead.Y) * cfg.Camera.LookAheadSmoothing
	}

	// Target camera position: the player with look-ahead along facing
	targetX := body.Position.X + camera.LookAhead.X
	targetY := body.Position.Y + camera.LookAhead.Y

	targetX, targetY = clampToRoom(targetX, targetY, room.Width, room.Height)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// clampToRoom constrains a camera center so the room always fills the
// screen. Rooms no bigger than the screen pin the camera to the room
// center.
func clampToRoom(x, y, roomWidth, roomHeight float64) (float64, float64) {
	screenWidth := float64(cfg.C.Width)
	screenHeight := float64(cfg.C.Height)

	minCameraX := screenWidth / 2
	maxCameraX := roomWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := roomHeight - screenHeight/2
	if maxCameraX < minCameraX {
		minCameraX = roomWidth / 2
		maxCameraX = minCameraX
	}
	if maxCameraY < minCameraY {
		minCameraY = roomHeight / 2
		maxCameraY = minCameraY
	}

	x = math.Max(minCameraX, math.Min(maxCameraX, x))
	y = math.Max(minCameraY, math.Min(maxCameraY, y))
	return x, y
}

// snapCamera recenters the camera instantly, used on room transitions
// so the view does not smear across the new room.
func snapCamera(e *ecs.ECS, target physics.Vec2) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	run := getRun(e)
	if run == nil {
		return
	}
	room := run.CurrentRoom()
	if room == nil {
		return
	}

	x, y := clampToRoom(target.X, target.Y, room.Width, room.Height)
	camera.Position.X = x
	camera.Position.Y = y
	camera.LookAhead.X = 0
	camera.LookAhead.Y = 0
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	offsetX := math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	offsetY := math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	camera.Position.X += offsetX
	camera.Position.Y += offsetY

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}
