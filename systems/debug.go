package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/vaultrush/components"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return // No camera yet
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	viewX := -camX
	viewY := -camY
	viewW := float64(width)
	viewH := float64(height)

	// Draw every collision shape in the world
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		c := debugColor(e)

		switch s := body.CollisionShape().(type) {
		case physics.Rect:
			// Cull shapes outside viewport
			if s.X+s.Width < viewX || s.X > viewX+viewW || s.Y+s.Height < viewY || s.Y > viewY+viewH {
				return
			}
			x := s.X + camX
			y := s.Y + camY
			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(s.Width), 1, c, false)            // Top
			vector.FillRect(screen, float32(x), float32(y+s.Height-1), float32(s.Width), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(s.Height), c, false)           // Left
			vector.FillRect(screen, float32(x+s.Width-1), float32(y), 1, float32(s.Height), c, false) // Right
		case physics.Circle:
			if s.X+s.Radius < viewX || s.X-s.Radius > viewX+viewW || s.Y+s.Radius < viewY || s.Y-s.Radius > viewY+viewH {
				return
			}
			vector.StrokeCircle(screen, float32(s.X+camX), float32(s.Y+camY), float32(s.Radius), 1, c, false)
		}
	})

	// AI state labels over enemies
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		state := components.State.Get(e)
		label := fmt.Sprintf("%s %d", state.CurrentState, state.StateTimer)
		ebitenutil.DebugPrintAt(screen, label, int(body.Position.X+camX)-14, int(body.Position.Y+camY)-36)
	})

	drawDebugStatus(ecs, screen)
}

func debugColor(e *donburi.Entry) color.RGBA {
	switch {
	case e.HasComponent(tags.Player):
		return color.RGBA{0, 0, 255, 255} // Blue
	case e.HasComponent(tags.Enemy):
		return color.RGBA{255, 0, 0, 255} // Red
	case e.HasComponent(tags.Projectile):
		return color.RGBA{0, 255, 0, 255} // Green
	case e.HasComponent(tags.Wall), e.HasComponent(tags.Obstacle):
		return color.RGBA{100, 100, 100, 255} // Grey
	default:
		return color.RGBA{0, 255, 255, 255} // Cyan
	}
}

// drawDebugStatus prints the run state in the bottom-left corner.
func drawDebugStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	run := getRun(ecs)
	if run == nil {
		return
	}
	room := run.CurrentRoom()
	if room == nil {
		return
	}

	height := screen.Bounds().Dy()

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		body := components.Body.Get(playerEntry)
		env := body.EnvironmentTag
		if env == "" {
			env = "none"
		}
		line := fmt.Sprintf("pos (%.0f, %.0f)  vel (%.1f, %.1f)  env %s",
			body.Position.X, body.Position.Y,
			body.Velocity.X, body.Velocity.Y, env)
		ebitenutil.DebugPrintAt(screen, line, 12, height-40)
	}

	enemies := 0
	tags.Enemy.Each(ecs.World, func(*donburi.Entry) { enemies++ })

	line := fmt.Sprintf("seed %s  depth %d  room %d/%d  %s diff %d  enemies %d  cleared %v",
		run.Seed, run.Depth, run.CurrentRoomID, len(run.Map.Rooms),
		room.Template, room.Difficulty, enemies, run.ClearedRooms[run.CurrentRoomID])
	ebitenutil.DebugPrintAt(screen, line, 12, height-24)
}
