package systems

import (
	"image/color"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Flat palette for the shape renderer.
var (
	floorColor     = color.RGBA{R: 40, G: 38, B: 46, A: 255}
	floorBossColor = color.RGBA{R: 46, G: 34, B: 38, A: 255}
	wallColor      = color.RGBA{R: 84, G: 80, B: 96, A: 255}
	obstacleColor  = color.RGBA{R: 66, G: 62, B: 78, A: 255}
	outlineColor   = color.RGBA{R: 28, G: 26, B: 34, A: 255}
	doorLocked     = color.RGBA{R: 120, G: 96, B: 80, A: 255}
	doorOpen       = color.RGBA{R: 130, G: 140, B: 95, A: 255}
	waterColor     = color.RGBA{R: 36, G: 70, B: 110, A: 255}
	mudColor       = color.RGBA{R: 70, G: 52, B: 34, A: 255}
	iceColor       = color.RGBA{R: 92, G: 118, B: 138, A: 255}
	hatchColor     = color.RGBA{R: 24, G: 22, B: 28, A: 255}
	hatchRingColor = color.RGBA{R: 175, G: 210, B: 145, A: 255}
	bulletColor    = color.RGBA{R: 180, G: 220, B: 255, A: 255}
	critColor      = color.RGBA{R: 235, G: 215, B: 105, A: 255}
	playerColor    = color.RGBA{R: 220, G: 210, B: 190, A: 255}
	playerDashTint = color.RGBA{R: 205, G: 245, B: 210, A: 255}
	trailColor     = color.RGBA{R: 96, G: 112, B: 104, A: 255}
)

// cameraOffset returns the world-to-screen translation for the
// current camera.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawRoom renders the current room's floor, environment patches,
// walls, obstacles and doors.
func DrawRoom(ecs *ecs.ECS, screen *ebiten.Image) {
	run := getRun(ecs)
	if run == nil {
		return
	}
	room := run.CurrentRoom()
	if room == nil {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	floor := floorColor
	if room.IsBossRoom {
		floor = floorBossColor
	}
	vector.DrawFilledRect(screen, float32(camX), float32(camY), float32(room.Width), float32(room.Height), floor, false)

	// Environment patches sit on the floor, under everything else
	for _, area := range run.World.Areas {
		var c color.RGBA
		switch area.Type {
		case physics.EnvWater:
			c = waterColor
		case physics.EnvMud:
			c = mudColor
		case physics.EnvIce:
			c = iceColor
		default:
			continue
		}
		b := area.Bounds
		vector.DrawFilledRect(screen, float32(b.X+camX), float32(b.Y+camY), float32(b.Width), float32(b.Height), c, false)
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		if r, ok := components.Body.Get(e).CollisionShape().(physics.Rect); ok {
			vector.DrawFilledRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.Width), float32(r.Height), wallColor, false)
		}
	})
	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		if r, ok := components.Body.Get(e).CollisionShape().(physics.Rect); ok {
			vector.DrawFilledRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.Width), float32(r.Height), obstacleColor, false)
			vector.StrokeRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.Width), float32(r.Height), 2, outlineColor, false)
		}
	})

	locked := !run.ClearedRooms[run.CurrentRoomID]
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		r, ok := components.Body.Get(e).CollisionShape().(physics.Rect)
		if !ok {
			return
		}
		c := doorOpen
		if locked {
			c = doorLocked
		}
		vector.DrawFilledRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.Width), float32(r.Height), c, false)
	})
}

// DrawEntities renders pickups, the hatch, projectiles, enemies and
// the player, in that order so the player stays on top.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Culling bounds
	padding := 64.0
	minX := -camX - padding
	maxX := -camX + float64(width) + padding
	minY := -camY - padding
	maxY := -camY + float64(height) + padding
	visible := func(p physics.Vec2) bool {
		return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
	}

	tags.Item.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !visible(body.Position) {
			return
		}
		item := components.Item.Get(e)
		x := float32(body.Position.X + camX)
		y := float32(body.Position.Y + item.BobOffset + camY)
		vector.DrawFilledCircle(screen, x, y, float32(item.Radius), item.Color, false)
		vector.StrokeCircle(screen, x, y, float32(item.Radius), 1.5, outlineColor, false)
	})

	tags.Hatch.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		c, ok := body.CollisionShape().(physics.Circle)
		if !ok {
			return
		}
		x := float32(body.Position.X + camX)
		y := float32(body.Position.Y + camY)
		vector.DrawFilledCircle(screen, x, y, float32(c.Radius), hatchColor, false)
		pulse := components.Hatch.Get(e).Pulse
		vector.StrokeCircle(screen, x, y, float32(c.Radius+4+pulse), 2, hatchRingColor, false)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !visible(body.Position) {
			return
		}
		c := bulletColor
		if components.Projectile.Get(e).Critical {
			c = critColor
		}
		vector.DrawFilledCircle(screen, float32(body.Position.X+camX), float32(body.Position.Y+camY), float32(cfg.Combat.ShotRadius), c, false)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !visible(body.Position) {
			return
		}
		enemy := components.Enemy.Get(e)
		c := enemy.TypeConfig.Color
		// Flicker while invulnerable
		if enemy.InvulnFrames > 0 && enemy.InvulnFrames%4 < 2 {
			c = dimmed(c)
		}
		c = flashColor(e, c)
		vector.DrawFilledCircle(screen, float32(body.Position.X+camX), float32(body.Position.Y+camY), float32(enemy.TypeConfig.Radius), c, false)
	})

	drawPlayer(ecs, screen, camX, camY)
}

func drawPlayer(ecs *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	// Afterimages from the dash trail, oldest faintest
	if d := body.Dash; d != nil {
		for i, p := range d.Trail {
			r := cfg.Player.Radius * float64(i+1) / float64(len(d.Trail)+1)
			vector.DrawFilledCircle(screen, float32(p.X+camX), float32(p.Y+camY), float32(r), trailColor, false)
		}
	}

	c := playerColor
	if body.Dash != nil && body.Dash.Active {
		c = playerDashTint
	}
	if player.InvulnFrames > 0 && player.InvulnFrames%4 < 2 {
		c = dimmed(c)
	}
	c = flashColor(playerEntry, c)

	x := float32(body.Position.X + camX)
	y := float32(body.Position.Y + camY)
	vector.DrawFilledCircle(screen, x, y, float32(cfg.Player.Radius), c, false)

	// Aim tick along the facing direction
	tip := body.Position.Add(player.Facing.Scale(cfg.Player.Radius + 6))
	vector.StrokeLine(screen, x, y, float32(tip.X+camX), float32(tip.Y+camY), 2, c, false)
}

// DrawHealthBars renders small bars above damaged enemies. The boss
// gets its own bar in the HUD instead.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Boss) {
			return
		}
		hp := components.Health.Get(e)
		if hp.Current >= hp.Max {
			return
		}
		body := components.Body.Get(e)
		enemy := components.Enemy.Get(e)

		barWidth := 32.0
		barHeight := 4.0
		barX := body.Position.X - barWidth/2 + camX
		barY := body.Position.Y - enemy.TypeConfig.Radius - barHeight - 6 + camY

		ratio := hp.Current / hp.Max
		if ratio < 0 {
			ratio = 0
		}
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth*ratio), float32(barHeight), cfg.Green, false)
	})
}

func dimmed(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255}
}

// flashColor overrides the base color while a flash is running.
func flashColor(e *donburi.Entry, base color.RGBA) color.RGBA {
	if !e.HasComponent(components.Flash) {
		return base
	}
	flash := components.Flash.Get(e)
	if flash.Duration <= 0 {
		return base
	}
	return color.RGBA{
		R: uint8(255 * flash.R),
		G: uint8(255 * flash.G),
		B: uint8(255 * flash.B),
		A: 255,
	}
}
