package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/fonts"
	"github.com/automoto/vaultrush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player bars, run stats, boss bar and minimap.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	hp := components.Health.Get(playerEntry)

	margin := cfg.UI.Margin
	barW := cfg.UI.BarWidth
	barH := cfg.UI.BarHeight

	// Health bar
	drawBar(screen, margin, margin, barW, barH, hp.Current/hp.Max, cfg.UI.HealthBgColor, cfg.UI.HealthFgColor)

	// Ammo bar under it
	ammoY := margin + barH + 4
	drawBar(screen, margin, ammoY, barW, barH, player.Ammo/player.MaxAmmo, cfg.UI.HealthBgColor, cfg.UI.AmmoFgColor)

	// Shield bar only while a shield is up
	if player.Shield > 0 {
		shieldY := ammoY + barH + 4
		drawBar(screen, margin, shieldY, barW, barH, player.Shield/cfg.Player.MaxHealth, cfg.UI.HealthBgColor, cfg.UI.ShieldFgColor)
	}

	drawRunStats(ecs, screen, player)
	drawBossBar(ecs, screen)
	drawMiniMap(ecs, screen)
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, bg, fg color.RGBA) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fg, false)
}

func drawRunStats(ecs *ecs.ECS, screen *ebiten.Image, player *components.PlayerData) {
	run := getRun(ecs)
	if run == nil {
		return
	}

	font := fonts.Small.Get()
	x := int(cfg.UI.Margin)
	y := int(cfg.UI.Margin + 3*(cfg.UI.BarHeight+4) + 12)
	text.Draw(screen, fmt.Sprintf("DEPTH %d", run.Depth), font, x, y, cfg.White)
	text.Draw(screen, fmt.Sprintf("KILLS %d", player.Kills), font, x, y+16, cfg.White)

	// Active boosts
	boostY := y + 32
	if player.SpeedBoostFrames > 0 {
		text.Draw(screen, "SPEED UP", font, x, boostY, cfg.LightGreen)
		boostY += 16
	}
	if player.DamageBoostFrames > 0 {
		text.Draw(screen, "DAMAGE UP", font, x, boostY, cfg.Purple)
	}
}

func drawBossBar(ecs *ecs.ECS, screen *ebiten.Image) {
	bossEntry, ok := tags.Boss.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(bossEntry)
	if hp.Current <= 0 {
		return
	}

	w := float32(cfg.UI.BossBarWidth)
	h := float32(cfg.UI.BossBarHeight)
	x := float32(screen.Bounds().Dx())/2 - w/2
	y := float32(screen.Bounds().Dy()) - h - 24

	ratio := float32(hp.Current / hp.Max)
	if ratio < 0 {
		ratio = 0
	}
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 45, G: 25, B: 25, A: 255}, false)
	vector.DrawFilledRect(screen, x, y, w*ratio, h, color.RGBA{R: 180, G: 68, B: 60, A: 255}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 220, G: 175, B: 165, A: 255}, false)

	text.Draw(screen, cfg.Enemy.Types[dungeon.EnemyBoss].Name, fonts.Small.Get(), int(x), int(y)-6, cfg.White)
}

// drawMiniMap sketches the floor layout in the top right corner.
func drawMiniMap(ecs *ecs.ECS, screen *ebiten.Image) {
	run := getRun(ecs)
	if run == nil || len(run.Map.Rooms) == 0 {
		return
	}

	minGX, minGY := run.Map.GridColumns, run.Map.GridRows
	maxGX := 0
	for _, room := range run.Map.Rooms {
		if room.GridX < minGX {
			minGX = room.GridX
		}
		if room.GridY < minGY {
			minGY = room.GridY
		}
		if room.GridX > maxGX {
			maxGX = room.GridX
		}
	}

	cell := float32(12)
	gap := float32(4)
	w := float32(maxGX-minGX+1)*(cell+gap) - gap
	x0 := float32(screen.Bounds().Dx()) - w - 18
	y0 := float32(18)

	for id, room := range run.Map.Rooms {
		x := x0 + float32(room.GridX-minGX)*(cell+gap)
		y := y0 + float32(room.GridY-minGY)*(cell+gap)

		col := color.RGBA{R: 62, G: 58, B: 55, A: 255}
		if run.VisitedRooms[id] {
			col = color.RGBA{R: 120, G: 112, B: 104, A: 255}
		}
		if room.IsBossRoom {
			col = color.RGBA{R: 145, G: 70, B: 70, A: 255}
		}
		if id == run.CurrentRoomID {
			col = color.RGBA{R: 175, G: 210, B: 145, A: 255}
		}
		vector.DrawFilledRect(screen, x, y, cell, cell, col, false)
		vector.StrokeRect(screen, x, y, cell, cell, 1, color.RGBA{R: 30, G: 24, B: 24, A: 255}, false)
	}
}
