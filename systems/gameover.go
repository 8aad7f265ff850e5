package systems

import (
	"fmt"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createCrawlScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionRestart).JustPressed {
			sceneChanger.ChangeScene(createCrawlScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	// Draw title
	titleFont := fonts.Title.Get()
	title := cfg.GameOver.Title
	titleWidth := len(title) * 20 // Approximate width for title font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	// Draw run stats
	statsFont := fonts.Bold.Get()
	lines := []string{
		fmt.Sprintf("Depth reached: %d", gameOver.Depth),
		fmt.Sprintf("Kills: %d", gameOver.Kills),
		fmt.Sprintf("Best depth: %d", gameOver.BestDepth),
	}
	y := int(cfg.GameOver.StatsY)
	for _, line := range lines {
		lineWidth := len(line) * 12
		x := int((width - float64(lineWidth)) / 2)
		text.Draw(screen, line, statsFont, x, y, cfg.GameOver.TextColor)
		y += 28
	}

	if gameOver.NewRecord {
		record := "NEW RECORD!"
		recordWidth := len(record) * 12
		x := int((width - float64(recordWidth)) / 2)
		text.Draw(screen, record, statsFont, x, y, cfg.Yellow)
		y += 28
	}

	// Seed line lets players share or retry a layout
	seed := fmt.Sprintf("seed %s", gameOver.Seed)
	seedWidth := len(seed) * 7
	text.Draw(screen, seed, fonts.Small.Get(), int((width-float64(seedWidth))/2), y+8, cfg.GameOver.HintColor)

	// Draw restart hint
	hint := cfg.GameOver.ContinueHint
	hintWidth := len(hint) * 12
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, statsFont, hintX, int(cfg.GameOver.HintY), cfg.GameOver.HintColor)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
