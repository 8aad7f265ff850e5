package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the run summary and waits for a restart
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	stats        components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a game over scene showing the given run stats
func NewGameOverScene(sc SceneChanger, stats components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, stats: stats}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Restart honors a fixed -seed flag; otherwise each run rolls fresh
	createCrawlScene := func() interface{} {
		return NewCrawlScene(gs.sceneChanger, cfg.Debug.Seed)
	}

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createCrawlScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	// Seed the singleton the renderer reads
	ent := gs.ecs.World.Entry(gs.ecs.World.Create(components.GameOver))
	components.GameOver.SetValue(ent, gs.stats)
}
