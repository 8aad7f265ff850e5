package scenes

import (
	"image/color"
	"strconv"
	"sync"
	"time"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/systems"
	"github.com/automoto/vaultrush/systems/factory"
	"github.com/automoto/vaultrush/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// CrawlScene plays one run: a seeded dungeon crawled until the player dies
type CrawlScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	seed         string
	lastKills    int
	once         sync.Once
}

// NewCrawlScene creates a crawl scene. An empty seed picks a random one.
func NewCrawlScene(sc SceneChanger, seed string) *CrawlScene {
	return &CrawlScene{sceneChanger: sc, seed: seed}
}

func (cs *CrawlScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	// Snapshot kills while the player entity still exists; death
	// removes it before this scene gets to read the final count.
	if playerEntry, ok := tags.Player.First(cs.ecs.World); ok {
		cs.lastKills = components.Player.Get(playerEntry).Kills
		return
	}

	cs.endRun()
}

func (cs *CrawlScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CrawlScene) configure() {
	if cs.seed == "" {
		cs.seed = randomSeed()
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems in frame order: input before intent, physics after
	// intent, rooms after combat so door state sees this frame's kills
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateItems)
	ecs.AddSystem(systems.UpdateRooms)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateEffects)

	// Renderers back to front
	ecs.AddRenderer(cfg.Default, systems.DrawRoom)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	// Build the run, then place camera and player at the start room
	runEntry := factory.CreateRun(cs.ecs, cs.seed)
	run := components.Run.Get(runEntry)

	x, y := run.CurrentRoom().SpawnPoint()
	factory.CreateCamera(cs.ecs, x, y)
	factory.CreatePlayer(cs.ecs, x, y)
	systems.LoadCurrentRoom(cs.ecs)
}

// endRun records the finished run and hands off to the game over screen
func (cs *CrawlScene) endRun() {
	depth := 1
	seed := cs.seed
	if runEntry, ok := components.Run.First(cs.ecs.World); ok {
		run := components.Run.Get(runEntry)
		depth = run.Depth
		seed = run.Seed
	}

	records, newRecord := systems.RecordRunEnd(depth, cs.lastKills)

	cs.sceneChanger.ChangeScene(NewGameOverScene(cs.sceneChanger, components.GameOverData{
		Depth:     depth,
		Kills:     cs.lastKills,
		BestDepth: records.BestDepth,
		NewRecord: newRecord,
		Seed:      seed,
	}))
}

// randomSeed derives a short shareable seed from the clock
func randomSeed() string {
	return strconv.FormatUint(uint64(time.Now().UnixNano()), 36)
}
