package factory

import (
	"fmt"

	"github.com/automoto/vaultrush/archetypes"
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun spawns the singleton run entity holding the generated
// dungeon, the physics world and the progress bookkeeping.
func CreateRun(ecs *ecs.ECS, seed string) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)

	world := physics.NewWorld()
	world.Elasticity = cfg.Physics.Elasticity
	world.VelocityThreshold = cfg.Physics.VelocityThreshold

	m := BuildMap(seed, 1, nil)
	components.Run.SetValue(run, components.RunData{
		Map:           m,
		World:         world,
		Seed:          seed,
		Depth:         1,
		CurrentRoomID: m.StartRoomID,
		ClearedRooms:  make(map[int]bool),
		VisitedRooms:  make(map[int]bool),
		TakenItems:    make(map[int]map[int]bool),
	})
	return run
}

// BuildMap generates the dungeon for a depth. Each depth reseeds from
// the run seed so a whole run replays from one string, and deeper
// floors get more rooms in a harder difficulty window.
func BuildMap(seed string, depth int, stats *dungeon.PlayerStats) *dungeon.Dungeon {
	numRooms := cfg.Dungeon.BaseRooms + (depth-1)*cfg.Dungeon.RoomsPerDepth
	if numRooms > cfg.Dungeon.MaxRooms {
		numRooms = cfg.Dungeon.MaxRooms
	}

	minDiff := depth
	if minDiff > dungeon.DefaultMaxDifficulty {
		minDiff = dungeon.DefaultMaxDifficulty
	}
	maxDiff := minDiff + cfg.Dungeon.DifficultySpan
	if maxDiff > dungeon.DefaultMaxDifficulty {
		maxDiff = dungeon.DefaultMaxDifficulty
	}

	gen := dungeon.NewSeeded(fmt.Sprintf("%s#%d", seed, depth))
	return gen.Generate(numRooms, dungeon.Options{
		Width:         cfg.Dungeon.RoomWidth,
		Height:        cfg.Dungeon.RoomHeight,
		MinDifficulty: minDiff,
		MaxDifficulty: maxDiff,
		GridColumns:   cfg.Dungeon.GridCols,
		GridRows:      cfg.Dungeon.GridRows,
	}, stats)
}
