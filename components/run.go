package components

import (
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/yohamta/donburi"
)

// RunData is the singleton state of one crawl: the generated map, the
// physics world the current room runs in, and progress bookkeeping.
type RunData struct {
	Map   *dungeon.Dungeon
	World *physics.World

	Seed  string
	Depth int

	CurrentRoomID int
	ClearedRooms  map[int]bool
	VisitedRooms  map[int]bool

	// Items already picked up, keyed by room id then item index, so
	// revisiting a room does not respawn them
	TakenItems map[int]map[int]bool

	// Frames during which doors ignore the player after a transition
	DoorCooldown int

	// Set once the boss dies; spawns the exit hatch
	BossDefeated bool
}

var Run = donburi.NewComponentType[RunData]()

// CurrentRoom returns the room the player is in.
func (r *RunData) CurrentRoom() *dungeon.Room {
	if r.Map == nil {
		return nil
	}
	return r.Map.Rooms[r.CurrentRoomID]
}
