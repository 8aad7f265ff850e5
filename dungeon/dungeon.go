// Package dungeon builds seeded, connected room layouts: a grid-based
// graph of rooms populated with obstacles, enemies and items, scaled
// by difficulty. All randomness flows through one injected PRNG, so a
// seed reproduces a dungeon exactly.
package dungeon

// Direction is a cardinal grid direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections lists the four directions in fixed order. Iterating
// this instead of connection maps keeps traversals deterministic.
var AllDirections = [4]Direction{North, East, South, West}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the grid step for the direction. North is negative Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// Obstacle is an axis-aligned block inside a room.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Enemy is a spawned enemy record. Health is the spawn value; the host
// game owns it afterwards.
type Enemy struct {
	X, Y   float64
	Type   string
	Health float64
	Active bool
}

// Item is a pickup placed in a room. Effect is the type-specific
// payload: hit points for health, rounds for ammo, a multiplier for
// the buffs.
type Item struct {
	X, Y   float64
	Type   string
	Color  string
	Radius float64
	Effect float64
}

// PlayerStats feeds item generation: depleted stats bias the item pool
// toward recovery.
type PlayerStats struct {
	Health, MaxHealth float64
	Ammo, MaxAmmo     float64
}

// Room is one generated room. Rooms are produced once per generation
// call; the host mutates only enemy and item state during play.
type Room struct {
	ID            int
	Width, Height float64
	Difficulty    int
	Obstacles     []Obstacle
	Enemies       []Enemy
	Items         []Item
	Template      string
	GridX, GridY  int
	IsStartRoom   bool
	IsBossRoom    bool
}

// SpawnPoint returns the room center, where the player enters.
func (r *Room) SpawnPoint() (x, y float64) {
	return r.Width / 2, r.Height / 2
}

// Dungeon is the generated room graph. BossRoomID is -1 when no boss
// room was placed. Grid is indexed [row][column] and holds room ids,
// -1 for empty cells.
type Dungeon struct {
	Rooms       map[int]*Room
	Connections map[int]map[Direction]int
	StartRoomID int
	BossRoomID  int
	Grid        [][]int
	GridColumns int
	GridRows    int
}

// Connect records a bidirectional edge between rooms a and b, with dir
// read from a's side.
func (d *Dungeon) Connect(a, b int, dir Direction) {
	if d.Connections[a] == nil {
		d.Connections[a] = make(map[Direction]int)
	}
	if d.Connections[b] == nil {
		d.Connections[b] = make(map[Direction]int)
	}
	d.Connections[a][dir] = b
	d.Connections[b][dir.Opposite()] = a
}

// Neighbor returns the room connected to roomID in the given
// direction.
func (d *Dungeon) Neighbor(roomID int, dir Direction) (int, bool) {
	next, ok := d.Connections[roomID][dir]
	return next, ok
}

// Reachable walks the connection graph from the start room and returns
// the set of visited room ids.
func (d *Dungeon) Reachable() map[int]bool {
	seen := map[int]bool{d.StartRoomID: true}
	queue := []int{d.StartRoomID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dir := range AllDirections {
			next, ok := d.Connections[cur][dir]
			if ok && !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}
