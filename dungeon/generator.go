package dungeon

// Generate builds a dungeon of numRooms rooms. The start room sits at
// the grid center; the rest grow outward breadth-first into free grid
// cells, difficulty rising with grid distance. When a boss room is
// requested the last room placed is promoted. The result is fully
// owned by the caller and, given the same seed, options and stats,
// identical across calls.
func (g *Generator) Generate(numRooms int, opts Options, stats *PlayerStats) *Dungeon {
	cfg := resolveOptions(numRooms, opts)

	d := &Dungeon{
		Rooms:       make(map[int]*Room, cfg.numRooms),
		Connections: make(map[int]map[Direction]int, cfg.numRooms),
		StartRoomID: 0,
		BossRoomID:  -1,
		GridColumns: cfg.gridColumns,
		GridRows:    cfg.gridRows,
		Grid:        emptyGrid(cfg.gridColumns, cfg.gridRows),
	}

	startX, startY := cfg.gridColumns/2, cfg.gridRows/2
	start := g.generateRoom(0, startX, startY, cfg.startRoomDifficulty, cfg, stats)
	start.IsStartRoom = true
	d.Rooms[0] = start
	d.Grid[startY][startX] = 0
	d.Connections[0] = make(map[Direction]int)

	// The start room must hand the player a health item. Rerolling
	// against full synthetic stats forces the needed-type pick.
	if !hasItemType(start.Items, ItemHealth) {
		g.generateItems(start, start.Difficulty, syntheticFullStats())
	}

	g.expandGrid(d, cfg, stats)

	if cfg.includeBossRoom {
		g.promoteBossRoom(d, cfg)
	}

	EnsureConnectivity(d)

	if stats != nil {
		g.rebalanceItems(d, stats)
	}
	return d
}

// expandGrid grows the dungeon breadth-first from the start room. Each
// queued room tries its four directions in shuffled order and claims
// free in-bounds cells until the target count is reached.
func (g *Generator) expandGrid(d *Dungeon, cfg genConfig, stats *PlayerStats) {
	startX, startY := cfg.gridColumns/2, cfg.gridRows/2
	queue := []int{0}
	for len(d.Rooms) < cfg.numRooms && len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		room := d.Rooms[cur]
		for _, dir := range g.shuffledDirections() {
			if len(d.Rooms) >= cfg.numRooms {
				break
			}
			dx, dy := dir.Delta()
			nx, ny := room.GridX+dx, room.GridY+dy
			if nx < 0 || nx >= cfg.gridColumns || ny < 0 || ny >= cfg.gridRows {
				continue
			}
			if d.Grid[ny][nx] != -1 {
				continue
			}
			id := len(d.Rooms)
			difficulty := g.roomDifficulty(cfg, manhattan(nx, ny, startX, startY))
			next := g.generateRoom(id, nx, ny, difficulty, cfg, stats)
			d.Rooms[id] = next
			d.Grid[ny][nx] = id
			d.Connect(cur, id, dir)
			queue = append(queue, id)
		}
	}
}

// generateRoom builds one room: template layout, then enemies, then
// items, in that order so the PRNG stream stays stable.
func (g *Generator) generateRoom(id, gx, gy, difficulty int, cfg genConfig, stats *PlayerStats) *Room {
	room := &Room{
		ID:         id,
		Width:      cfg.width,
		Height:     cfg.height,
		Difficulty: difficulty,
		GridX:      gx,
		GridY:      gy,
	}
	g.generateLayout(room)
	g.generateEnemies(room, difficulty)
	g.generateItems(room, difficulty, stats)
	return room
}

// roomDifficulty scales with grid distance from the start, with a
// small random spread, capped at the configured maximum.
func (g *Generator) roomDifficulty(cfg genConfig, gridDist int) int {
	difficulty := cfg.minDifficulty + gridDist + g.randInt(0, 2)
	if difficulty > cfg.maxDifficulty {
		difficulty = cfg.maxDifficulty
	}
	return difficulty
}

// promoteBossRoom turns the last placed room into the boss room:
// difficulty is forced up, every second enemy is hardened into a
// strong variant, and the boss itself is appended.
func (g *Generator) promoteBossRoom(d *Dungeon, cfg genConfig) {
	id := len(d.Rooms) - 1
	if id == d.StartRoomID {
		return
	}
	room := d.Rooms[id]
	room.IsBossRoom = true
	room.Difficulty = cfg.bossRoomDifficulty
	d.BossRoomID = id

	for i := range room.Enemies {
		if i%2 == 0 {
			room.Enemies[i].Health *= 1.5
			room.Enemies[i].Type = EnemyStrong
		}
	}
	room.Enemies = append(room.Enemies, Enemy{
		X:      room.Width / 2,
		Y:      room.Height / 3,
		Type:   EnemyBoss,
		Health: bossHealth,
		Active: true,
	})
}

// rebalanceItems regenerates items for every room past the start,
// against synthetic stats depleted in proportion to grid distance.
// Farther rooms simulate a worn-down player and skew toward recovery
// items.
func (g *Generator) rebalanceItems(d *Dungeon, stats *PlayerStats) {
	start := d.Rooms[d.StartRoomID]
	for id := 1; id < len(d.Rooms); id++ {
		room := d.Rooms[id]
		dist := manhattan(room.GridX, room.GridY, start.GridX, start.GridY)
		g.generateItems(room, room.Difficulty, depletedStats(stats, dist))
	}
}

// depletedStats scales a player's pools down by grid distance, with
// floors so the fractions never hit zero.
func depletedStats(stats *PlayerStats, gridDist int) *PlayerStats {
	maxHealth := stats.MaxHealth
	if maxHealth <= 0 {
		maxHealth = 100
	}
	maxAmmo := stats.MaxAmmo
	if maxAmmo <= 0 {
		maxAmmo = 50
	}
	healthFrac := 1 - 0.12*float64(gridDist)
	if healthFrac < 0.2 {
		healthFrac = 0.2
	}
	ammoFrac := 1 - 0.15*float64(gridDist)
	if ammoFrac < 0.1 {
		ammoFrac = 0.1
	}
	return &PlayerStats{
		Health:    maxHealth * healthFrac,
		MaxHealth: maxHealth,
		Ammo:      maxAmmo * ammoFrac,
		MaxAmmo:   maxAmmo,
	}
}

// syntheticFullStats is the full-pools stand-in used to force the
// needed-type pick toward health.
func syntheticFullStats() *PlayerStats {
	return &PlayerStats{Health: 100, MaxHealth: 100, Ammo: 50, MaxAmmo: 50}
}

func emptyGrid(cols, rows int) [][]int {
	grid := make([][]int, rows)
	for y := range grid {
		grid[y] = make([]int, cols)
		for x := range grid[y] {
			grid[y][x] = -1
		}
	}
	return grid
}

func manhattan(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
