package dungeon

// EnsureConnectivity stitches unreachable rooms back onto the start
// room's component. Each pass reattaches the lowest-numbered orphan to
// the grid-nearest reachable room, then rechecks, so chained orphans
// come home one by one. Stitched doors may cross non-adjacent cells;
// reachability wins over grid purity.
func EnsureConnectivity(d *Dungeon) {
	for i := 0; i < len(d.Rooms); i++ {
		reached := d.Reachable()
		if len(reached) >= len(d.Rooms) {
			return
		}

		orphan := -1
		for id := 0; id < len(d.Rooms); id++ {
			if !reached[id] {
				orphan = id
				break
			}
		}
		if orphan < 0 {
			return
		}

		target := nearestReached(d, reached, orphan)
		if target < 0 {
			return
		}
		d.Connect(orphan, target, stitchDirection(d.Rooms[orphan], d.Rooms[target]))
	}
}

// nearestReached finds the reachable room closest to the orphan in
// grid distance. Ties go to the lower room id.
func nearestReached(d *Dungeon, reached map[int]bool, orphan int) int {
	o := d.Rooms[orphan]
	target, best := -1, 0
	for id := 0; id < len(d.Rooms); id++ {
		if !reached[id] {
			continue
		}
		r := d.Rooms[id]
		dist := manhattan(o.GridX, o.GridY, r.GridX, r.GridY)
		if target < 0 || dist < best {
			target, best = id, dist
		}
	}
	return target
}

// stitchDirection picks the door side from the dominant grid axis
// between the two rooms, east and south winning exact ties.
func stitchDirection(from, to *Room) Direction {
	dx := to.GridX - from.GridX
	dy := to.GridY - from.GridY
	if abs(dx) > abs(dy) {
		if dx >= 0 {
			return East
		}
		return West
	}
	if dy >= 0 {
		return South
	}
	return North
}
