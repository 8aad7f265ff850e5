package dungeon

import "math"

// Room template names.
const (
	TemplateEmpty      = "empty"
	TemplateCorners    = "corners"
	TemplateCross      = "cross"
	TemplatePillars    = "pillars"
	TemplateAsymmetric = "asymmetric"
	TemplateMaze       = "maze"
)

var templates = [6]string{
	TemplateEmpty,
	TemplateCorners,
	TemplateCross,
	TemplatePillars,
	TemplateAsymmetric,
	TemplateMaze,
}

// maxPlacementAttempts caps every rejection-sampling loop. A placement
// that cannot find room within the budget is skipped.
const maxPlacementAttempts = 20

// generateLayout picks one of the six templates uniformly and fills in
// its obstacles. Every template leaves the center spawn area open.
func (g *Generator) generateLayout(room *Room) {
	room.Template = templates[g.rng.Intn(len(templates))]
	switch room.Template {
	case TemplateEmpty:
		// No obstacles.
	case TemplateCorners:
		layoutCorners(room)
	case TemplateCross:
		layoutCross(room)
	case TemplatePillars:
		g.layoutPillars(room)
	case TemplateAsymmetric:
		g.layoutAsymmetric(room)
	case TemplateMaze:
		layoutMaze(room)
	}
}

// layoutCorners drops one block into each corner.
func layoutCorners(room *Room) {
	const margin, size = 60.0, 80.0
	w, h := room.Width, room.Height
	room.Obstacles = append(room.Obstacles,
		Obstacle{X: margin, Y: margin, Width: size, Height: size},
		Obstacle{X: w - margin - size, Y: margin, Width: size, Height: size},
		Obstacle{X: margin, Y: h - margin - size, Width: size, Height: size},
		Obstacle{X: w - margin - size, Y: h - margin - size, Width: size, Height: size},
	)
}

// layoutCross builds four bars around the center, leaving the spawn
// hole open in the middle.
func layoutCross(room *Room) {
	const thickness, length, hole = 40.0, 100.0, 50.0
	cx, cy := room.Width/2, room.Height/2
	room.Obstacles = append(room.Obstacles,
		Obstacle{X: cx - hole - length, Y: cy - thickness/2, Width: length, Height: thickness},
		Obstacle{X: cx + hole, Y: cy - thickness/2, Width: length, Height: thickness},
		Obstacle{X: cx - thickness/2, Y: cy - hole - length, Width: thickness, Height: length},
		Obstacle{X: cx - thickness/2, Y: cy + hole, Width: thickness, Height: length},
	)
}

// layoutPillars scatters square pillars with minimum spacing, up to 20
// attempts each before a pillar is skipped.
func (g *Generator) layoutPillars(room *Room) {
	count := 4 + g.rng.Intn(3)
	const size, margin, minGap, centerClear = 40.0, 80.0, 100.0, 150.0
	for i := 0; i < count; i++ {
		x, y, ok := g.findObstacleSpot(room, size, size, margin, minGap, centerClear)
		if !ok {
			continue
		}
		room.Obstacles = append(room.Obstacles, Obstacle{X: x, Y: y, Width: size, Height: size})
	}
}

// layoutAsymmetric scatters a few blocks of uneven size.
func (g *Generator) layoutAsymmetric(room *Room) {
	count := 3 + g.rng.Intn(3)
	const margin, minGap, centerClear = 60.0, 60.0, 160.0
	for i := 0; i < count; i++ {
		bw := g.randFloat(60, 120)
		bh := g.randFloat(60, 120)
		x, y, ok := g.findObstacleSpot(room, bw, bh, margin, minGap, centerClear)
		if !ok {
			continue
		}
		room.Obstacles = append(room.Obstacles, Obstacle{X: x, Y: y, Width: bw, Height: bh})
	}
}

// layoutMaze lays a fixed S-corridor: two long vertical walls and two
// horizontal stubs, with the center kept clear.
func layoutMaze(room *Room) {
	const thickness = 30.0
	w, h := room.Width, room.Height
	room.Obstacles = append(room.Obstacles,
		Obstacle{X: w*0.25 - thickness/2, Y: 0, Width: thickness, Height: h * 0.6},
		Obstacle{X: w*0.75 - thickness/2, Y: h * 0.4, Width: thickness, Height: h * 0.6},
		Obstacle{X: w * 0.4, Y: h*0.25 - thickness/2, Width: w * 0.2, Height: thickness},
		Obstacle{X: w * 0.4, Y: h*0.75 - thickness/2, Width: w * 0.2, Height: thickness},
	)
}

// findObstacleSpot rejection-samples a top-left corner for a block of
// the given size, keeping wall margins, spacing from other obstacles
// and the center spawn area. The caller decides what a failed search
// means.
func (g *Generator) findObstacleSpot(room *Room, w, h, margin, minGap, centerClear float64) (float64, float64, bool) {
	if room.Width-margin-w <= margin || room.Height-margin-h <= margin {
		return 0, 0, false
	}
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		x := g.randFloat(margin, room.Width-margin-w)
		y := g.randFloat(margin, room.Height-margin-h)
		cx, cy := x+w/2, y+h/2
		if math.Hypot(cx-room.Width/2, cy-room.Height/2) < centerClear {
			continue
		}
		if tooCloseToObstacles(room.Obstacles, cx, cy, minGap) {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

func tooCloseToObstacles(obstacles []Obstacle, cx, cy, minGap float64) bool {
	for _, o := range obstacles {
		ox, oy := o.X+o.Width/2, o.Y+o.Height/2
		if math.Hypot(cx-ox, cy-oy) < minGap {
			return true
		}
	}
	return false
}
