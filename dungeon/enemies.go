package dungeon

import "math"

// Enemy type names.
const (
	EnemyNormal = "normal"
	EnemyFast   = "fast"
	EnemyStrong = "strong"
	EnemyChaser = "chaser"
	EnemyPatrol = "patrol"
	EnemyFlank  = "flank"
	EnemyAmbush = "ambush"
	EnemyBoss   = "boss"
)

const bossHealth = 300.0

// Enemy placement constraints.
const (
	enemyStartClearance = 180.0
	enemyEdgeMargin     = 40.0
	obstaclePadding     = 20.0
)

func enemyBaseHealth(typ string) float64 {
	switch typ {
	case EnemyFast:
		return 35
	case EnemyStrong:
		return 90
	case EnemyChaser:
		return 45
	case EnemyPatrol:
		return 55
	case EnemyFlank:
		return 40
	case EnemyAmbush:
		return 45
	case EnemyBoss:
		return bossHealth
	default:
		return 50
	}
}

// generateEnemies fills the room with a difficulty-scaled pack. The
// type is rolled before the spot so a failed placement still drops the
// enemy rather than rerolling it somewhere else.
func (g *Generator) generateEnemies(room *Room, difficulty int) {
	room.Enemies = nil
	count := int(2 + math.Sqrt(float64(difficulty))*3 + g.rng.Float64()*2)
	for i := 0; i < count; i++ {
		typ := g.enemyType(difficulty)
		x, y, ok := g.findEnemySpot(room)
		if !ok {
			continue
		}
		room.Enemies = append(room.Enemies, Enemy{
			X:      x,
			Y:      y,
			Type:   typ,
			Health: enemyBaseHealth(typ),
			Active: true,
		})
	}
}

// enemyType rolls a type for the given difficulty. Harder rooms unlock
// the tactical tiers; easy rooms stay on the basic three.
func (g *Generator) enemyType(difficulty int) string {
	sd := math.Sqrt(float64(difficulty))
	if difficulty >= 5 && g.rng.Float64() < 0.1*sd {
		return g.pick(EnemyAmbush, EnemyFlank, EnemyPatrol, EnemyChaser)
	}
	if difficulty >= 3 && g.rng.Float64() < 0.15*sd {
		return g.pick(EnemyChaser, EnemyPatrol, EnemyFast, EnemyStrong)
	}
	switch r := g.rng.Float64(); {
	case r < 0.3:
		return EnemyFast
	case r < 0.55:
		return EnemyStrong
	default:
		return EnemyNormal
	}
}

// findEnemySpot samples positions away from the walls, the player
// spawn and any obstacle. Gives up after the attempt budget.
func (g *Generator) findEnemySpot(room *Room) (float64, float64, bool) {
	sx, sy := room.SpawnPoint()
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		x := g.randFloat(enemyEdgeMargin, room.Width-enemyEdgeMargin)
		y := g.randFloat(enemyEdgeMargin, room.Height-enemyEdgeMargin)
		if math.Hypot(x-sx, y-sy) < enemyStartClearance {
			continue
		}
		if insidePaddedObstacle(room.Obstacles, x, y, obstaclePadding) {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

func insidePaddedObstacle(obstacles []Obstacle, x, y, pad float64) bool {
	for _, o := range obstacles {
		if x >= o.X-pad && x <= o.X+o.Width+pad && y >= o.Y-pad && y <= o.Y+o.Height+pad {
			return true
		}
	}
	return false
}
