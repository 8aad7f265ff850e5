package dungeon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom() *Room {
	return &Room{Width: DefaultWidth, Height: DefaultHeight}
}

func assertObstacleInBounds(t *testing.T, room *Room, o Obstacle) {
	t.Helper()
	assert.GreaterOrEqual(t, o.X, 0.0)
	assert.GreaterOrEqual(t, o.Y, 0.0)
	assert.LessOrEqual(t, o.X+o.Width, room.Width)
	assert.LessOrEqual(t, o.Y+o.Height, room.Height)
}

func assertCenterClear(t *testing.T, room *Room) {
	t.Helper()
	cx, cy := room.SpawnPoint()
	for _, o := range room.Obstacles {
		inside := cx >= o.X && cx <= o.X+o.Width && cy >= o.Y && cy <= o.Y+o.Height
		assert.False(t, inside, "obstacle %+v covers the spawn point", o)
	}
}

func TestFixedTemplates_ObstacleGeometry(t *testing.T) {
	t.Run("corners", func(t *testing.T) {
		room := testRoom()
		layoutCorners(room)
		require.Len(t, room.Obstacles, 4)
		for _, o := range room.Obstacles {
			assertObstacleInBounds(t, room, o)
		}
		assertCenterClear(t, room)
	})

	t.Run("cross", func(t *testing.T) {
		room := testRoom()
		layoutCross(room)
		require.Len(t, room.Obstacles, 4)
		for _, o := range room.Obstacles {
			assertObstacleInBounds(t, room, o)
		}
		assertCenterClear(t, room)
	})

	t.Run("maze", func(t *testing.T) {
		room := testRoom()
		layoutMaze(room)
		require.Len(t, room.Obstacles, 4)
		for _, o := range room.Obstacles {
			assertObstacleInBounds(t, room, o)
		}
		assertCenterClear(t, room)
	})
}

func TestLayoutPillars_KeepsSpacing(t *testing.T) {
	g := New(testRNG())
	for trial := 0; trial < 20; trial++ {
		room := testRoom()
		g.layoutPillars(room)
		assert.LessOrEqual(t, len(room.Obstacles), 6)

		cx, cy := room.SpawnPoint()
		for i, o := range room.Obstacles {
			assertObstacleInBounds(t, room, o)
			ox, oy := o.X+o.Width/2, o.Y+o.Height/2
			assert.GreaterOrEqual(t, math.Hypot(ox-cx, oy-cy), 150.0, "pillar clears the spawn area")
			for _, p := range room.Obstacles[:i] {
				px, py := p.X+p.Width/2, p.Y+p.Height/2
				assert.GreaterOrEqual(t, math.Hypot(ox-px, oy-py), 100.0, "pillars keep their spacing")
			}
		}
	}
}

func TestLayoutAsymmetric_SizesWithinRange(t *testing.T) {
	g := New(testRNG())
	for trial := 0; trial < 20; trial++ {
		room := testRoom()
		g.layoutAsymmetric(room)
		assert.LessOrEqual(t, len(room.Obstacles), 5)
		for _, o := range room.Obstacles {
			assertObstacleInBounds(t, room, o)
			assert.GreaterOrEqual(t, o.Width, 60.0)
			assert.Less(t, o.Width, 120.0)
			assert.GreaterOrEqual(t, o.Height, 60.0)
			assert.Less(t, o.Height, 120.0)
		}
	}
}

func TestGenerateLayout_CoversAllTemplates(t *testing.T) {
	g := New(testRNG())
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		room := testRoom()
		g.generateLayout(room)
		require.Contains(t, templates, room.Template)
		seen[room.Template] = true
		assertCenterClear(t, room)
	}
	assert.Len(t, seen, len(templates), "every template comes up over 200 rooms")
}

func TestFindObstacleSpot_GivesUpWhenCramped(t *testing.T) {
	g := New(testRNG())
	room := &Room{Width: 200, Height: 200}
	_, _, ok := g.findObstacleSpot(room, 80, 80, 80, 100, 150)
	assert.False(t, ok, "no legal spot exists in a cramped room")
}
