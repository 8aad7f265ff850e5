package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_RoundTrips(t *testing.T) {
	for _, dir := range AllDirections {
		assert.Equal(t, dir, dir.Opposite().Opposite())
		dx, dy := dir.Delta()
		ox, oy := dir.Opposite().Delta()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
		assert.Equal(t, 1, abs(dx)+abs(dy), "%s moves one cell", dir)
	}

	dx, dy := North.Delta()
	assert.Equal(t, 0, dx)
	assert.Equal(t, -1, dy, "north is negative y")
	assert.Equal(t, "north", North.String())
	assert.Equal(t, "east", East.String())
}

func TestConnect_BothSides(t *testing.T) {
	d := &Dungeon{
		Rooms:       map[int]*Room{0: {ID: 0}, 1: {ID: 1}},
		Connections: map[int]map[Direction]int{},
	}
	d.Connect(0, 1, East)

	got, ok := d.Neighbor(0, East)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = d.Neighbor(1, West)
	require.True(t, ok)
	assert.Equal(t, 0, got)

	_, ok = d.Neighbor(0, North)
	assert.False(t, ok)
	_, ok = d.Neighbor(9, East)
	assert.False(t, ok, "unknown room has no neighbors")
}

func TestReachable_StopsAtGaps(t *testing.T) {
	d := &Dungeon{
		Rooms:       map[int]*Room{0: {}, 1: {}, 2: {}, 3: {}},
		Connections: map[int]map[Direction]int{},
		StartRoomID: 0,
	}
	d.Connect(0, 1, East)
	d.Connect(2, 3, East)

	reached := d.Reachable()
	assert.True(t, reached[0])
	assert.True(t, reached[1])
	assert.False(t, reached[2])
	assert.False(t, reached[3])
}

func TestSpawnPoint_IsRoomCenter(t *testing.T) {
	r := &Room{Width: 640, Height: 480}
	x, y := r.SpawnPoint()
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 240.0, y)
}
