package systems

import (
	"testing"

	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallSegments_SolidBorderWithoutDoors(t *testing.T) {
	segs := wallSegments(800, 600, 16, 72, nil)

	require.Len(t, segs, 4)
	assert.Contains(t, segs, physics.Rect{X: 0, Y: 0, Width: 800, Height: 16})
	assert.Contains(t, segs, physics.Rect{X: 0, Y: 584, Width: 800, Height: 16})
	assert.Contains(t, segs, physics.Rect{X: 0, Y: 0, Width: 16, Height: 600})
	assert.Contains(t, segs, physics.Rect{X: 784, Y: 0, Width: 16, Height: 600})
}

func TestWallSegments_DoorSplitsWallAroundCenteredGap(t *testing.T) {
	doors := map[dungeon.Direction]int{dungeon.North: 3}

	segs := wallSegments(800, 600, 16, 72, doors)

	require.Len(t, segs, 5)
	assert.Contains(t, segs, physics.Rect{X: 0, Y: 0, Width: 364, Height: 16})
	assert.Contains(t, segs, physics.Rect{X: 436, Y: 0, Width: 364, Height: 16})
}

func TestWallSegments_FourDoorsSplitEveryWall(t *testing.T) {
	doors := map[dungeon.Direction]int{
		dungeon.North: 1,
		dungeon.South: 2,
		dungeon.West:  3,
		dungeon.East:  4,
	}

	segs := wallSegments(800, 600, 16, 72, doors)

	assert.Len(t, segs, 8)
}

func TestDoorRect_FillsTheCenteredGapPerSide(t *testing.T) {
	assert.Equal(t, physics.Rect{X: 364, Y: 0, Width: 72, Height: 16}, doorRect(dungeon.North, 800, 600, 16, 72))
	assert.Equal(t, physics.Rect{X: 364, Y: 584, Width: 72, Height: 16}, doorRect(dungeon.South, 800, 600, 16, 72))
	assert.Equal(t, physics.Rect{X: 0, Y: 264, Width: 16, Height: 72}, doorRect(dungeon.West, 800, 600, 16, 72))
	assert.Equal(t, physics.Rect{X: 784, Y: 264, Width: 16, Height: 72}, doorRect(dungeon.East, 800, 600, 16, 72))
}

func TestDoorRect_DoesNotOverlapTheSplitWall(t *testing.T) {
	for _, dir := range []dungeon.Direction{dungeon.North, dungeon.South, dungeon.West, dungeon.East} {
		door := doorRect(dir, 800, 600, 16, 72)
		segs := wallSegments(800, 600, 16, 72, map[dungeon.Direction]int{dir: 9})

		for _, seg := range segs {
			overlapX := door.X < seg.X+seg.Width && seg.X < door.X+door.Width
			overlapY := door.Y < seg.Y+seg.Height && seg.Y < door.Y+door.Height
			assert.False(t, overlapX && overlapY, "door %v overlaps wall segment %+v", dir, seg)
		}
	}
}

func TestEntryPoint_InsetFromTheArrivalWall(t *testing.T) {
	assert.Equal(t, physics.Vec2{X: 400, Y: entryInset}, entryPoint(dungeon.North, 800, 600))
	assert.Equal(t, physics.Vec2{X: 400, Y: 600 - entryInset}, entryPoint(dungeon.South, 800, 600))
	assert.Equal(t, physics.Vec2{X: entryInset, Y: 300}, entryPoint(dungeon.West, 800, 600))
	assert.Equal(t, physics.Vec2{X: 800 - entryInset, Y: 300}, entryPoint(dungeon.East, 800, 600))
}

func TestRoomAreas_BossRoomIsIcedWallToWall(t *testing.T) {
	room := &dungeon.Room{Width: 800, Height: 600, IsBossRoom: true, Template: dungeon.TemplateCross}

	areas := roomAreas(room)

	require.Len(t, areas, 1)
	m := cfg.EnvPatch.BossIceMargin
	assert.Equal(t, physics.EnvIce, areas[0].Type)
	assert.Equal(t, physics.Rect{X: m, Y: m, Width: 800 - 2*m, Height: 600 - 2*m}, areas[0].Bounds)
	assert.Equal(t, physics.Environments[physics.EnvIce].Friction, areas[0].Friction)
}

func TestRoomAreas_CrossRoomsCarryACenteredWaterPool(t *testing.T) {
	room := &dungeon.Room{Width: 800, Height: 600, Template: dungeon.TemplateCross}

	areas := roomAreas(room)

	require.Len(t, areas, 1)
	s := cfg.EnvPatch.WaterPoolSize
	assert.Equal(t, physics.EnvWater, areas[0].Type)
	assert.Equal(t, physics.Rect{X: (800 - s) / 2, Y: (600 - s) / 2, Width: s, Height: s}, areas[0].Bounds)
	assert.Equal(t, physics.Environments[physics.EnvWater].Gravity, areas[0].Gravity)
}

func TestRoomAreas_MazeRoomsCarryAFullHeightMudStrip(t *testing.T) {
	room := &dungeon.Room{Width: 800, Height: 600, Template: dungeon.TemplateMaze}

	areas := roomAreas(room)

	require.Len(t, areas, 1)
	sw := cfg.EnvPatch.MudStripWidth
	assert.Equal(t, physics.EnvMud, areas[0].Type)
	assert.Equal(t, physics.Rect{X: (800 - sw) / 2, Y: 0, Width: sw, Height: 600}, areas[0].Bounds)
}

func TestRoomAreas_PlainTemplatesHaveNoPatches(t *testing.T) {
	for _, tmpl := range []string{dungeon.TemplateEmpty, dungeon.TemplateCorners, dungeon.TemplatePillars, dungeon.TemplateAsymmetric} {
		room := &dungeon.Room{Width: 800, Height: 600, Template: tmpl}
		assert.Nil(t, roomAreas(room), "template %s", tmpl)
	}
}
