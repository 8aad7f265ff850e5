package factory

import (
	"image/color"
	"testing"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 128, B: 0, A: 255}, parseHexColor("#ff8000"))
	assert.Equal(t, color.RGBA{R: 255, G: 128, B: 0, A: 255}, parseHexColor("#FF8000"))
	assert.Equal(t, color.RGBA{A: 255}, parseHexColor("#000000"))

	assert.Equal(t, cfg.White, parseHexColor("ff8000"), "missing hash falls back to white")
	assert.Equal(t, cfg.White, parseHexColor("#zzzzzz"))
	assert.Equal(t, cfg.White, parseHexColor("#fff"))
	assert.Equal(t, cfg.White, parseHexColor(""))
}

func TestBuildMap_SameSeedSameDepthIsIdentical(t *testing.T) {
	a := BuildMap("vault", 2, nil)
	b := BuildMap("vault", 2, nil)

	require.Equal(t, len(a.Rooms), len(b.Rooms))
	assert.Equal(t, a.StartRoomID, b.StartRoomID)
	assert.Equal(t, a.BossRoomID, b.BossRoomID)
	for id, room := range a.Rooms {
		other := b.Rooms[id]
		require.NotNil(t, other, "room %d", id)
		assert.Equal(t, room.Template, other.Template, "room %d", id)
		assert.Equal(t, room.Difficulty, other.Difficulty, "room %d", id)
		assert.Len(t, other.Enemies, len(room.Enemies), "room %d", id)
		assert.Len(t, other.Items, len(room.Items), "room %d", id)
	}
}

func TestBuildMap_RoomCountGrowsWithDepthUpToTheCap(t *testing.T) {
	assert.Len(t, BuildMap("vault", 1, nil).Rooms, cfg.Dungeon.BaseRooms)
	assert.Len(t, BuildMap("vault", 2, nil).Rooms, cfg.Dungeon.BaseRooms+cfg.Dungeon.RoomsPerDepth)
	assert.Len(t, BuildMap("vault", 9, nil).Rooms, cfg.Dungeon.MaxRooms)
}

func TestBuildMap_DifficultyWindowTracksDepth(t *testing.T) {
	d := BuildMap("vault", 4, nil)

	for _, room := range d.Rooms {
		if room.IsBossRoom {
			assert.Equal(t, dungeon.DefaultBossDifficulty, room.Difficulty)
			continue
		}
		assert.GreaterOrEqual(t, room.Difficulty, 4, "room %d", room.ID)
		assert.LessOrEqual(t, room.Difficulty, 4+cfg.Dungeon.DifficultySpan, "room %d", room.ID)
	}
}

func TestBuildMap_EveryDepthIncludesABossRoom(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		d := BuildMap("vault", depth, nil)

		require.GreaterOrEqual(t, d.BossRoomID, 0, "depth %d", depth)
		assert.True(t, d.Rooms[d.BossRoomID].IsBossRoom, "depth %d", depth)
	}
}

func TestBuildMap_StartRoomAlwaysHandsOutHealing(t *testing.T) {
	for _, seed := range []string{"a", "b", "c"} {
		d := BuildMap(seed, 1, nil)
		start := d.Rooms[d.StartRoomID]

		found := false
		for _, item := range start.Items {
			if item.Type == dungeon.ItemHealth {
				found = true
			}
		}
		assert.True(t, found, "seed %s", seed)
	}
}

func TestCreateProjectile_FliesFrictionFree(t *testing.T) {
	e := newECS()

	entry := CreateProjectile(e, physics.Vec2{X: 100, Y: 100}, physics.Vec2{Y: 3}, 12, true)

	body := components.Body.Get(entry)
	require.NotNil(t, body.Friction, "floor friction override must be pinned")
	assert.Zero(t, *body.Friction)
	assert.True(t, body.IgnoreGravity)
	assert.InDelta(t, cfg.Combat.ShotSpeed, body.Velocity.Length(), 1e-9)
	assert.Greater(t, body.Position.Y, 100.0, "muzzle offset lands along the aim direction")

	proj := components.Projectile.Get(entry)
	assert.Equal(t, 12.0, proj.Damage)
	assert.True(t, proj.Critical)
}

func TestCreateProjectile_ZeroAimDefaultsRight(t *testing.T) {
	e := newECS()

	entry := CreateProjectile(e, physics.Vec2{X: 100, Y: 100}, physics.Vec2{}, 12, false)

	body := components.Body.Get(entry)
	assert.Positive(t, body.Velocity.X)
	assert.Zero(t, body.Velocity.Y)
}

func TestCreateEnemy_BossSpawnsWithTheBossTag(t *testing.T) {
	e := newECS()

	entry := CreateEnemy(e, dungeon.Enemy{X: 10, Y: 20, Type: dungeon.EnemyBoss, Health: 300})

	assert.True(t, entry.HasComponent(tags.Boss))
	assert.Equal(t, 300.0, components.Health.Get(entry).Current)
	assert.Equal(t, cfg.StateNone, components.State.Get(entry).CurrentState,
		"the AI system picks the opening state on first update")
}

func TestCreateEnemy_UnknownTypeFallsBackToNormal(t *testing.T) {
	e := newECS()

	entry := CreateEnemy(e, dungeon.Enemy{X: 10, Y: 20, Type: "glitch", Health: 30})

	enemy := components.Enemy.Get(entry)
	assert.Equal(t, cfg.Enemy.Types[dungeon.EnemyNormal].Radius, enemy.TypeConfig.Radius)
}

func TestCreateItem_RemembersItsRoomSlot(t *testing.T) {
	e := newECS()

	entry := CreateItem(e, dungeon.Item{X: 50, Y: 60, Type: dungeon.ItemAmmo, Color: "#10e0b0", Radius: 7, Effect: 5}, 3, 1)

	item := components.Item.Get(entry)
	assert.Equal(t, 3, item.RoomID)
	assert.Equal(t, 1, item.Index)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0xe0, B: 0xb0, A: 255}, item.Color)
	assert.False(t, components.Body.Get(entry).Active, "pickups are overlap zones, not colliders")
	assert.NotNil(t, components.Tween.Get(entry), "bob tween rides along")
}
