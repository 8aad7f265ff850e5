package systems

import (
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/systems/factory"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// entryInset is how far inside the border a player lands after a door.
const entryInset = 56.0

func getRun(ecs *ecs.ECS) *components.RunData {
	entry, ok := components.Run.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Run.Get(entry)
}

// UpdateRooms drives the room lifecycle: door cooldowns, clear
// detection, the boss hatch, and transitions between rooms.
func UpdateRooms(ecs *ecs.ECS) {
	run := getRun(ecs)
	if run == nil {
		return
	}
	if run.DoorCooldown > 0 {
		run.DoorCooldown--
	}

	markCleared(ecs, run)
	maybeSpawnHatch(ecs, run)
	keepEnemiesInside(ecs, run)
	handleDoors(ecs, run)
	handleHatch(ecs, run)
}

// LoadCurrentRoom tears down the active room's entities and spawns the
// run's current room: border walls with door gaps, obstacles, enemies
// (unless the room was cleared on an earlier visit), the items not yet
// picked up, and the hatch if the boss already fell. Environment
// patches are stamped into the physics world at the same time.
func LoadCurrentRoom(ecs *ecs.ECS) {
	run := getRun(ecs)
	if run == nil {
		return
	}
	room := run.CurrentRoom()
	if room == nil {
		return
	}

	despawnRoomEntities(ecs)

	doors := run.Map.Connections[room.ID]
	for _, r := range wallSegments(room.Width, room.Height, cfg.Physics.WallThickness, cfg.Dungeon.DoorWidth, doors) {
		factory.CreateWall(ecs, r)
	}
	for dir, target := range doors {
		factory.CreateDoor(ecs, dir, target, doorRect(dir, room.Width, room.Height, cfg.Physics.WallThickness, cfg.Dungeon.DoorWidth))
	}
	for _, ob := range room.Obstacles {
		factory.CreateObstacle(ecs, ob)
	}
	if !run.ClearedRooms[room.ID] {
		for _, spawn := range room.Enemies {
			if spawn.Active {
				factory.CreateEnemy(ecs, spawn)
			}
		}
	}
	for i, item := range room.Items {
		if !run.TakenItems[room.ID][i] {
			factory.CreateItem(ecs, item, room.ID, i)
		}
	}
	if room.IsBossRoom && run.BossDefeated {
		x, y := room.SpawnPoint()
		factory.CreateHatch(ecs, x, y)
	}

	run.World.Areas = roomAreas(room)
	run.VisitedRooms[room.ID] = true
}

func despawnRoomEntities(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	}
	tags.Wall.Each(ecs.World, collect)
	tags.Door.Each(ecs.World, collect)
	tags.Obstacle.Each(ecs.World, collect)
	tags.Enemy.Each(ecs.World, collect)
	tags.Item.Each(ecs.World, collect)
	tags.Projectile.Each(ecs.World, collect)
	tags.Hatch.Each(ecs.World, collect)
	for _, e := range toRemove {
		e.Remove()
	}
}

// markCleared flags the current room once its last enemy is gone,
// which unlocks the doors.
func markCleared(ecs *ecs.ECS, run *components.RunData) {
	if run.ClearedRooms[run.CurrentRoomID] || !run.VisitedRooms[run.CurrentRoomID] {
		return
	}
	alive := 0
	tags.Enemy.Each(ecs.World, func(*donburi.Entry) {
		alive++
	})
	if alive == 0 {
		run.ClearedRooms[run.CurrentRoomID] = true
	}
}

func maybeSpawnHatch(ecs *ecs.ECS, run *components.RunData) {
	room := run.CurrentRoom()
	if room == nil || !room.IsBossRoom || !run.BossDefeated {
		return
	}
	if _, ok := tags.Hatch.First(ecs.World); ok {
		return
	}
	x, y := room.SpawnPoint()
	factory.CreateHatch(ecs, x, y)
}

// keepEnemiesInside treats door gaps as walls for enemies. Only the
// player may leave a room.
func keepEnemiesInside(ecs *ecs.ECS, run *components.RunData) {
	var doorBodies []*physics.Body
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		doorBodies = append(doorBodies, components.Body.Get(e).Body)
	})
	if len(doorBodies) == 0 {
		return
	}
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e).Body
		for _, door := range doorBodies {
			if run.World.CheckBodies(body, door) {
				run.World.Resolve(body, door)
			}
		}
	})
}

// handleDoors blocks the player at doors while the room is uncleared
// or the transition cooldown is running, and otherwise moves the run
// to the adjacent room the moment the player steps into a gap.
func handleDoors(ecs *ecs.ECS, run *components.RunData) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerBody := components.Body.Get(playerEntry)
	locked := !run.ClearedRooms[run.CurrentRoomID]

	target := -1
	var via dungeon.Direction
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		doorBody := components.Body.Get(e)
		if !run.World.CheckBodies(playerBody.Body, doorBody.Body) {
			return
		}
		if locked || run.DoorCooldown > 0 {
			run.World.Resolve(playerBody.Body, doorBody.Body)
			return
		}
		door := components.Door.Get(e)
		target = door.TargetRoomID
		via = door.Direction
	})
	if target >= 0 {
		transition(ecs, run, target, via)
	}
}

func transition(ecs *ecs.ECS, run *components.RunData, targetID int, via dungeon.Direction) {
	run.CurrentRoomID = targetID
	run.DoorCooldown = cfg.Dungeon.DoorCooldown
	LoadCurrentRoom(ecs)

	room := run.CurrentRoom()
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || room == nil {
		return
	}
	body := components.Body.Get(playerEntry)
	body.Position = entryPoint(via.Opposite(), room.Width, room.Height)
	body.Velocity = physics.Vec2{}
	snapCamera(ecs, body.Position)
}

func handleHatch(ecs *ecs.ECS, run *components.RunData) {
	hatchEntry, ok := tags.Hatch.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerBody := components.Body.Get(playerEntry)
	hatchBody := components.Body.Get(hatchEntry)
	if run.World.CheckBodies(playerBody.Body, hatchBody.Body) {
		descend(ecs, run)
	}
}

// descend rebuilds the run one depth down. Rooms grow in number and
// difficulty with depth, and item generation reads the player's
// current stats so a battered player finds more recovery on the next
// floor.
func descend(ecs *ecs.ECS, run *components.RunData) {
	run.Depth++
	run.BossDefeated = false
	run.ClearedRooms = make(map[int]bool)
	run.VisitedRooms = make(map[int]bool)
	run.TakenItems = make(map[int]map[int]bool)

	run.Map = factory.BuildMap(run.Seed, run.Depth, playerStats(ecs))
	run.CurrentRoomID = run.Map.StartRoomID
	run.DoorCooldown = cfg.Dungeon.DoorCooldown
	LoadCurrentRoom(ecs)

	room := run.CurrentRoom()
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || room == nil {
		return
	}
	body := components.Body.Get(playerEntry)
	x, y := room.SpawnPoint()
	body.Position = physics.Vec2{X: x, Y: y}
	body.Velocity = physics.Vec2{}
	snapCamera(ecs, body.Position)
	TriggerScreenShake(ecs, cfg.ScreenShake.BossChargeIntensity, cfg.ScreenShake.BossChargeDuration)
}

func playerStats(ecs *ecs.ECS) *dungeon.PlayerStats {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	return &dungeon.PlayerStats{
		Health:    health.Current,
		MaxHealth: health.Max,
		Ammo:      player.Ammo,
		MaxAmmo:   player.MaxAmmo,
	}
}

// wallSegments returns the border wall rectangles for a room, leaving
// a centered gap on every side that has a door.
func wallSegments(w, h, thickness, doorWidth float64, doors map[dungeon.Direction]int) []physics.Rect {
	segs := make([]physics.Rect, 0, 8)

	horizontal := func(y float64, hasDoor bool) {
		if !hasDoor {
			segs = append(segs, physics.Rect{X: 0, Y: y, Width: w, Height: thickness})
			return
		}
		lo, hi := (w-doorWidth)/2, (w+doorWidth)/2
		segs = append(segs,
			physics.Rect{X: 0, Y: y, Width: lo, Height: thickness},
			physics.Rect{X: hi, Y: y, Width: w - hi, Height: thickness},
		)
	}
	vertical := func(x float64, hasDoor bool) {
		if !hasDoor {
			segs = append(segs, physics.Rect{X: x, Y: 0, Width: thickness, Height: h})
			return
		}
		lo, hi := (h-doorWidth)/2, (h+doorWidth)/2
		segs = append(segs,
			physics.Rect{X: x, Y: 0, Width: thickness, Height: lo},
			physics.Rect{X: x, Y: hi, Width: thickness, Height: h - hi},
		)
	}

	_, hasNorth := doors[dungeon.North]
	_, hasSouth := doors[dungeon.South]
	_, hasWest := doors[dungeon.West]
	_, hasEast := doors[dungeon.East]
	horizontal(0, hasNorth)
	horizontal(h-thickness, hasSouth)
	vertical(0, hasWest)
	vertical(w-thickness, hasEast)
	return segs
}

// doorRect is the rectangle filling the wall gap for a door on the
// given side.
func doorRect(dir dungeon.Direction, w, h, thickness, doorWidth float64) physics.Rect {
	switch dir {
	case dungeon.North:
		return physics.Rect{X: (w - doorWidth) / 2, Y: 0, Width: doorWidth, Height: thickness}
	case dungeon.South:
		return physics.Rect{X: (w - doorWidth) / 2, Y: h - thickness, Width: doorWidth, Height: thickness}
	case dungeon.West:
		return physics.Rect{X: 0, Y: (h - doorWidth) / 2, Width: thickness, Height: doorWidth}
	default:
		return physics.Rect{X: w - thickness, Y: (h - doorWidth) / 2, Width: thickness, Height: doorWidth}
	}
}

// entryPoint is where the player lands after coming through the door
// on the given side.
func entryPoint(side dungeon.Direction, w, h float64) physics.Vec2 {
	switch side {
	case dungeon.North:
		return physics.Vec2{X: w / 2, Y: entryInset}
	case dungeon.South:
		return physics.Vec2{X: w / 2, Y: h - entryInset}
	case dungeon.West:
		return physics.Vec2{X: entryInset, Y: h / 2}
	default:
		return physics.Vec2{X: w - entryInset, Y: h / 2}
	}
}

// roomAreas derives environment patches from room data: cross rooms
// keep a water pool in the center gap, maze rooms a mud strip between
// the two walls, and the boss room floor is iced wall to wall.
func roomAreas(room *dungeon.Room) []*physics.Area {
	if room.IsBossRoom {
		m := cfg.EnvPatch.BossIceMargin
		ice := physics.Environments[physics.EnvIce]
		return []*physics.Area{{
			Bounds:   physics.Rect{X: m, Y: m, Width: room.Width - 2*m, Height: room.Height - 2*m},
			Friction: ice.Friction,
			Gravity:  ice.Gravity,
			Type:     physics.EnvIce,
		}}
	}
	switch room.Template {
	case dungeon.TemplateCross:
		s := cfg.EnvPatch.WaterPoolSize
		water := physics.Environments[physics.EnvWater]
		return []*physics.Area{{
			Bounds:   physics.Rect{X: (room.Width - s) / 2, Y: (room.Height - s) / 2, Width: s, Height: s},
			Friction: water.Friction,
			Gravity:  water.Gravity,
			Type:     physics.EnvWater,
		}}
	case dungeon.TemplateMaze:
		sw := cfg.EnvPatch.MudStripWidth
		mud := physics.Environments[physics.EnvMud]
		return []*physics.Area{{
			Bounds:   physics.Rect{X: (room.Width - sw) / 2, Y: 0, Width: sw, Height: room.Height},
			Friction: mud.Friction,
			Gravity:  mud.Gravity,
			Type:     physics.EnvMud,
		}}
	}
	return nil
}
