package systems

import (
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/automoto/vaultrush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems advances pickup bobbing and applies pickups the player
// walks over.
func UpdateItems(ecs *ecs.ECS) {
	advanceBobTweens(ecs)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerBody := components.Body.Get(playerEntry)
	playerShape := playerBody.CollisionShape()
	if playerShape == nil {
		return
	}

	var picked []*donburi.Entry
	tags.Item.Each(ecs.World, func(e *donburi.Entry) {
		itemBody := components.Body.Get(e)
		shape := itemBody.CollisionShape()
		if shape == nil || !physics.Check(playerShape, shape) {
			return
		}
		applyPickup(playerEntry, player, components.Item.Get(e))
		picked = append(picked, e)
	})

	run := getRun(ecs)
	for _, e := range picked {
		if run != nil {
			item := components.Item.Get(e)
			if run.TakenItems[item.RoomID] == nil {
				run.TakenItems[item.RoomID] = make(map[int]bool)
			}
			run.TakenItems[item.RoomID][item.Index] = true
		}
		e.Remove()
	}
}

func advanceBobTweens(ecs *ecs.ECS) {
	tags.Item.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw == nil {
			return
		}
		offset, _, seqDone := tw.Update(float32(tickDelta))
		components.Item.Get(e).BobOffset = float64(offset)
		if seqDone {
			tw.Reset()
		}
	})
}

func applyPickup(playerEntry *donburi.Entry, player *components.PlayerData, item *components.ItemData) {
	switch item.Type {
	case dungeon.ItemHealth:
		health := components.Health.Get(playerEntry)
		health.Current += item.Effect
		if health.Current > health.Max {
			health.Current = health.Max
		}
	case dungeon.ItemAmmo:
		player.Ammo += item.Effect
		if player.Ammo > player.MaxAmmo {
			player.Ammo = player.MaxAmmo
		}
	case dungeon.ItemSpeed:
		player.SpeedBoostFrames = cfg.Combat.BoostFrames
		player.SpeedBoostScale = item.Effect
	case dungeon.ItemDamage:
		player.DamageBoostFrames = cfg.Combat.BoostFrames
		player.DamageBoostScale = item.Effect
	case dungeon.ItemShield:
		player.Shield += item.Effect
	}

	TriggerFlash(playerEntry, cfg.Combat.PickupFlashFrames, 0.5, 1, 0.5)
}
