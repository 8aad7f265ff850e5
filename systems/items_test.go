package systems

import (
	"testing"

	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func pickupFixture(t *testing.T) (*donburi.Entry, *components.PlayerData) {
	t.Helper()
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Player, components.Health, components.Flash))
	components.Player.SetValue(e, components.PlayerData{Ammo: 10, MaxAmmo: 20})
	components.Health.SetValue(e, components.HealthData{Current: 60, Max: 100})
	return e, components.Player.Get(e)
}

func TestApplyPickup_HealthHealsAndClamps(t *testing.T) {
	e, player := pickupFixture(t)

	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemHealth, Effect: 25})
	assert.Equal(t, 85.0, components.Health.Get(e).Current)

	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemHealth, Effect: 999})
	assert.Equal(t, 100.0, components.Health.Get(e).Current, "capped at max health")
}

func TestApplyPickup_AmmoClampsAtMax(t *testing.T) {
	e, player := pickupFixture(t)

	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemAmmo, Effect: 6})
	assert.Equal(t, 16.0, player.Ammo)

	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemAmmo, Effect: 50})
	assert.Equal(t, 20.0, player.Ammo)
}

func TestApplyPickup_SpeedBoostArmsTheTimer(t *testing.T) {
	e, player := pickupFixture(t)

	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemSpeed, Effect: 1.5})

	assert.Equal(t, cfg.Combat.BoostFrames, player.SpeedBoostFrames)
	assert.Equal(t, 1.5, player.SpeedBoostScale)
}

func TestApplyPickup_DamageBoostArmsTheTimer(t *testing.T) {
	e, player := pickupFixture(t)

	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemDamage, Effect: 2})

	assert.Equal(t, cfg.Combat.BoostFrames, player.DamageBoostFrames)
	assert.Equal(t, 2.0, player.DamageBoostScale)
}

func TestApplyPickup_ShieldStacksWithoutACap(t *testing.T) {
	e, player := pickupFixture(t)

	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemShield, Effect: 30})
	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemShield, Effect: 30})

	assert.Equal(t, 60.0, player.Shield)
}

func TestApplyPickup_FlashesThePlayer(t *testing.T) {
	e, player := pickupFixture(t)

	applyPickup(e, player, &components.ItemData{Type: dungeon.ItemHealth, Effect: 5})

	flash := components.Flash.Get(e)
	assert.Equal(t, cfg.Combat.PickupFlashFrames, flash.Duration)
	assert.Equal(t, float32(1), flash.G, "pickup flash is green")
}
