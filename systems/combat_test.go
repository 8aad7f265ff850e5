package systems

import (
	"testing"

	"github.com/automoto/vaultrush/components"
	"github.com/automoto/vaultrush/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestQueueDamage_AttachesAnEvent(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Health))

	queueDamage(e, components.DamageEventData{Amount: 10, Origin: physics.Vec2{X: 5}, Force: 2})

	require.True(t, e.HasComponent(components.DamageEvent))
	ev := components.DamageEvent.Get(e)
	assert.Equal(t, 10.0, ev.Amount)
	assert.Equal(t, physics.Vec2{X: 5}, ev.Origin)
}

func TestQueueDamage_MergesHitsLandedTheSameFrame(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(components.Health))

	queueDamage(e, components.DamageEventData{Amount: 10, Origin: physics.Vec2{X: 1}, Force: 3})
	queueDamage(e, components.DamageEventData{Amount: 4, Origin: physics.Vec2{X: 9}, Force: 1, Critical: true})

	ev := components.DamageEvent.Get(e)
	assert.Equal(t, 14.0, ev.Amount, "amounts add up")
	assert.Equal(t, physics.Vec2{X: 9}, ev.Origin, "latest hit owns the knockback direction")
	assert.Equal(t, 3.0, ev.Force, "strongest push wins")
	assert.True(t, ev.Critical, "a crit anywhere in the frame sticks")
}
