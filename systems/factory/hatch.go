package factory

import (
	"github.com/automoto/vaultrush/archetypes"
	"github.com/automoto/vaultrush/components"
	"github.com/automoto/vaultrush/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hatchRadius = 18.0

// CreateHatch spawns the descent hatch the boss leaves behind.
func CreateHatch(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	hatch := archetypes.Hatch.Spawn(ecs)

	body := physics.NewBody(physics.Vec2{X: x, Y: y}, physics.Circle{Radius: hatchRadius})
	body.Active = false
	components.Body.SetValue(hatch, components.BodyData{Body: body})
	components.Hatch.SetValue(hatch, components.HatchData{})

	// The hatch breathes on a looping tween
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 3, 1.2, ease.InOutQuad),
		gween.New(3, 0, 1.2, ease.InOutQuad),
	)
	components.Tween.Set(hatch, tw)

	return hatch
}
