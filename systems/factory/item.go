package factory

import (
	"fmt"
	"image/color"

	"github.com/automoto/vaultrush/archetypes"
	"github.com/automoto/vaultrush/components"
	cfg "github.com/automoto/vaultrush/config"
	"github.com/automoto/vaultrush/dungeon"
	"github.com/automoto/vaultrush/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem spawns a pickup from a generator record. The source room
// and slot ride along so a pickup stays gone when the room is
// revisited.
func CreateItem(ecs *ecs.ECS, item dungeon.Item, roomID, index int) *donburi.Entry {
	e := archetypes.Item.Spawn(ecs)

	body := physics.NewBody(physics.Vec2{X: item.X, Y: item.Y}, physics.Circle{Radius: item.Radius})
	body.Active = false
	components.Body.SetValue(e, components.BodyData{Body: body})

	components.Item.SetValue(e, components.ItemData{
		Type:   item.Type,
		Effect: item.Effect,
		Radius: item.Radius,
		Color:  parseHexColor(item.Color),
		RoomID: roomID,
		Index:  index,
	})

	// Pickups bob in place on a looping tween
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -4, 0.8, ease.InOutQuad),
		gween.New(-4, 0, 0.8, ease.InOutQuad),
	)
	components.Tween.Set(e, tw)

	return e
}

// parseHexColor reads "#rrggbb" into an opaque color. Malformed
// strings come back white.
func parseHexColor(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return cfg.White
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return cfg.White
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
