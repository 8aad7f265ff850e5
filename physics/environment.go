package physics

// Environment preset names.
const (
	EnvNormal      = "normal"
	EnvIce         = "ice"
	EnvMud         = "mud"
	EnvSpace       = "space"
	EnvWater       = "water"
	EnvAntigravity = "antigravity"
)

// Environment is a named friction/gravity preset.
type Environment struct {
	Friction float64
	Gravity  Vec2
}

// Environments is the fixed preset table. Callers must treat it as
// read-only.
var Environments = map[string]Environment{
	EnvNormal:      {Friction: 6},
	EnvIce:         {Friction: 0.6},
	EnvMud:         {Friction: 15},
	EnvSpace:       {Friction: 0},
	EnvWater:       {Friction: 10, Gravity: Vec2{Y: 30}},
	EnvAntigravity: {Friction: 6, Gravity: Vec2{Y: -80}},
}

// Area is a rectangular region that overrides friction and gravity for
// bodies inside it. OnEnter and OnExit are caller hooks, invoked
// synchronously from ApplyAreaEffects.
type Area struct {
	Bounds   Rect
	Friction float64
	Gravity  Vec2
	Type     string
	OnEnter  func(*Body)
	OnExit   func(*Body)
}

// ApplyAreaEffects updates b's overrides from the world's areas. The
// body remembers which area it last entered, so OnEnter fires once per
// entry rather than every tick. Leaving an area fires its OnExit and
// clears the overrides, putting the body back on world defaults. When
// areas overlap, the first one in the list wins.
func (w *World) ApplyAreaEffects(b *Body) {
	var active *Area
	for _, a := range w.Areas {
		if a.Bounds.Contains(b.Position) {
			active = a
			break
		}
	}
	if active == b.area {
		return
	}
	if b.area != nil && b.area.OnExit != nil {
		b.area.OnExit(b)
	}
	b.area = active
	if active == nil {
		b.Friction = nil
		b.Gravity = nil
		b.EnvironmentTag = ""
		return
	}
	f := active.Friction
	g := active.Gravity
	b.Friction = &f
	b.Gravity = &g
	b.EnvironmentTag = active.Type
	if active.OnEnter != nil {
		active.OnEnter(b)
	}
}
