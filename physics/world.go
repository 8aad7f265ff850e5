// Package physics implements the collision and movement core: shape
// intersection tests, collision resolution, knockback forces,
// raycasting and environment-driven velocity integration.
//
// Every function is total. Degenerate input (zero-length vectors,
// coincident centers, parallel rays) produces a defined neutral result
// rather than a panic or an error.
package physics

// World carries the state one simulation needs: global friction and
// gravity, restitution, and the environment areas active in the
// current space. Worlds are independent of each other; nothing in this
// package lives at package level besides the preset table.
type World struct {
	Friction          float64
	Gravity           Vec2
	Elasticity        float64 // restitution in [0, 1]
	VelocityThreshold float64 // speeds below this are zeroed by friction

	EnvironmentName string
	Areas           []*Area
}

// NewWorld returns a world running the "normal" environment preset.
func NewWorld() *World {
	w := &World{
		Elasticity:        0.5,
		VelocityThreshold: 0.1,
	}
	w.SetEnvironment(EnvNormal)
	return w
}

// SetEnvironment installs a named preset's friction and gravity as the
// world defaults. Unknown names leave the world unchanged and return
// false.
func (w *World) SetEnvironment(name string) bool {
	env, ok := Environments[name]
	if !ok {
		return false
	}
	w.EnvironmentName = name
	w.Friction = env.Friction
	w.Gravity = env.Gravity
	return true
}
