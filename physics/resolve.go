package physics

import "math"

// resolveClearance pads circle-rect pushes. Exact contact counts as a
// collision for that pair, so the push must land a hair clear.
const resolveClearance = 0.01

// Resolve pushes entity out of obstacle and adjusts its velocity using
// the world elasticity. Only circle and rect shapes resolve; polygon
// pairs are detect-only.
func (w *World) Resolve(entity, obstacle *Body) {
	es, os := entity.CollisionShape(), obstacle.CollisionShape()
	switch e := es.(type) {
	case Circle:
		switch o := os.(type) {
		case Circle:
			w.resolveCircleCircle(entity, e, o)
		case Rect:
			w.resolveCircleRect(entity, e, o)
		}
	case Rect:
		switch o := os.(type) {
		case Circle:
			w.resolveRectCircle(entity, e, o)
		case Rect:
			w.resolveRectRect(entity, e, o)
		}
	}
}

// resolveCircleRect moves the circle body out along the minimum
// translation vector. A center inside the rect exits along the nearest
// face, pushed clear by the exit distance plus the radius.
func (w *World) resolveCircleRect(entity *Body, c Circle, r Rect) {
	n := r.normalized()
	center := Vec2{c.X, c.Y}
	closest := Vec2{
		X: clamp(center.X, n.X, n.X+n.Width),
		Y: clamp(center.Y, n.Y, n.Y+n.Height),
	}
	delta := center.Sub(closest)
	distSq := delta.LengthSq()

	if distSq == 0 {
		exits := [4]float64{
			center.X - n.X,            // left
			n.X + n.Width - center.X,  // right
			center.Y - n.Y,            // top
			n.Y + n.Height - center.Y, // bottom
		}
		min := 0
		for i := 1; i < len(exits); i++ {
			if exits[i] < exits[min] {
				min = i
			}
		}
		push := exits[min] + c.Radius + resolveClearance
		var normal Vec2
		switch min {
		case 0:
			entity.Position.X -= push
			normal = Vec2{X: -1}
		case 1:
			entity.Position.X += push
			normal = Vec2{X: 1}
		case 2:
			entity.Position.Y -= push
			normal = Vec2{Y: -1}
		case 3:
			entity.Position.Y += push
			normal = Vec2{Y: 1}
		}
		w.reflect(entity, normal)
		return
	}

	dist := math.Sqrt(distSq)
	if dist >= c.Radius {
		return
	}
	normal := delta.Scale(1 / dist)
	entity.Position = entity.Position.Add(normal.Scale(c.Radius - dist + resolveClearance))
	w.reflect(entity, normal)
}

// resolveCircleCircle pushes entity along the inter-center axis by the
// overlap. Coincident centers get a fixed (0.1, 0.1) nudge to break
// the tie.
func (w *World) resolveCircleCircle(entity *Body, a, b Circle) {
	delta := Vec2{a.X - b.X, a.Y - b.Y}
	dist := delta.Length()
	if dist == 0 {
		entity.Position.X += 0.1
		entity.Position.Y += 0.1
		return
	}
	overlap := a.Radius + b.Radius - dist
	if overlap <= 0 {
		return
	}
	normal := delta.Scale(1 / dist)
	entity.Position = entity.Position.Add(normal.Scale(overlap))
	w.reflect(entity, normal)
}

// resolveRectRect separates along the axis of lesser overlap and
// reverses that axis's velocity component.
func (w *World) resolveRectRect(entity *Body, a, b Rect) {
	na, nb := a.normalized(), b.normalized()
	overlapX := math.Min(na.X+na.Width, nb.X+nb.Width) - math.Max(na.X, nb.X)
	overlapY := math.Min(na.Y+na.Height, nb.Y+nb.Height) - math.Max(na.Y, nb.Y)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}
	if overlapX < overlapY {
		if na.X+na.Width/2 < nb.X+nb.Width/2 {
			entity.Position.X -= overlapX
		} else {
			entity.Position.X += overlapX
		}
		entity.Velocity.X = -entity.Velocity.X * w.Elasticity
	} else {
		if na.Y+na.Height/2 < nb.Y+nb.Height/2 {
			entity.Position.Y -= overlapY
		} else {
			entity.Position.Y += overlapY
		}
		entity.Velocity.Y = -entity.Velocity.Y * w.Elasticity
	}
}

// resolveRectCircle delegates to the circle-rect resolution on a proxy
// circle and applies the inverse displacement to the rect. This is an
// approximation, not a symmetric two-body response; the proxy carries
// the rect's velocity so the reflection gate sees the rect's motion.
func (w *World) resolveRectCircle(entity *Body, r Rect, c Circle) {
	proxy := &Body{
		Position: Vec2{c.X, c.Y},
		Velocity: entity.Velocity,
		Active:   true,
	}
	before := proxy.Position
	w.resolveCircleRect(proxy, c, r)
	moved := proxy.Position.Sub(before)
	entity.Position = entity.Position.Sub(moved)
	entity.Velocity = proxy.Velocity
}

// reflect bounces velocity off normal n scaled by elasticity, only
// when the body is moving into the surface.
func (w *World) reflect(b *Body, n Vec2) {
	vn := b.Velocity.Dot(n)
	if vn >= 0 {
		return
	}
	b.Velocity = b.Velocity.Sub(n.Scale(2 * vn * w.Elasticity))
}
