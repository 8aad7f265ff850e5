package physics

// pointCollisionThreshold is the fallback distance used when a body
// exposes no shape at all.
const pointCollisionThreshold = 10.0

// Check reports whether two shapes intersect. Mixed pairs normalize
// toward the richer shape: a rect meeting a polygon becomes a polygon,
// circles keep their analytic tests. Nil shapes never collide.
func Check(a, b Shape) bool {
	switch sa := a.(type) {
	case Circle:
		switch sb := b.(type) {
		case Circle:
			return circleCircle(sa, sb)
		case Rect:
			return circleRect(sa, sb)
		case Polygon:
			return polygonCircle(sb, sa)
		}
	case Rect:
		switch sb := b.(type) {
		case Circle:
			return circleRect(sb, sa)
		case Rect:
			return rectRect(sa, sb)
		case Polygon:
			return polygonPolygon(sa.toPolygon(), sb)
		}
	case Polygon:
		switch sb := b.(type) {
		case Circle:
			return polygonCircle(sa, sb)
		case Rect:
			return polygonPolygon(sa, sb.toPolygon())
		case Polygon:
			return polygonPolygon(sa, sb)
		}
	}
	return false
}

// CheckBodies reports whether two bodies collide, falling back to a
// point-distance test when either body carries no shape.
func (w *World) CheckBodies(a, b *Body) bool {
	sa, sb := a.CollisionShape(), b.CollisionShape()
	if sa == nil || sb == nil {
		return Distance(a.Position, b.Position) < pointCollisionThreshold
	}
	return Check(sa, sb)
}

// circleCircle is strict: touching circles do not collide.
func circleCircle(a, b Circle) bool {
	r := a.Radius + b.Radius
	return DistanceSq(Vec2{a.X, a.Y}, Vec2{b.X, b.Y}) < r*r
}

func rectRect(a, b Rect) bool {
	na, nb := a.normalized(), b.normalized()
	return na.X < nb.X+nb.Width &&
		na.X+na.Width > nb.X &&
		na.Y < nb.Y+nb.Height &&
		na.Y+na.Height > nb.Y
}

// circleRect tests the closest point on the rect against the radius.
// Touching counts as a collision for this pair.
func circleRect(c Circle, r Rect) bool {
	n := r.normalized()
	closest := Vec2{
		X: clamp(c.X, n.X, n.X+n.Width),
		Y: clamp(c.Y, n.Y, n.Y+n.Height),
	}
	return DistanceSq(Vec2{c.X, c.Y}, closest) <= c.Radius*c.Radius
}

// polygonPolygon runs the separating axis test over the edge normals
// of both polygons, computed from world-space vertices. A gap on any
// axis means no collision.
func polygonPolygon(a, b Polygon) bool {
	va, vb := a.worldVertices(), b.worldVertices()
	if len(va) == 0 || len(vb) == 0 {
		return false
	}
	return !hasSeparatingAxis(va, vb) && !hasSeparatingAxis(vb, va)
}

func hasSeparatingAxis(va, vb []Vec2) bool {
	for i := range va {
		edge := va[(i+1)%len(va)].Sub(va[i])
		axis := edge.Perp().Normalize()
		if axis == (Vec2{}) {
			// Degenerate edge, no axis to test.
			continue
		}
		minA, maxA := project(va, axis)
		minB, maxB := project(vb, axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

func project(vs []Vec2, axis Vec2) (min, max float64) {
	min = vs[0].Dot(axis)
	max = min
	for _, v := range vs[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// polygonCircle is true when the circle center lies inside the polygon
// or the circle reaches any polygon edge.
func polygonCircle(p Polygon, c Circle) bool {
	vs := p.worldVertices()
	if len(vs) == 0 {
		return false
	}
	center := Vec2{c.X, c.Y}
	if pointInPolygon(center, vs) {
		return true
	}
	rr := c.Radius * c.Radius
	for i := range vs {
		if distSqToSegment(center, vs[i], vs[(i+1)%len(vs)]) <= rr {
			return true
		}
	}
	return false
}

// pointInPolygon applies the even-odd ray casting rule. The edge
// crossing condition guards the division, so horizontal edges are
// safe.
func pointInPolygon(p Vec2, vs []Vec2) bool {
	inside := false
	for i, j := 0, len(vs)-1; i < len(vs); j, i = i, i+1 {
		vi, vj := vs[i], vs[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// distSqToSegment returns the squared distance from p to the segment
// ab. Zero-length segments degrade to a point distance.
func distSqToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 == 0 {
		return DistanceSq(p, a)
	}
	t := clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return DistanceSq(p, a.Add(ab.Scale(t)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
