package physics

// Intersection is a raycast hit: the intersection point and its
// distance from the ray origin.
type Intersection struct {
	Point    Vec2
	Distance float64
}

// Raycast intersects a ray from origin along dir with the segment from
// segStart to segEnd. The hit must lie on the segment (parameter in
// [0, 1]) and on or ahead of the origin (ray parameter >= 0). Parallel
// lines return nil.
func Raycast(origin, dir, segStart, segEnd Vec2) *Intersection {
	sx := segEnd.X - segStart.X
	sy := segEnd.Y - segStart.Y
	denom := sx*dir.Y - sy*dir.X
	if denom == 0 {
		return nil
	}
	ax := segStart.X - origin.X
	ay := segStart.Y - origin.Y
	ua := (dir.X*ay - dir.Y*ax) / denom // segment parameter
	ub := (sx*ay - sy*ax) / denom      // ray parameter
	if ua < 0 || ua > 1 || ub < 0 {
		return nil
	}
	point := Vec2{segStart.X + ua*sx, segStart.Y + ua*sy}
	return &Intersection{Point: point, Distance: Distance(origin, point)}
}

// RaycastRect intersects a ray with all four edges of a rect and
// returns the nearest hit, or nil when the ray misses.
func RaycastRect(origin, dir Vec2, r Rect) *Intersection {
	var nearest *Intersection
	for _, e := range r.Edges() {
		hit := Raycast(origin, dir, e[0], e[1])
		if hit == nil {
			continue
		}
		if nearest == nil || hit.Distance < nearest.Distance {
			nearest = hit
		}
	}
	return nearest
}
