package physics

// Shape is the closed set of collision shapes: Circle, Rect and
// Polygon. Every dispatch point in this package switches exhaustively
// over these three kinds.
type Shape interface {
	shape()
}

// Circle is a circle centered at (X, Y).
type Circle struct {
	X, Y   float64
	Radius float64
}

// Rect is an axis-aligned rectangle. (X, Y) is the top-left corner
// unless Centered is set, in which case it is the center.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Centered      bool
}

// Polygon sits at origin (X, Y) with vertices given as local-space
// offsets. The vertices must form a simple closed loop; winding
// direction does not matter for the axis tests.
type Polygon struct {
	X, Y     float64
	Vertices []Vec2
}

func (Circle) shape()  {}
func (Rect) shape()    {}
func (Polygon) shape() {}

// normalized returns the rect with (X, Y) moved to the top-left corner.
func (r Rect) normalized() Rect {
	if !r.Centered {
		return r
	}
	return Rect{X: r.X - r.Width/2, Y: r.Y - r.Height/2, Width: r.Width, Height: r.Height}
}

// Center returns the rect's center point.
func (r Rect) Center() Vec2 {
	n := r.normalized()
	return Vec2{n.X + n.Width/2, n.Y + n.Height/2}
}

// Contains reports whether p lies inside the rect, edges included.
func (r Rect) Contains(p Vec2) bool {
	n := r.normalized()
	return p.X >= n.X && p.X <= n.X+n.Width && p.Y >= n.Y && p.Y <= n.Y+n.Height
}

// Edges returns the rect's four sides as segment endpoint pairs,
// clockwise from the top edge.
func (r Rect) Edges() [4][2]Vec2 {
	n := r.normalized()
	tl := Vec2{n.X, n.Y}
	tr := Vec2{n.X + n.Width, n.Y}
	br := Vec2{n.X + n.Width, n.Y + n.Height}
	bl := Vec2{n.X, n.Y + n.Height}
	return [4][2]Vec2{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}

// toPolygon converts the rect into the equivalent four-vertex polygon.
// Used when a rect meets a polygon in a collision test.
func (r Rect) toPolygon() Polygon {
	n := r.normalized()
	return Polygon{
		X: n.X,
		Y: n.Y,
		Vertices: []Vec2{
			{0, 0},
			{n.Width, 0},
			{n.Width, n.Height},
			{0, n.Height},
		},
	}
}

// worldVertices returns the polygon's vertices translated by its
// origin.
func (p Polygon) worldVertices() []Vec2 {
	out := make([]Vec2, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = Vec2{p.X + v.X, p.Y + v.Y}
	}
	return out
}

// placeShape returns a copy of s with its origin moved to p.
func placeShape(s Shape, p Vec2) Shape {
	switch sh := s.(type) {
	case Circle:
		sh.X, sh.Y = p.X, p.Y
		return sh
	case Rect:
		sh.X, sh.Y = p.X, p.Y
		return sh
	case Polygon:
		sh.X, sh.Y = p.X, p.Y
		return sh
	}
	return s
}
