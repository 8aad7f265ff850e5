package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_CircleCircle(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"overlapping", Circle{0, 0, 5}, Circle{8, 0, 5}, true},
		{"touching is not colliding", Circle{0, 0, 5}, Circle{10, 0, 5}, false},
		{"separated", Circle{0, 0, 5}, Circle{20, 0, 5}, false},
		{"coincident centers", Circle{3, 3, 2}, Circle{3, 3, 2}, true},
		{"diagonal overlap", Circle{0, 0, 5}, Circle{6, 6, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.a, tt.b))
			assert.Equal(t, tt.want, Check(tt.b, tt.a), "must be symmetric")
		})
	}
}

func TestCheck_RectRect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{X: 0, Y: 0, Width: 10, Height: 10}, Rect{X: 8, Y: 8, Width: 10, Height: 10}, true},
		{"flush edges are not colliding", Rect{X: 0, Y: 0, Width: 10, Height: 10}, Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"separated", Rect{X: 0, Y: 0, Width: 10, Height: 10}, Rect{X: 30, Y: 30, Width: 5, Height: 5}, false},
		{"contained", Rect{X: 0, Y: 0, Width: 20, Height: 20}, Rect{X: 5, Y: 5, Width: 2, Height: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.a, tt.b))
			assert.Equal(t, tt.want, Check(tt.b, tt.a), "must be symmetric")
		})
	}
}

func TestCheck_CenteredRectNormalizes(t *testing.T) {
	topLeft := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	centered := Rect{X: 5, Y: 5, Width: 10, Height: 10, Centered: true}
	probes := []Shape{
		Circle{12, 5, 3},
		Rect{X: 9, Y: 9, Width: 4, Height: 4},
		Circle{-4, -4, 1},
	}
	for _, p := range probes {
		assert.Equal(t, Check(topLeft, p), Check(centered, p),
			"centered rect must behave like its top-left twin against %#v", p)
	}
}

// The rect spans x in [10, 20]; the circle at the origin with radius 5
// only reaches x=5, so there is no contact.
func TestCheck_CircleRectConcrete(t *testing.T) {
	assert.False(t, Check(Circle{0, 0, 5}, Rect{X: 10, Y: 0, Width: 10, Height: 10}))
	assert.True(t, Check(Circle{7, 5, 5}, Rect{X: 10, Y: 0, Width: 10, Height: 10}))
	// Exact contact counts for this pair.
	assert.True(t, Check(Circle{5, 5, 5}, Rect{X: 10, Y: 0, Width: 10, Height: 10}))
}

func TestCheck_CircleRectCorner(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}
	// Corner distance from (7, 7) to (10, 10) is sqrt(18) ~ 4.24.
	assert.True(t, Check(Circle{7, 7, 5}, r))
	assert.False(t, Check(Circle{7, 7, 4}, r))
}

func TestCheck_PolygonPolygonSAT(t *testing.T) {
	square := func(x, y, size float64) Polygon {
		return Polygon{X: x, Y: y, Vertices: []Vec2{
			{0, 0}, {size, 0}, {size, size}, {0, size},
		}}
	}
	diamond := Polygon{X: 0, Y: 0, Vertices: []Vec2{
		{0, -2}, {2, 0}, {0, 2}, {-2, 0},
	}}

	t.Run("unit squares offset by half overlap", func(t *testing.T) {
		assert.True(t, Check(square(0, 0, 1), square(0.5, 0.5, 1)))
	})
	t.Run("separated squares", func(t *testing.T) {
		assert.False(t, Check(square(0, 0, 10), square(20, 0, 10)))
	})
	t.Run("diagonal gap found even when boxes overlap", func(t *testing.T) {
		// The square's corner box reaches into the diamond's box, but
		// the diamond's diagonal edge normal separates them.
		assert.False(t, Check(diamond, square(1.8, 1.8, 1)))
		assert.True(t, Check(diamond, square(0.5, 0.5, 1)))
	})
	t.Run("symmetric", func(t *testing.T) {
		a, b := diamond, square(0.5, 0.5, 1)
		assert.Equal(t, Check(a, b), Check(b, a))
	})
}

func TestCheck_RectConvertsForPolygon(t *testing.T) {
	tri := Polygon{X: 0, Y: 0, Vertices: []Vec2{{0, 0}, {10, 0}, {5, 10}}}
	assert.True(t, Check(tri, Rect{X: 4, Y: 2, Width: 3, Height: 3}))
	assert.True(t, Check(Rect{X: 4, Y: 2, Width: 3, Height: 3}, tri))
	assert.False(t, Check(tri, Rect{X: 20, Y: 20, Width: 3, Height: 3}))
	// Centered rects normalize before conversion.
	assert.True(t, Check(tri, Rect{X: 5, Y: 3, Width: 3, Height: 3, Centered: true}))
}

func TestCheck_PolygonCircle(t *testing.T) {
	square := Polygon{X: 10, Y: 10, Vertices: []Vec2{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
	}}
	t.Run("center inside polygon", func(t *testing.T) {
		assert.True(t, Check(square, Circle{15, 15, 1}))
	})
	t.Run("circle reaches an edge", func(t *testing.T) {
		assert.True(t, Check(square, Circle{15, 7, 4}))
	})
	t.Run("clear of all edges", func(t *testing.T) {
		assert.False(t, Check(square, Circle{15, 4, 3}))
	})
	t.Run("symmetric dispatch", func(t *testing.T) {
		assert.True(t, Check(Circle{15, 7, 4}, square))
	})
}

func TestCheck_DegenerateInputs(t *testing.T) {
	assert.NotPanics(t, func() {
		Check(Polygon{}, Polygon{})
		Check(Polygon{}, Circle{0, 0, 5})
		Check(Polygon{X: 1, Y: 1, Vertices: []Vec2{{0, 0}, {0, 0}}}, Circle{1, 1, 5})
		Check(Circle{}, Rect{})
		Check(nil, Circle{0, 0, 1})
	})
	assert.False(t, Check(nil, Circle{0, 0, 1}))
	assert.False(t, Check(Polygon{}, Polygon{X: 1, Vertices: []Vec2{{0, 0}, {1, 0}, {0, 1}}}))
}

func TestCheckBodies_PointFallback(t *testing.T) {
	w := NewWorld()
	a := NewBody(Vec2{0, 0}, nil)
	b := NewBody(Vec2{9, 0}, nil)
	assert.True(t, w.CheckBodies(a, b))

	b.Position = Vec2{10, 0}
	assert.False(t, w.CheckBodies(a, b), "threshold distance is exclusive")

	// One shaped, one not: still the point fallback.
	a.Shape = Circle{Radius: 50}
	assert.False(t, w.CheckBodies(a, b))
	b.Position = Vec2{9.9, 0}
	assert.True(t, w.CheckBodies(a, b))
}

func TestCheckBodies_UsesBodyPositions(t *testing.T) {
	w := NewWorld()
	a := NewBody(Vec2{0, 0}, Circle{Radius: 5})
	b := NewBody(Vec2{0, 0}, Rect{Width: 10, Height: 10})
	assert.True(t, w.CheckBodies(a, b))

	a.Position = Vec2{-20, 0}
	assert.False(t, w.CheckBodies(a, b))
}
