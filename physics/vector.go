package physics

import "math"

// Vec2 is a 2D point or direction.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Length returns the vector magnitude.
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSq returns the squared magnitude without the square root.
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns the unit vector. The zero vector normalizes to
// itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Perp returns the vector rotated 90 degrees.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Distance returns the distance between two points.
func Distance(a, b Vec2) float64 { return a.Sub(b).Length() }

// DistanceSq returns the squared distance between two points.
func DistanceSq(a, b Vec2) float64 { return a.Sub(b).LengthSq() }
