package geom

import "math"

// Vector is a free 2D vector in map units.
type Vector struct {
	X, Y float64
}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. s must be non-zero.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Length returns the Euclidean length.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length. A zero vector stays zero.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Orthogonal returns v rotated 90° counter-clockwise: (x, y) -> (-y, x).
func (v Vector) Orthogonal() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Rotate rotates v by radians using the standard 2D rotation matrix.
// Length is preserved.
func (v Vector) Rotate(radians float64) Vector {
	sin, cos := math.Sincos(radians)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ApproxEqual compares componentwise within tolerance.
func (v Vector) ApproxEqual(o Vector, tolerance float64) bool {
	return math.Abs(v.X-o.X) <= tolerance && math.Abs(v.Y-o.Y) <= tolerance
}
