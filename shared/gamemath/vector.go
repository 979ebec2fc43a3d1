// Package gamemath holds the geometry and motion helpers shared by the
// simulation systems. It has no dependencies on ebitengine, donburi or resolv.
package gamemath

import "math"

// Vector is a 2D position, size or velocity.
type Vector struct {
	X, Y float64
}

func Vec(x, y float64) Vector {
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

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Facing is the horizontal direction an entity looks toward.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 or 1. The zero value counts as right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) Flip() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}
