package gamemath

import "math"

// maxBounce keeps restitution strictly below one so contacts always lose energy.
var maxBounce = math.Nextafter(1, 0)

// Body is a rectangle with a velocity. Mass 0 marks an immovable body.
type Body struct {
	Rect
	Velocity Vector
	Mass     float64
}

// Contact describes how a body was separated from another.
// Normal points from the other body toward the resolved one.
type Contact struct {
	Normal Vector
	Depth  float64
}

// Colliding reports whether the bodies overlapped before resolution.
func (c Contact) Colliding() bool {
	return c.Depth > 0
}

// Overlap reports the minimum translation that would push a out of b.
// The axis needing the smaller push wins; a tie resolves vertically.
// Non-intersecting rectangles (edge contact included) report a zero normal
// and depth.
func Overlap(a, b Rect) (normal Vector, depth float64) {
	if !a.Intersects(b) {
		return Vector{}, 0
	}

	pushLeft := a.Right() - b.X
	pushRight := b.Right() - a.X
	pushUp := a.Bottom() - b.Y
	pushDown := b.Bottom() - a.Y

	nx, dx := Vector{X: -1}, pushLeft
	if pushRight < pushLeft {
		nx, dx = Vector{X: 1}, pushRight
	}
	ny, dy := Vector{Y: -1}, pushUp
	if pushDown < pushUp {
		ny, dy = Vector{Y: 1}, pushDown
	}

	if dy <= dx {
		return ny, dy
	}
	return nx, dx
}

// Resolve separates a from b along the minimum translation axis and removes
// the approaching part of their relative velocity, reflecting it scaled by
// bounce. Position and velocity changes are split by inverse mass, so a
// body with Mass 0 never moves. The velocity component orthogonal to the
// contact normal is left untouched. bounce is clamped into [0, 1).
func Resolve(a, b *Body, bounce float64) Contact {
	normal, depth := Overlap(a.Rect, b.Rect)
	if depth <= 0 {
		return Contact{}
	}
	bounce = Clamp(bounce, 0, maxBounce)

	invA, invB := inverseMass(a.Mass), inverseMass(b.Mass)
	total := invA + invB
	if total == 0 {
		return Contact{Normal: normal, Depth: depth}
	}

	switch {
	case invB == 0:
		a.Rect = snapOut(a.Rect, b.Rect, normal)
	case invA == 0:
		b.Rect = snapOut(b.Rect, a.Rect, normal.Scale(-1))
	default:
		a.Rect = a.Rect.Offset(normal.Scale(depth * invA / total))
		b.Rect = b.Rect.Offset(normal.Scale(-depth * invB / total))
	}

	approach := a.Velocity.Sub(b.Velocity).Dot(normal)
	if approach < 0 {
		impulse := -(1 + bounce) * approach / total
		a.Velocity = a.Velocity.Add(normal.Scale(impulse * invA))
		b.Velocity = b.Velocity.Sub(normal.Scale(impulse * invB))
	}

	return Contact{Normal: normal, Depth: depth}
}

// snapOut places r flush against the side of from that normal points out of.
func snapOut(r, from Rect, normal Vector) Rect {
	switch {
	case normal.X < 0:
		r.X = from.X - r.W
		for r.Right() > from.X {
			r.X = math.Nextafter(r.X, math.Inf(-1))
		}
	case normal.X > 0:
		r.X = from.Right()
	case normal.Y < 0:
		r.Y = from.Y - r.H
		for r.Bottom() > from.Y {
			r.Y = math.Nextafter(r.Y, math.Inf(-1))
		}
	case normal.Y > 0:
		r.Y = from.Bottom()
	}
	return r
}

func inverseMass(m float64) float64 {
	if m <= 0 {
		return 0
	}
	return 1 / m
}
