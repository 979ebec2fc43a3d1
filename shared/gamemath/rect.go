package gamemath

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Pos() Vector  { return Vector{X: r.X, Y: r.Y} }
func (r Rect) Size() Vector { return Vector{X: r.W, Y: r.H} }

func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Offset(d Vector) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

func (r Rect) MoveTo(p Vector) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Inset grows the rectangle by m on every side (shrinks it for negative m).
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Intersects reports strict overlap. Rectangles that only share an edge do
// not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.IntersectionArea(o) > 0
}

// IntersectionArea returns the area shared by both rectangles.
func (r Rect) IntersectionArea(o Rect) float64 {
	if r.Empty() || o.Empty() {
		return 0
	}
	w := math.Min(r.Right(), o.Right()) - math.Max(r.X, o.X)
	h := math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
