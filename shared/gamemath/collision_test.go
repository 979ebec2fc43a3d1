package gamemath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestOverlap(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Rect
		wantNorm  Vector
		wantDepth float64
	}{
		{"apart", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), Vector{}, 0},
		{"shared vertical edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Vector{}, 0},
		{"shared horizontal edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), Vector{}, 0},
		{"resting on top", NewRect(2, 0, 10, 10), NewRect(0, 8, 40, 40), Vector{Y: -1}, 2},
		{"under ceiling", NewRect(2, 39, 10, 10), NewRect(0, 0, 40, 40), Vector{Y: 1}, 1},
		{"into left side", NewRect(-3, 10, 10, 10), NewRect(0, 0, 40, 40), Vector{X: -1}, 7},
		{"into right side", NewRect(37, 10, 10, 10), NewRect(0, 0, 40, 40), Vector{X: 1}, 3},
		{"equal depth prefers vertical", NewRect(0, 0, 10, 10), NewRect(8, 8, 10, 10), Vector{Y: -1}, 2},
		{"empty rect", NewRect(5, 5, 0, 10), NewRect(0, 0, 40, 40), Vector{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, d := Overlap(tt.a, tt.b)
			assert.Equal(t, tt.wantNorm, n)
			assert.InDelta(t, tt.wantDepth, d, eps)
		})
	}
}

func TestResolveAgainstStaticBody(t *testing.T) {
	player := &Body{Rect: NewRect(4, 10, 32, 32), Velocity: Vec(50, 200), Mass: 1}
	floor := &Body{Rect: NewRect(0, 40, 40, 40)}

	c := Resolve(player, floor, 0.1)

	assert.True(t, c.Colliding())
	assert.Equal(t, Vector{Y: -1}, c.Normal)
	assert.InDelta(t, 2, c.Depth, eps)
	assert.InDelta(t, 8, player.Y, eps)
	assert.InDelta(t, 4, player.X, eps)
	assert.InDelta(t, -20, player.Velocity.Y, eps)
	assert.InDelta(t, 50, player.Velocity.X, eps, "tangential velocity is untouched")
	assert.Equal(t, NewRect(0, 40, 40, 40), floor.Rect, "mass 0 never moves")

	_, depth := Overlap(player.Rect, floor.Rect)
	assert.Less(t, depth, eps)
}

func TestResolveNoIntersectionIsNoop(t *testing.T) {
	a := &Body{Rect: NewRect(0, 0, 10, 10), Velocity: Vec(3, 4), Mass: 1}
	b := &Body{Rect: NewRect(10, 0, 10, 10)}

	c := Resolve(a, b, 0.5)

	assert.False(t, c.Colliding())
	assert.Equal(t, Vec(3, 4), a.Velocity)
	assert.Equal(t, NewRect(0, 0, 10, 10), a.Rect)
}

func TestResolveSeparatingVelocityIsKept(t *testing.T) {
	// Already moving out of the wall: position is corrected, velocity is not reflected.
	a := &Body{Rect: NewRect(-2, 10, 10, 10), Velocity: Vec(-30, 0), Mass: 1}
	b := &Body{Rect: NewRect(0, 0, 40, 40)}

	Resolve(a, b, 0.1)

	assert.InDelta(t, -10, a.X, eps)
	assert.InDelta(t, -30, a.Velocity.X, eps)
}

func TestResolveBounceIsClamped(t *testing.T) {
	tests := []struct {
		name   string
		bounce float64
		wantVY float64
	}{
		{"negative becomes zero", -1, 0},
		{"zero", 0, 0},
		{"half", 0.5, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Body{Rect: NewRect(0, 0, 10, 10), Velocity: Vec(0, 100), Mass: 1}
			b := &Body{Rect: NewRect(0, 9, 10, 10)}
			Resolve(a, b, tt.bounce)
			assert.InDelta(t, tt.wantVY, a.Velocity.Y, eps)
		})
	}
}

func TestResolveSplitsByInverseMass(t *testing.T) {
	a := &Body{Rect: NewRect(0, 0, 10, 10), Velocity: Vec(10, 0), Mass: 1}
	b := &Body{Rect: NewRect(8, 0, 10, 10), Velocity: Vec(-10, 0), Mass: 1}

	Resolve(a, b, 0)

	assert.InDelta(t, -1, a.X, eps)
	assert.InDelta(t, 9, b.X, eps)
	assert.InDelta(t, 0, a.Velocity.X, eps)
	assert.InDelta(t, 0, b.Velocity.X, eps)
}

func TestResolveBothStatic(t *testing.T) {
	a := &Body{Rect: NewRect(0, 0, 10, 10)}
	b := &Body{Rect: NewRect(5, 0, 10, 10)}

	c := Resolve(a, b, 0.1)

	assert.True(t, c.Colliding())
	assert.Equal(t, NewRect(0, 0, 10, 10), a.Rect)
	assert.Equal(t, NewRect(5, 0, 10, 10), b.Rect)
}

func TestResolveStaticLeavesNoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	coord := func() float64 { return rng.Float64() * 100 }
	size := func() float64 { return 0.5 + rng.Float64()*40 }

	cases := []struct{ a, b Rect }{
		{NewRect(21.23, 78.0761, 31.9, 2.4696), NewRect(10, 80.5458, 40, 40)},
	}
	for i := 0; i < 200000; i++ {
		cases = append(cases, struct{ a, b Rect }{
			NewRect(coord(), coord(), size(), size()),
			NewRect(coord(), coord(), size(), size()),
		})
	}

	for _, c := range cases {
		a := Body{Rect: c.a, Mass: 1}
		b := Body{Rect: c.b}
		contact := Resolve(&a, &b, 0.1)
		if !contact.Colliding() {
			continue
		}
		if a.Intersects(b.Rect) {
			t.Fatalf("a=%+v still overlaps b=%+v after resolving %+v", a.Rect, b.Rect, contact)
		}
		if contact.Normal.X == 0 {
			assert.Equal(t, c.a.X, a.X)
		} else {
			assert.Equal(t, c.a.Y, a.Y)
		}
		assert.Equal(t, c.b, b.Rect)
	}
}
