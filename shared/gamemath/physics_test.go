package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 100.0, ClampSpeed(250, 100))
	assert.Equal(t, -100.0, ClampSpeed(-250, 100))
	assert.Equal(t, 42.0, ClampSpeed(42, 100))
}

func TestDecayIsFrameRateIndependent(t *testing.T) {
	once := Decay(100, 0.01, 1.0/30)
	twice := Decay(Decay(100, 0.01, 1.0/60), 0.01, 1.0/60)
	assert.InDelta(t, once, twice, 1e-9)
	assert.InDelta(t, 1, Decay(100, 0.01, 1), 1e-9)
	assert.Equal(t, 100.0, Decay(100, 0.01, 0))
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(0, 0, 40, 40)
	assert.True(t, r.Intersects(NewRect(39, 39, 10, 10)))
	assert.False(t, r.Intersects(NewRect(40, 0, 40, 40)))
	assert.False(t, r.Intersects(NewRect(0, 40, 40, 40)))
	assert.InDelta(t, 1, r.IntersectionArea(NewRect(39, 39, 10, 10)), 1e-9)
}

func TestFacing(t *testing.T) {
	assert.Equal(t, FacingRight, FacingLeft.Flip())
	assert.Equal(t, FacingLeft, FacingRight.Flip())
	assert.Equal(t, -1.0, FacingLeft.Sign())
	assert.Equal(t, 1.0, Facing(0).Sign())
}
