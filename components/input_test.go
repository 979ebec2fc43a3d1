package components

import (
	"testing"

	cfg "github.com/automoto/barr/config"
	"github.com/stretchr/testify/assert"
)

func TestInputJumpIsEdgeTriggered(t *testing.T) {
	var in InputData
	var held [cfg.ActionCount]bool
	held[cfg.ActionJump] = true
	held[cfg.ActionMoveRight] = true

	in.Push(held)
	c := in.Controls()
	assert.True(t, c.Jump)
	assert.True(t, c.JumpPressed)
	assert.True(t, c.Right)
	assert.False(t, c.Left)

	in.Push(held)
	c = in.Controls()
	assert.True(t, c.Jump)
	assert.False(t, c.JumpPressed, "holding jump does not re-trigger")

	in.Push([cfg.ActionCount]bool{})
	assert.True(t, in.Action(cfg.ActionJump).JustReleased)
}
