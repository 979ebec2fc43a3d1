package systems

import (
	"testing"

	"github.com/automoto/barr/components"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestPickupThenGoalSequencing(t *testing.T) {
	w, playerEntry := buildWorld(t, "#######\n#SBB E#\n#######")
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	step := func(pos gamemath.Vector) *Frame {
		obj.MoveTo(pos)
		f := &Frame{DT: dt}
		Run(w, f, UpdatePickups, UpdateGoals)
		return f
	}

	f := step(gamemath.Vec(80, 48))
	assert.True(t, player.Carrying)
	assert.Equal(t, 1, RemainingPickups(w))
	assert.Equal(t, []components.Event{components.EventPickupCollected}, f.Events)

	f = step(gamemath.Vec(122, 48))
	assert.Equal(t, 1, RemainingPickups(w), "a carrying player passes over pickups")
	assert.Empty(t, f.Events)

	f = step(gamemath.Vec(200, 48))
	assert.False(t, player.Carrying, "a rejected delivery still empties the hands")
	assert.Equal(t, components.OutcomeContinue, f.Outcome)
	assert.Equal(t, []components.Event{components.EventDeliveryRejected}, f.Events)

	f = step(gamemath.Vec(122, 48))
	assert.True(t, player.Carrying)
	assert.Equal(t, 0, RemainingPickups(w))

	f = step(gamemath.Vec(200, 48))
	assert.False(t, player.Carrying)
	assert.Equal(t, components.OutcomeAdvance, f.Outcome)
	assert.Equal(t, []components.Event{components.EventGoalReached}, f.Events)
}

func TestEnemyContactEndsFrame(t *testing.T) {
	w, playerEntry := buildWorld(t, "######\n#SX E#\n######")
	components.Physics.Get(playerEntry).Velocity = gamemath.Vec(100, -50)
	components.Object.Get(playerEntry).MoveTo(gamemath.Vec(70, 48))

	f := &Frame{DT: dt}
	Run(w, f, UpdateEnemyContacts, UpdatePickups, UpdateGoals)

	assert.Equal(t, components.OutcomeRestart, f.Outcome)
	assert.Equal(t, []components.Event{components.EventEnemyContact}, f.Events)
	assert.Equal(t, gamemath.Vector{}, components.Physics.Get(playerEntry).Velocity)
}
