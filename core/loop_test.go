package core

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/barr/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("R:2, RJ:2 - J")
	require.NoError(t, err)
	require.Equal(t, 6, s.Len())

	assert.Equal(t, components.Controls{Right: true}, s.Controls(0))
	assert.Equal(t, components.Controls{Right: true, Jump: true, JumpPressed: true}, s.Controls(2))
	assert.Equal(t, components.Controls{Right: true, Jump: true}, s.Controls(3))
	assert.Equal(t, components.Controls{}, s.Controls(4))
	assert.Equal(t, components.Controls{Jump: true, JumpPressed: true}, s.Controls(5))
	assert.Equal(t, components.Controls{}, s.Controls(99))
}

func TestParseScriptErrors(t *testing.T) {
	for _, text := range []string{"Q", "R:x", "R:-1", ":3"} {
		_, err := ParseScript(text)
		assert.Error(t, err, text)
	}
}

func TestLoopRunFramesCountsOutcomes(t *testing.T) {
	d := newDirector(t, walkToGoal, secondLevel)
	script, err := ParseScript("R:180")
	require.NoError(t, err)

	loop := NewLoop(d, script, 60)
	stats := loop.RunFrames(180)

	assert.Equal(t, 180, stats.Frames)
	assert.Equal(t, 1, stats.Advances)
	assert.Equal(t, 0, stats.Restarts)
	assert.Equal(t, 1, stats.Events[components.EventGoalReached])
	assert.Equal(t, 180, loop.Frame())
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	d := newDirector(t, secondLevel)
	script, err := ParseScript("-")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = NewLoop(d, script, 120).Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
