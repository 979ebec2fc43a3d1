package systems

import (
	"github.com/automoto/barr/components"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/automoto/barr/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions pushes the player and every enemy out of the walls.
// Walls never move.
func UpdateCollisions(w donburi.World, f *Frame) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		resolveEntry(w, e, f.Bounce)
	})
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		resolveEntry(w, e, f.Bounce)
	})
}

func resolveEntry(w donburi.World, e *donburi.Entry, bounce float64) {
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)

	body := gamemath.Body{Rect: obj.Rect(), Velocity: physics.Velocity, Mass: physics.Mass}
	resolveWalls(w, &body, bounce)

	physics.Velocity = body.Velocity
	obj.MoveTo(body.Pos())
}
