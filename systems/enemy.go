package systems

import (
	"github.com/automoto/barr/components"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/automoto/barr/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies walks every enemy at a fixed speed toward its facing.
func UpdateEnemies(w donburi.World, f *Frame) {
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		stepEnemy(enemy, physics, f.DT)
		obj.MoveTo(obj.Rect().Pos().Add(physics.Velocity.Scale(f.DT)))
	})
}

func stepEnemy(enemy *components.EnemyData, physics *components.PhysicsData, dt float64) {
	physics.Velocity.X = enemy.Facing.Sign() * enemy.Tuning.WalkSpeed
	physics.Velocity.Y += enemy.Tuning.Gravity * dt
}

// UpdateEnemyContacts turns enemies that walked into a wall, then ends the
// attempt if any enemy touches the player.
func UpdateEnemyContacts(w donburi.World, f *Frame) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	playerRect := components.Object.Get(playerEntry).Rect()

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if f.Done() {
			return
		}
		enemy := components.Enemy.Get(e)
		rect := components.Object.Get(e).Rect()

		if overlapsWall(w, turnProbe(rect, enemy.Facing, enemy.Tuning.TurnProbe)) {
			enemy.Facing = enemy.Facing.Flip()
		}

		if rect.Intersects(playerRect) {
			components.Physics.Get(playerEntry).Velocity = gamemath.Vector{}
			f.Outcome = components.OutcomeRestart
			f.emit(components.EventEnemyContact)
		}
	})
}
