package systems

import (
	"github.com/automoto/barr/components"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/automoto/barr/tags"
	"github.com/yohamta/donburi"
)

func UpdatePlayer(w donburi.World, f *Frame) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	grounded := IsGrounded(w, obj.Rect(), player.Tuning.GroundProbe)
	if stepPlayer(player, physics, f.Controls, grounded, f.DT) {
		f.emit(components.EventJumped)
	}
	obj.MoveTo(obj.Rect().Pos().Add(physics.Velocity.Scale(f.DT)))
}

// stepPlayer applies one frame of intent and gravity to the player's
// velocity and reports whether a jump started.
func stepPlayer(player *components.PlayerData, physics *components.PhysicsData, in components.Controls, grounded bool, dt float64) bool {
	tuning := player.Tuning
	v := &physics.Velocity

	switch {
	case in.Left && !in.Right:
		v.X -= tuning.WalkAcceleration * dt
		player.Facing = gamemath.FacingLeft
	case in.Right && !in.Left:
		v.X += tuning.WalkAcceleration * dt
		player.Facing = gamemath.FacingRight
	default:
		v.X = stopHorizontal(v.X, tuning, grounded, dt)
	}

	jumped := in.JumpPressed && grounded
	if jumped {
		v.Y = -tuning.JumpImpulse
	}

	v.Y += tuning.Gravity * dt
	v.X = gamemath.ClampSpeed(v.X, tuning.MaxWalkSpeed)
	return jumped
}

// stopHorizontal sheds horizontal speed when no single direction is held.
// Snap mode keeps airborne momentum.
func stopHorizontal(vx float64, tuning cfg.PlayerConfig, grounded bool, dt float64) float64 {
	if tuning.StopMode == cfg.StopDecay {
		return gamemath.Decay(vx, tuning.SlowDown, dt)
	}
	if grounded {
		return 0
	}
	return vx
}
