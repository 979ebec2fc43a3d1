package factory

import (
	"github.com/automoto/barr/archetypes"
	"github.com/automoto/barr/components"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/automoto/barr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer places the player with its top-left corner at pos, at rest
// and facing right.
func CreatePlayer(w donburi.World, pos gamemath.Vector, tuning cfg.PlayerConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(pos.X, pos.Y, tuning.Width, tuning.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Player.SetValue(player, components.PlayerData{
		Facing: gamemath.FacingRight,
		Tuning: tuning,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Mass: tuning.Mass,
	})

	return player
}
