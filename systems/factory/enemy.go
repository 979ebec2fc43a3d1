package factory

import (
	"github.com/automoto/barr/archetypes"
	"github.com/automoto/barr/components"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/leveldata"
	"github.com/automoto/barr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateEnemy(w donburi.World, spawn leveldata.EnemySpawn, tuning cfg.EnemyConfig) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	obj := resolv.NewObject(spawn.Pos.X, spawn.Pos.Y, tuning.Width, tuning.Height, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Facing: spawn.Facing,
		Tuning: tuning,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Mass: tuning.Mass,
	})

	return enemy
}
