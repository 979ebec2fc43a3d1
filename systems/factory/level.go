package factory

import (
	"github.com/automoto/barr/archetypes"
	"github.com/automoto/barr/components"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/leveldata"
	"github.com/yohamta/donburi"
)

// BuildLevel populates an empty world with every entity of lvl and returns
// the player entry.
func BuildLevel(w donburi.World, lvl *leveldata.Level, index int, conf *cfg.Config) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{Level: lvl, Index: index})

	CreateSpace(w, lvl.Width(), lvl.Height(), lvl.TileSize)

	for _, r := range lvl.Walls {
		CreateWall(w, r)
	}
	for i, r := range lvl.Goals {
		CreateGoal(w, i, r)
	}
	for i, r := range lvl.Pickups {
		CreatePickup(w, i, r)
	}
	for _, spawn := range lvl.Enemies {
		CreateEnemy(w, spawn, conf.Enemy)
	}

	return CreatePlayer(w, lvl.Start, conf.Player)
}
