package components

import (
	"github.com/automoto/barr/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
	Index int
}

var Level = donburi.NewComponentType[LevelData]()
