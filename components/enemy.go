package components

import (
	"github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Facing gamemath.Facing
	Tuning config.EnemyConfig
}

var Enemy = donburi.NewComponentType[EnemyData]()
