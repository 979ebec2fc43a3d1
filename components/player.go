package components

import (
	"github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing   gamemath.Facing
	Carrying bool // holding a pickup not yet delivered to a goal
	Tuning   config.PlayerConfig
}

var Player = donburi.NewComponentType[PlayerData]()
