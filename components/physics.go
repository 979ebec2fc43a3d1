package components

import (
	"github.com/automoto/barr/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity gamemath.Vector
	Mass     float64 // 0 = immovable
}

var Physics = donburi.NewComponentType[PhysicsData]()
