package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the broadphase grid shared by every collidable object.
// Query is a scratch object that never blocks anything; systems move it
// over a region to list the walls near it.
type SpaceData struct {
	*resolv.Space
	Query *resolv.Object
}

var Space = donburi.NewComponentType[SpaceData]()
