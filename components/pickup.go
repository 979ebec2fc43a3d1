package components

import "github.com/yohamta/donburi"

// PickupData marks a collectible. Index is its position in the level's pickup list.
type PickupData struct {
	Index int
}

var Pickup = donburi.NewComponentType[PickupData]()

type GoalData struct {
	Index int
}

var Goal = donburi.NewComponentType[GoalData]()
