package factory

import (
	"github.com/automoto/barr/archetypes"
	"github.com/automoto/barr/components"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/automoto/barr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePickup(w donburi.World, index int, r gamemath.Rect) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPickup)
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	components.Pickup.SetValue(pickup, components.PickupData{Index: index})
	addToSpace(w, obj)

	return pickup
}

func CreateGoal(w donburi.World, index int, r gamemath.Rect) *donburi.Entry {
	goal := archetypes.Goal.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvGoal)
	obj.Data = goal
	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	components.Goal.SetValue(goal, components.GoalData{Index: index})
	addToSpace(w, obj)

	return goal
}
