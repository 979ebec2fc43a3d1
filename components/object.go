package components

import (
	"github.com/automoto/barr/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

// MoveTo sets the object's position and refreshes its broadphase cells.
func (o ObjectData) MoveTo(p gamemath.Vector) {
	o.X, o.Y = p.X, p.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
