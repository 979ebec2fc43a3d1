package factory

import (
	"github.com/automoto/barr/archetypes"
	"github.com/automoto/barr/components"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/automoto/barr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, r gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}
