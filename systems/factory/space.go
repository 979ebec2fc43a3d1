package factory

import (
	"math"

	"github.com/automoto/barr/archetypes"
	"github.com/automoto/barr/components"
	"github.com/automoto/barr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the broadphase grid. Cells match the tile size so a
// wall occupies exactly one cell.
func CreateSpace(w donburi.World, width, height, tileSize float64) *donburi.Entry {
	space := archetypes.Space.Spawn(w)

	cell := int(math.Max(1, math.Round(tileSize)))
	spaceData := resolv.NewSpace(int(math.Ceil(width))+cell, int(math.Ceil(height))+cell, cell, cell)

	query := resolv.NewObject(0, 0, 1, 1, tags.ResolvQuery)
	spaceData.Add(query)

	components.Space.SetValue(space, components.SpaceData{Space: spaceData, Query: query})
	return space
}

// addToSpace registers obj with the world's space, if one exists.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
