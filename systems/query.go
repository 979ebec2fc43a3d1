package systems

import (
	"sort"

	"github.com/automoto/barr/components"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/automoto/barr/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// probeMargin widens broadphase queries for thin probes so walls in a
// neighbouring cell are never missed.
const probeMargin = 1.0

// wallsNear lists every wall sharing a space cell with r grown by margin.
// The result may include walls that do not intersect r.
func wallsNear(w donburi.World, r gamemath.Rect, margin float64) []gamemath.Rect {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	query := components.Space.Get(spaceEntry).Query

	area := r.Inset(margin)
	query.X, query.Y, query.W, query.H = area.X, area.Y, area.W, area.H

	check := query.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	seen := make(map[*resolv.Object]struct{})
	var walls []gamemath.Rect
	for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
		if _, dup := seen[obj]; dup {
			continue
		}
		seen[obj] = struct{}{}
		walls = append(walls, gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H))
	}
	return walls
}

// overlapsWall reports whether r strictly overlaps any wall.
func overlapsWall(w donburi.World, r gamemath.Rect) bool {
	for _, wall := range wallsNear(w, r, probeMargin) {
		if r.Intersects(wall) {
			return true
		}
	}
	return false
}

// resolveWalls pushes body out of every wall it overlaps. Walls with the
// largest overlap go first, so a body sliding along a row of floor tiles
// settles on the tile it mostly stands on instead of catching the seam.
func resolveWalls(w donburi.World, body *gamemath.Body, bounce float64) {
	margin := max(body.W, body.H) / 2
	walls := wallsNear(w, body.Rect, margin)
	sort.SliceStable(walls, func(i, j int) bool {
		return body.IntersectionArea(walls[i]) > body.IntersectionArea(walls[j])
	})

	for _, wall := range walls {
		static := gamemath.Body{Rect: wall}
		gamemath.Resolve(body, &static, bounce)
	}
}

// groundProbe is the strip of the given height directly below r.
func groundProbe(r gamemath.Rect, height float64) gamemath.Rect {
	return gamemath.NewRect(r.X, r.Bottom(), r.W, height)
}

// turnProbe is a strip of the given width centred on the leading edge of r,
// covering the middle half of its height.
func turnProbe(r gamemath.Rect, facing gamemath.Facing, width float64) gamemath.Rect {
	edge := r.X
	if facing == gamemath.FacingRight {
		edge = r.Right()
	}
	return gamemath.NewRect(edge-width/2, r.Y+r.H/4, width, r.H/2)
}

// IsGrounded reports whether the probe under r touches a wall.
func IsGrounded(w donburi.World, r gamemath.Rect, probeHeight float64) bool {
	return overlapsWall(w, groundProbe(r, probeHeight))
}
