// Package leveldata turns glyph tile maps into level geometry.
// It has no dependencies on ebitengine, donburi or resolv. Pure data only.
package leveldata

import "github.com/automoto/barr/shared/gamemath"

// Tile glyphs understood by Parse.
const (
	GlyphWall       = '#'
	GlyphGoal       = 'E'
	GlyphPickup     = 'B'
	GlyphStart      = 'S'
	GlyphEnemyLeft  = 'X'
	GlyphEnemyRight = 'Y'
	GlyphEmpty      = ' '
)

const (
	// DefaultTileSize is the edge length of one glyph cell in world units.
	DefaultTileSize = 40.0
	// PickupDrop moves a pickup down by this fraction of a tile so it rests
	// near the floor of its cell.
	PickupDrop = 0.85
)

// EnemySpawn places one patrolling enemy.
type EnemySpawn struct {
	Pos    gamemath.Vector
	Facing gamemath.Facing
}

// Level is the static description of one stage. Walls, goals and pickups
// are one tile in size and listed in row-major order.
type Level struct {
	Name     string
	TileSize float64
	Cols     int
	Rows     int
	Walls    []gamemath.Rect
	Goals    []gamemath.Rect
	Pickups  []gamemath.Rect
	Enemies  []EnemySpawn
	Start    gamemath.Vector
}

func (l *Level) Width() float64  { return float64(l.Cols) * l.TileSize }
func (l *Level) Height() float64 { return float64(l.Rows) * l.TileSize }

// Bounds is the world rectangle covered by the glyph grid.
func (l *Level) Bounds() gamemath.Rect {
	return gamemath.NewRect(0, 0, l.Width(), l.Height())
}
