package leveldata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/barr/shared/gamemath"
)

var (
	ErrEmptyLevel     = errors.New("level has no rows")
	ErrNoStart        = errors.New("level has no start tile")
	ErrMultipleStarts = errors.New("level has more than one start tile")
	ErrRaggedRows     = errors.New("level rows differ in length")
)

// ParseError locates a problem in level text. Row and Col are zero-based
// and count from the first non-blank line.
type ParseError struct {
	Row, Col int
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d col %d: %v", e.Row, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts glyph rows into a Level. Blank lines before the first and
// after the last row are ignored; spaces inside rows are significant.
// Unknown glyphs are treated as empty cells. A tileSize of zero or less
// selects DefaultTileSize.
func Parse(text string, tileSize float64) (*Level, error) {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	rows := splitRows(text)
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	cols := len(rows[0])
	for y, row := range rows {
		if len(row) != cols {
			return nil, &ParseError{Row: y, Col: min(len(row), cols), Err: ErrRaggedRows}
		}
	}

	lvl := &Level{TileSize: tileSize, Cols: cols, Rows: len(rows)}
	haveStart := false

	for y, row := range rows {
		for x, glyph := range row {
			cell := gamemath.NewRect(float64(x)*tileSize, float64(y)*tileSize, tileSize, tileSize)
			switch glyph {
			case GlyphWall:
				lvl.Walls = append(lvl.Walls, cell)
			case GlyphGoal:
				lvl.Goals = append(lvl.Goals, cell)
			case GlyphPickup:
				lvl.Pickups = append(lvl.Pickups, cell.Offset(gamemath.Vec(0, PickupDrop*tileSize)))
			case GlyphEnemyLeft:
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Pos: cell.Pos(), Facing: gamemath.FacingLeft})
			case GlyphEnemyRight:
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Pos: cell.Pos(), Facing: gamemath.FacingRight})
			case GlyphStart:
				if haveStart {
					return nil, &ParseError{Row: y, Col: x, Err: ErrMultipleStarts}
				}
				haveStart = true
				lvl.Start = cell.Pos()
			}
		}
	}

	if !haveStart {
		return nil, ErrNoStart
	}
	return lvl, nil
}

// splitRows breaks text into rune rows, dropping blank edge lines.
func splitRows(text string) [][]rune {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	first, last := 0, len(lines)-1
	for first <= last && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	for last >= first && strings.TrimSpace(lines[last]) == "" {
		last--
	}

	rows := make([][]rune, 0, last-first+1)
	for _, line := range lines[first : last+1] {
		rows = append(rows, []rune(line))
	}
	return rows
}
