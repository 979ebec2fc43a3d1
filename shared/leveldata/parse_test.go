package leveldata

import (
	"errors"
	"testing"

	"github.com/automoto/barr/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallLevel = `
#####
#   #
#S BE
#####
`

func TestParseSmallLevel(t *testing.T) {
	lvl, err := Parse(smallLevel, 40)
	require.NoError(t, err)

	assert.Equal(t, 5, lvl.Cols)
	assert.Equal(t, 4, lvl.Rows)
	assert.Equal(t, 200.0, lvl.Width())
	assert.Equal(t, 160.0, lvl.Height())
	assert.Equal(t, gamemath.Vec(40, 80), lvl.Start)
	assert.Len(t, lvl.Walls, 5+2+1+5)
	assert.Equal(t, []gamemath.Rect{gamemath.NewRect(160, 80, 40, 40)}, lvl.Goals)
	require.Len(t, lvl.Pickups, 1)
	assert.Equal(t, 120.0, lvl.Pickups[0].X)
	assert.InDelta(t, 80+0.85*40, lvl.Pickups[0].Y, 1e-9)
	assert.Empty(t, lvl.Enemies)
}

func TestParseWallsAreRowMajor(t *testing.T) {
	lvl, err := Parse("##\nS#", 10)
	require.NoError(t, err)
	assert.Equal(t, []gamemath.Rect{
		gamemath.NewRect(0, 0, 10, 10),
		gamemath.NewRect(10, 0, 10, 10),
		gamemath.NewRect(10, 10, 10, 10),
	}, lvl.Walls)
}

func TestParseEnemies(t *testing.T) {
	lvl, err := Parse("#S X Y#", 40)
	require.NoError(t, err)
	assert.Equal(t, []EnemySpawn{
		{Pos: gamemath.Vec(120, 0), Facing: gamemath.FacingLeft},
		{Pos: gamemath.Vec(200, 0), Facing: gamemath.FacingRight},
	}, lvl.Enemies)
}

func TestParseUnknownGlyphIsEmpty(t *testing.T) {
	lvl, err := Parse("#S?#", 40)
	require.NoError(t, err)
	assert.Len(t, lvl.Walls, 2)
}

func TestParseDefaultTileSize(t *testing.T) {
	lvl, err := Parse("S", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTileSize, lvl.TileSize)
}

func TestParseKeepsLeadingSpacesOfFirstRow(t *testing.T) {
	lvl, err := Parse("\n\n  S\n###\n\n", 40)
	require.NoError(t, err)
	assert.Equal(t, gamemath.Vec(80, 0), lvl.Start)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
		row     int
		col     int
	}{
		{"no start", "###\n# #\n###", ErrNoStart, -1, -1},
		{"two starts", "####\n#SS#\n####", ErrMultipleStarts, 1, 2},
		{"ragged", "####\n#S#\n####", ErrRaggedRows, 1, 3},
		{"empty", "\n   \n\n", ErrEmptyLevel, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Parse(tt.text, 40)
			assert.Nil(t, lvl)
			require.ErrorIs(t, err, tt.wantErr)

			var perr *ParseError
			if tt.row < 0 {
				assert.False(t, errors.As(err, &perr))
				return
			}
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.row, perr.Row)
			assert.Equal(t, tt.col, perr.Col)
		})
	}
}
