package leveldata

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	// TMXLayerName is the tile layer read from Tiled maps.
	TMXLayerName = "tiles"
	// TMXGlyphProperty is the tileset tile property naming the glyph a tile stands for.
	TMXGlyphProperty = "glyph"
)

// LoadTMX reads a Tiled map and renders its tile layer as glyph rows, so
// authored maps go through the same Parse path as text levels. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS. The map's tile width is
// returned as the tile size.
func LoadTMX(fsys fs.FS, tmxPath string) (text string, tileSize float64, err error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return "", 0, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TMXLayerName {
			continue
		}
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			return "", 0, fmt.Errorf("TMX %s: layer %q has %d tiles, want %d",
				tmxPath, TMXLayerName, len(layer.Tiles), levelMap.Width*levelMap.Height)
		}

		var b strings.Builder
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				b.WriteRune(tileGlyph(layer.Tiles[y*levelMap.Width+x]))
			}
			b.WriteByte('\n')
		}
		return b.String(), float64(levelMap.TileWidth), nil
	}

	return "", 0, fmt.Errorf("TMX %s: no %q tile layer", tmxPath, TMXLayerName)
}

func tileGlyph(tile *tiled.LayerTile) rune {
	if tile == nil || tile.IsNil() {
		return GlyphEmpty
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return GlyphEmpty
	}
	for _, r := range tilesetTile.Properties.GetString(TMXGlyphProperty) {
		return r
	}
	return GlyphEmpty
}
