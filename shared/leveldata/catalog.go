package leveldata

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed levels
var levelFS embed.FS

// Source is the unparsed text of one level. A TileSize of zero leaves the
// choice to the caller, falling back to DefaultTileSize.
type Source struct {
	Name     string
	Text     string
	TileSize float64
}

// Parse builds the level and stamps it with the source name.
func (s Source) Parse() (*Level, error) {
	lvl, err := Parse(s.Text, s.TileSize)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", s.Name, err)
	}
	lvl.Name = s.Name
	return lvl, nil
}

// Catalog is the ordered list of level sources a run cycles through.
type Catalog struct {
	sources []Source
}

func NewCatalog(sources ...Source) *Catalog {
	return &Catalog{sources: append([]Source(nil), sources...)}
}

// DefaultCatalog returns the levels bundled with the game.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(levelFS, "levels")
}

// LoadCatalog reads every .txt and .tmx file in dir, ordered by file name.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read level dir %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	c := &Catalog{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file := path.Join(dir, entry.Name())
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))

		switch path.Ext(entry.Name()) {
		case ".txt":
			data, err := fs.ReadFile(fsys, file)
			if err != nil {
				return nil, fmt.Errorf("read level %s: %w", file, err)
			}
			c.sources = append(c.sources, Source{Name: name, Text: string(data)})
		case ".tmx":
			text, tileSize, err := LoadTMX(fsys, file)
			if err != nil {
				return nil, err
			}
			c.sources = append(c.sources, Source{Name: name, Text: text, TileSize: tileSize})
		}
	}

	if len(c.sources) == 0 {
		return nil, fmt.Errorf("no levels in %s", dir)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.sources)
}

// At returns the source at i, wrapping around in both directions.
func (c *Catalog) At(i int) Source {
	n := len(c.sources)
	return c.sources[((i%n)+n)%n]
}

// Sources returns a copy of the ordered sources.
func (c *Catalog) Sources() []Source {
	return append([]Source(nil), c.sources...)
}

// ParseAll parses every source, failing on the first malformed level.
func (c *Catalog) ParseAll() ([]*Level, error) {
	levels := make([]*Level, 0, len(c.sources))
	for _, src := range c.sources {
		lvl, err := src.Parse()
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
