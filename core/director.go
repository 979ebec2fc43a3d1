package core

import (
	"errors"
	"fmt"

	"github.com/automoto/barr/components"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/leveldata"
	"github.com/charmbracelet/log"
)

var ErrNoLevels = errors.New("no levels to play")

// LevelStats counts play on one level during this run. Nothing is persisted.
type LevelStats struct {
	Attempts int
	Clears   int
	Frames   int
}

// Director owns the level sequence and the session being played. Advancing
// past the last level wraps to the first.
type Director struct {
	levels  []*leveldata.Level
	conf    *cfg.Config
	logger  *log.Logger
	index   int
	session *Session
	stats   []LevelStats
}

type Option func(*Director)

func WithLogger(logger *log.Logger) Option {
	return func(d *Director) {
		d.logger = logger
	}
}

// WithStartLevel selects the first level played. Out-of-range values wrap.
func WithStartLevel(index int) Option {
	return func(d *Director) {
		d.index = index
	}
}

func NewDirector(levels []*leveldata.Level, conf *cfg.Config, opts ...Option) (*Director, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if conf == nil {
		conf = cfg.Default()
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("director config: %w", err)
	}

	d := &Director{
		levels: levels,
		conf:   conf,
		logger: log.Default(),
		stats:  make([]LevelStats, len(levels)),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.load(d.index)
	return d, nil
}

// NewDirectorFromCatalog parses every level up front so a malformed level
// fails the run before play starts.
func NewDirectorFromCatalog(catalog *leveldata.Catalog, conf *cfg.Config, opts ...Option) (*Director, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrNoLevels
	}
	if conf == nil {
		conf = cfg.Default()
	}

	levels := make([]*leveldata.Level, 0, catalog.Len())
	for i, src := range catalog.Sources() {
		if src.TileSize <= 0 {
			src.TileSize = conf.Level.TileSize
		}
		lvl, err := src.Parse()
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		levels = append(levels, lvl)
	}
	return NewDirector(levels, conf, opts...)
}

// Step advances the current session and applies its outcome.
func (d *Director) Step(dt float64, in components.Controls) FrameResult {
	res := d.session.Step(dt, in)
	d.stats[d.index].Frames++

	switch res.Outcome {
	case components.OutcomeRestart:
		d.Restart()
	case components.OutcomeAdvance:
		d.stats[d.index].Clears++
		d.Advance()
	}

	res.Level = d.index
	return res
}

// Restart rebuilds the current level without re-parsing it.
func (d *Director) Restart() {
	d.session.Reset()
	d.stats[d.index].Attempts++
	d.logger.Info("level restarted", "level", d.index, "name", d.levels[d.index].Name)
}

// Advance moves to the next level, wrapping after the last.
func (d *Director) Advance() {
	d.load(d.index + 1)
}

// Jump moves to level i, wrapping in both directions.
func (d *Director) Jump(i int) {
	d.load(i)
}

func (d *Director) load(i int) {
	n := len(d.levels)
	d.index = ((i % n) + n) % n
	d.session = NewSession(d.levels[d.index], d.index, d.conf)
	d.stats[d.index].Attempts++
	d.logger.Info("level loaded", "level", d.index, "name", d.levels[d.index].Name)
}

func (d *Director) Index() int { return d.index }
func (d *Director) LevelCount() int { return len(d.levels) }
func (d *Director) Level() *leveldata.Level { return d.levels[d.index] }
func (d *Director) Session() *Session { return d.session }
func (d *Director) Stats(i int) LevelStats { return d.stats[i] }
func (d *Director) Config() *cfg.Config { return d.conf }
