// Package settings persists window and audio preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Saved is the preferences data stored on disk.
type Saved struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
}

// ItemStore is the slice of gdata.Manager the store uses.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes Saved. A Store with no backing ItemStore keeps
// everything in memory, so the game runs even where persistence is
// unavailable.
type Store struct {
	items   ItemStore
	logger  *log.Logger
	current Saved
}

// Open creates a Store backed by gdata under appName. Failures are logged
// and yield an in-memory store.
func Open(appName string, logger *log.Logger) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("settings persistence unavailable", "err", err)
		return &Store{logger: logger}
	}
	return NewStore(m, logger)
}

func NewStore(items ItemStore, logger *log.Logger) *Store {
	return &Store{items: items, logger: logger}
}

// Load reads the saved preferences into the store and returns them. The
// zero value is used when nothing has been saved or the data cannot be read.
func (s *Store) Load() Saved {
	s.current = s.read()
	return s.current
}

func (s *Store) read() Saved {
	var saved Saved
	if s.items == nil {
		return saved
	}

	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		s.logger.Warn("could not load settings", "err", err)
		return saved
	}
	if len(data) == 0 {
		return saved
	}

	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Warn("could not parse saved settings", "err", err)
		return Saved{}
	}
	return saved
}

// Current returns the preferences in effect.
func (s *Store) Current() Saved {
	return s.current
}

// Apply changes the preferences in effect for this run without saving them.
func (s *Store) Apply(saved Saved) {
	s.current = saved
}

// ToggleMute flips the mute preference, saves it and returns the new value.
func (s *Store) ToggleMute() bool {
	s.current.Muted = !s.current.Muted
	_ = s.Save(s.current)
	return s.current.Muted
}

// ToggleFullscreen flips the fullscreen preference, saves it and returns
// the new value.
func (s *Store) ToggleFullscreen() bool {
	s.current.Fullscreen = !s.current.Fullscreen
	_ = s.Save(s.current)
	return s.current.Fullscreen
}

// Save makes saved the preferences in effect and writes them. Errors are
// logged and returned.
func (s *Store) Save(saved Saved) error {
	s.current = saved
	if s.items == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		s.logger.Warn("could not save settings", "err", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
