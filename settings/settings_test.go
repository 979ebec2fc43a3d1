package settings

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems struct {
	data    map[string][]byte
	loadErr error
	saveErr error
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = data
	return nil
}

func quiet() *log.Logger { return log.New(io.Discard) }

func TestSaveThenLoad(t *testing.T) {
	items := &memItems{data: map[string][]byte{}}
	store := NewStore(items, quiet())

	require.NoError(t, store.Save(Saved{Muted: true}))
	assert.Equal(t, Saved{Muted: true}, store.Load())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name  string
		items *memItems
	}{
		{"nothing saved", &memItems{data: map[string][]byte{}}},
		{"read error", &memItems{loadErr: errors.New("disk gone")}},
		{"corrupt data", &memItems{data: map[string][]byte{itemKey: []byte("{not json")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Saved{}, NewStore(tt.items, quiet()).Load())
		})
	}
}

func TestSaveErrorIsReturned(t *testing.T) {
	store := NewStore(&memItems{saveErr: errors.New("read-only")}, quiet())
	err := store.Save(Saved{Fullscreen: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only")
}

func TestMemoryOnlyStore(t *testing.T) {
	store := NewStore(nil, quiet())
	assert.NoError(t, store.Save(Saved{Muted: true}))
	assert.Equal(t, Saved{Muted: true}, store.Current())
	assert.Equal(t, Saved{}, store.Load())
}

func TestTogglesPersist(t *testing.T) {
	items := &memItems{data: map[string][]byte{}}
	store := NewStore(items, quiet())
	store.Load()

	assert.True(t, store.ToggleFullscreen())
	assert.True(t, store.ToggleMute())
	assert.Equal(t, Saved{Muted: true, Fullscreen: true}, NewStore(items, quiet()).Load())

	assert.False(t, store.ToggleFullscreen())
	assert.Equal(t, Saved{Muted: true}, NewStore(items, quiet()).Load())
}

func TestApplyDoesNotPersist(t *testing.T) {
	items := &memItems{data: map[string][]byte{}}
	store := NewStore(items, quiet())

	store.Apply(Saved{Muted: true})
	assert.Equal(t, Saved{Muted: true}, store.Current())
	assert.Equal(t, Saved{}, NewStore(items, quiet()).Load())
}
