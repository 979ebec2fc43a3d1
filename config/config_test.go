package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseKeepsMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  stop_mode: decay\n  max_walk_speed: 100\n"))
	require.NoError(t, err)
	assert.Equal(t, StopDecay, cfg.Player.StopMode)
	assert.Equal(t, 100.0, cfg.Player.MaxWalkSpeed)
	assert.Equal(t, 1000.0, cfg.Player.WalkAcceleration)
	assert.Equal(t, 0.1, cfg.Physics.Bounce)
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bounce of one", "physics:\n  bounce: 1\n", "physics.bounce"},
		{"unknown stop mode", "player:\n  stop_mode: drift\n", "player.stop_mode"},
		{"zero slow down", "player:\n  slow_down: 0\n", "player.slow_down"},
		{"zero tile size", "level:\n  tile_size: 0\n", "level.tile_size"},
		{"not yaml", "player: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  walk_speed: 90\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Enemy.WalkSpeed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "jump", ActionJump.String())
	assert.Equal(t, "fullscreen", ActionFullscreen.String())
	assert.Equal(t, "unknown", ActionCount.String())
}
