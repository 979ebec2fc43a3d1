package core

import (
	"io"
	"testing"

	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func parseLevels(t *testing.T, texts ...string) []*leveldata.Level {
	t.Helper()
	levels := make([]*leveldata.Level, 0, len(texts))
	for _, text := range texts {
		lvl, err := leveldata.Parse(text, 40)
		require.NoError(t, err)
		levels = append(levels, lvl)
	}
	return levels
}

func newDirector(t *testing.T, texts ...string) *Director {
	t.Helper()
	d, err := NewDirector(parseLevels(t, texts...), cfg.Default(), WithLogger(quietLogger()))
	require.NoError(t, err)
	return d
}
