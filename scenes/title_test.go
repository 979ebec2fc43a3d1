package scenes

import (
	"io"
	"testing"

	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/core"
	"github.com/automoto/barr/settings"
	"github.com/automoto/barr/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChanger struct {
	scenes []interface{}
	quit   bool
}

func (r *recordingChanger) ChangeScene(scene interface{}) { r.scenes = append(r.scenes, scene) }
func (r *recordingChanger) Quit()                         { r.quit = true }

func testEnv(t *testing.T) *Env {
	t.Helper()
	lvl, err := leveldata.Parse("#####\n#S E#\n#####", 40)
	require.NoError(t, err)

	logger := log.New(io.Discard)
	director, err := core.NewDirector([]*leveldata.Level{lvl}, cfg.Default(), core.WithLogger(logger))
	require.NoError(t, err)

	return &Env{
		Config:   cfg.Default(),
		Catalog:  leveldata.NewCatalog(),
		Director: director,
		Settings: settings.NewStore(nil, logger),
		Logger:   logger,
	}
}

func TestTitleStartsPlayOnce(t *testing.T) {
	changer := &recordingChanger{}
	ts := NewTitleScene(changer, testEnv(t))

	// A button click and the start key can land on the same frame.
	ts.play()
	ts.play()
	ts.Update()

	require.Len(t, changer.scenes, 1)
	assert.IsType(t, &PlatformerScene{}, changer.scenes[0])
	assert.False(t, changer.quit)
}
