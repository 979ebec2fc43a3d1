package scenes

import (
	"github.com/automoto/barr/assets"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/core"
	"github.com/automoto/barr/settings"
	"github.com/automoto/barr/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Env is what every scene shares for the life of the process.
type Env struct {
	Config   *cfg.Config
	Catalog  *leveldata.Catalog
	Director *core.Director
	Sounds   *assets.SoundBoard
	Settings *settings.Store
	Logger   *log.Logger
}

// ToggleMute flips the mute preference and persists it.
func (env *Env) ToggleMute() {
	env.Sounds.SetMuted(env.Settings.ToggleMute())
}

// ToggleFullscreen flips the fullscreen preference and persists it.
func (env *Env) ToggleFullscreen() {
	ebiten.SetFullscreen(env.Settings.ToggleFullscreen())
}
