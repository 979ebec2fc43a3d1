package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScene shows the start menu.
type TitleScene struct {
	env          *Env
	sceneChanger SceneChanger
	ui           *ui.TitleUI
	once         sync.Once
	started      bool
}

func NewTitleScene(sc SceneChanger, env *Env) *TitleScene {
	return &TitleScene{env: env, sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	if ts.started {
		return
	}
	ts.once.Do(ts.configure)
	if ts.ui == nil {
		ts.play()
		return
	}
	ts.ui.UI.Update()
	// A button click may already have changed the scene.
	if ts.started {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ts.play()
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ui == nil {
		return
	}
	ts.ui.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	title, err := ui.NewTitleUI(ts.env.Config.Title, ts.env.Catalog.Len(), ts.play, ts.sceneChanger.Quit)
	if err != nil {
		ts.env.Logger.Warn("title menu unavailable, starting play", "err", err)
		return
	}
	ts.ui = title
}

func (ts *TitleScene) play() {
	if ts.started {
		return
	}
	ts.started = true
	ts.env.Sounds.Play(cfg.SoundMenuSelect)
	ts.sceneChanger.ChangeScene(NewPlatformerScene(ts.sceneChanger, ts.env))
}
