package main

import (
	"errors"

	"github.com/automoto/barr/assets"
	"github.com/automoto/barr/config"
	"github.com/automoto/barr/core"
	"github.com/automoto/barr/fonts"
	"github.com/automoto/barr/scenes"
	"github.com/automoto/barr/settings"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagSkipMenu bool
	flagMute     bool
)

func init() {
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start playing without the title screen")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	conf  *config.Config
	scene Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.conf.Width, g.conf.Height
}

func runGame(cmd *cobra.Command, args []string) error {
	conf, catalog, err := setup()
	if err != nil {
		return err
	}

	logger := log.Default()
	director, err := core.NewDirectorFromCatalog(catalog, conf,
		core.WithLogger(logger),
		core.WithStartLevel(flagLevel),
	)
	if err != nil {
		return err
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	store := settings.Open("barr", logger)
	saved := store.Load()
	if flagMute {
		saved.Muted = true
		store.Apply(saved)
	}

	sounds := assets.NewSoundBoard(config.Audio.SFXVolume)
	sounds.SetMuted(saved.Muted)
	sounds.Preload()

	env := &scenes.Env{
		Config:   conf,
		Catalog:  catalog,
		Director: director,
		Sounds:   sounds,
		Settings: store,
		Logger:   logger,
	}

	g := &Game{conf: conf}
	if flagSkipMenu {
		g.scene = scenes.NewPlatformerScene(g, env)
	} else {
		g.scene = scenes.NewTitleScene(g, env)
	}

	ebiten.SetWindowTitle(conf.Title)
	ebiten.SetWindowSize(conf.Width*2, conf.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(saved.Fullscreen)
	ebiten.SetTPS(conf.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
