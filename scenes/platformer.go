package scenes

import (
	"fmt"

	"github.com/automoto/barr/components"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/input"
	"github.com/automoto/barr/render"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var eventSounds = map[components.Event]cfg.SoundID{
	components.EventJumped:           cfg.SoundJump,
	components.EventPickupCollected:  cfg.SoundPickup,
	components.EventDeliveryRejected: cfg.SoundRejected,
	components.EventGoalReached:      cfg.SoundGoal,
	components.EventEnemyContact:     cfg.SoundHit,
}

// PlatformerScene plays the level catalog through the shared Director.
type PlatformerScene struct {
	env          *Env
	sceneChanger SceneChanger
	input        components.InputData

	paused bool
	debug  bool

	banner      string
	bannerTween *gween.Tween
	bannerAlpha float32
}

func NewPlatformerScene(sc SceneChanger, env *Env) *PlatformerScene {
	ps := &PlatformerScene{
		env:          env,
		sceneChanger: sc,
		debug:        env.Config.Debug.Overlay,
	}
	ps.showBanner(env.Director.Index())
	return ps
}

func (ps *PlatformerScene) Update() {
	input.Poll(&ps.input)

	if ps.input.Action(cfg.ActionPause).JustPressed {
		ps.paused = !ps.paused
		ps.env.Sounds.Play(cfg.SoundMenuSelect)
	}
	if ps.input.Action(cfg.ActionMute).JustPressed {
		ps.env.ToggleMute()
	}
	if ps.input.Action(cfg.ActionFullscreen).JustPressed {
		ps.env.ToggleFullscreen()
	}
	if ps.input.Action(cfg.ActionDebug).JustPressed {
		ps.debug = !ps.debug
	}
	if ps.paused {
		return
	}

	if ps.input.Action(cfg.ActionRestart).JustPressed {
		ps.env.Director.Restart()
		ps.env.Sounds.Play(cfg.SoundHit)
	}

	dt := 1 / float64(ebiten.TPS())
	before := ps.env.Director.Index()
	res := ps.env.Director.Step(dt, ps.input.Controls())
	for _, ev := range res.Events {
		ps.env.Sounds.Play(eventSounds[ev])
	}
	if res.Outcome == components.OutcomeAdvance || res.Level != before {
		ps.showBanner(res.Level)
	}

	ps.updateBanner(float32(dt))
}

func (ps *PlatformerScene) showBanner(level int) {
	ps.banner = fmt.Sprintf("Level %d", level+1)
	ps.bannerTween = gween.New(1, 0, cfg.UI.BannerSeconds, ease.OutQuad)
	ps.bannerAlpha = 1
}

func (ps *PlatformerScene) updateBanner(dt float32) {
	if ps.bannerTween == nil {
		return
	}
	alpha, done := ps.bannerTween.Update(dt)
	ps.bannerAlpha = alpha
	if done {
		ps.bannerTween = nil
		ps.bannerAlpha = 0
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	snap := ps.env.Director.Session().Snapshot()
	size := gamemath.Vec(float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))

	world := render.NewScreen(screen, snap.Bounds)
	render.DrawLevel(world, snap)
	if ps.debug {
		render.DrawDebug(world, snap)
	}

	hud := &render.Screen{Target: screen}
	render.DrawHUD(hud, snap, ps.env.Settings.Current().Muted)
	render.DrawBanner(hud, ps.banner, ps.bannerAlpha, size)
	if ps.paused {
		render.DrawOverlay(hud, size)
		render.DrawBanner(hud, "Paused", 1, size)
	}
}
