package render

import (
	"fmt"

	"github.com/automoto/barr/assets"
	"github.com/automoto/barr/assets/shapes"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/core"
	"github.com/automoto/barr/fonts"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const hudMargin = 8

// DrawLevel draws walls, triggers and actors in level coordinates.
func DrawLevel(r Renderer, snap core.Snapshot) {
	for _, w := range snap.Walls {
		r.DrawRect(w, cfg.UI.WallColor)
	}
	for _, g := range snap.Goals {
		drawActor(r, shapes.Goal, g, gamemath.FacingRight)
	}
	for _, p := range snap.Pickups {
		drawActor(r, shapes.Pickup, p, gamemath.FacingRight)
	}
	for _, e := range snap.Enemies {
		drawActor(r, shapes.Enemy, e.Rect, e.Facing)
	}
	drawActor(r, shapes.Player, snap.Player.Rect, snap.Player.Facing)

	if snap.Carrying {
		rect := snap.Player.Rect
		size := rect.W / 2
		held := gamemath.NewRect(rect.Center().X-size/2, rect.Y-size, size, size)
		drawActor(r, shapes.Pickup, held, gamemath.FacingRight)
	}
}

func drawActor(r Renderer, kind shapes.Kind, rect gamemath.Rect, facing gamemath.Facing) {
	img := assets.Sprite(kind, rect.W)
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if w == 0 || h == 0 {
		r.DrawRect(rect, cfg.UI.DebugColor)
		return
	}
	scale := gamemath.Vec(rect.W/w*facing.Sign(), rect.H/h)
	r.DrawSprite(img, rect.Pos(), scale)
}

// DrawHUD draws the level number and carry indicator in screen coordinates.
func DrawHUD(r Renderer, snap core.Snapshot, muted bool) {
	face := fonts.HUD.Get()
	r.DrawText(fmt.Sprintf("Level: %d", snap.Level+1), face, gamemath.Vec(hudMargin, hudMargin), cfg.UI.HUDTextColor, 1)

	status := "Barr: -"
	if snap.Carrying {
		status = "Barr: carried"
	}
	r.DrawText(status, face, gamemath.Vec(hudMargin, hudMargin+cfg.UI.HUDFontSize+4), cfg.UI.HUDTextColor, 1)

	if muted {
		r.DrawText("muted", fonts.Small.Get(), gamemath.Vec(hudMargin, hudMargin+2*(cfg.UI.HUDFontSize+4)), cfg.UI.HUDTextColor, 0.7)
	}
}

// DrawDebug outlines every body and prints the player's motion state.
func DrawDebug(r Renderer, snap core.Snapshot) {
	for _, w := range snap.Walls {
		r.StrokeRect(w, cfg.UI.DebugColor)
	}
	for _, e := range snap.Enemies {
		r.StrokeRect(e.Rect, cfg.UI.DebugColor)
	}
	r.StrokeRect(snap.Player.Rect, cfg.UI.DebugColor)

	p := snap.Player
	line := fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f grounded %t", p.Rect.X, p.Rect.Y, p.Velocity.X, p.Velocity.Y, snap.Grounded)
	r.DrawText(line, fonts.Small.Get(), gamemath.Vec(0, snap.Bounds.Bottom()+4), cfg.UI.DebugColor, 1)
}

// DrawBanner draws msg centred on a screen of the given size.
func DrawBanner(r Renderer, msg string, alpha float32, screen gamemath.Vector) {
	if alpha <= 0 {
		return
	}
	face := fonts.Banner.Get()
	w, h := text.Measure(msg, face, 0)
	pos := gamemath.Vec((screen.X-w)/2, (screen.Y-h)/2)
	r.DrawText(msg, face, pos, cfg.UI.HUDTextColor, alpha)
}

// DrawOverlay dims the whole screen, for the pause state.
func DrawOverlay(r Renderer, screen gamemath.Vector) {
	r.DrawRect(gamemath.NewRect(0, 0, screen.X, screen.Y), cfg.UI.OverlayColor)
}
