// Package render draws session snapshots onto an ebiten screen.
package render

import (
	"image/color"

	"github.com/automoto/barr/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the drawing surface the game needs. Positions are in level
// coordinates.
type Renderer interface {
	DrawRect(r gamemath.Rect, c color.Color)
	StrokeRect(r gamemath.Rect, c color.Color)
	// DrawSprite draws img with its top-left at pos. A negative scale.X
	// mirrors the image in place.
	DrawSprite(img *ebiten.Image, pos gamemath.Vector, scale gamemath.Vector)
	DrawText(s string, face text.Face, pos gamemath.Vector, c color.Color, alpha float32)
}

// Screen renders into an ebiten image, shifted by Offset so the level sits
// in the middle of the logical screen.
type Screen struct {
	Target *ebiten.Image
	Offset gamemath.Vector
}

var spriteOp = &ebiten.DrawImageOptions{}

// NewScreen centres a level of the given bounds on target.
func NewScreen(target *ebiten.Image, level gamemath.Rect) *Screen {
	w, h := target.Bounds().Dx(), target.Bounds().Dy()
	return &Screen{
		Target: target,
		Offset: CenterOffset(level, float64(w), float64(h)),
	}
}

// CenterOffset is the translation that centres level in a w x h screen.
func CenterOffset(level gamemath.Rect, w, h float64) gamemath.Vector {
	return gamemath.Vec((w-level.W)/2-level.X, (h-level.H)/2-level.Y)
}

func (s *Screen) DrawRect(r gamemath.Rect, c color.Color) {
	vector.DrawFilledRect(s.Target,
		float32(r.X+s.Offset.X), float32(r.Y+s.Offset.Y),
		float32(r.W), float32(r.H),
		c, false)
}

func (s *Screen) StrokeRect(r gamemath.Rect, c color.Color) {
	vector.StrokeRect(s.Target,
		float32(r.X+s.Offset.X), float32(r.Y+s.Offset.Y),
		float32(r.W), float32(r.H),
		1, c, false)
}

func (s *Screen) DrawSprite(img *ebiten.Image, pos gamemath.Vector, scale gamemath.Vector) {
	spriteOp.GeoM.Reset()
	spriteOp.GeoM.Scale(scale.X, scale.Y)
	if scale.X < 0 {
		spriteOp.GeoM.Translate(-scale.X*float64(img.Bounds().Dx()), 0)
	}
	spriteOp.GeoM.Translate(pos.X+s.Offset.X, pos.Y+s.Offset.Y)
	s.Target.DrawImage(img, spriteOp)
}

func (s *Screen) DrawText(str string, face text.Face, pos gamemath.Vector, c color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X+s.Offset.X, pos.Y+s.Offset.Y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(s.Target, str, face, op)
}
