package assets

import (
	"image/color"

	"github.com/automoto/barr/assets/shapes"
	cfg "github.com/automoto/barr/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var spriteCache = map[shapes.Kind]*ebiten.Image{}

// Sprite returns the generated image for kind, painted for an entity of
// the given size at 1/config.UI.SpriteScale resolution. The first call for
// a kind fixes its resolution; callers scale the image to fit.
func Sprite(kind shapes.Kind, size float64) *ebiten.Image {
	if img, ok := spriteCache[kind]; ok {
		return img
	}
	px := int(size / cfg.UI.SpriteScale)
	img := ebiten.NewImageFromImage(shapes.Paint(kind, px, spriteColor(kind)))
	spriteCache[kind] = img
	return img
}

func spriteColor(kind shapes.Kind) color.RGBA {
	switch kind {
	case shapes.Player:
		return cfg.UI.PlayerColor
	case shapes.Enemy:
		return cfg.UI.EnemyColor
	case shapes.Pickup:
		return cfg.UI.PickupColor
	default:
		return cfg.UI.GoalColor
	}
}
