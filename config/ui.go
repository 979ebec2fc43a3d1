package config

import "image/color"

// UIConfig contains colors and layout for the game window
type UIConfig struct {
	BackgroundColor color.RGBA
	WallColor       color.RGBA
	GoalColor       color.RGBA
	PickupColor     color.RGBA
	PlayerColor     color.RGBA
	EnemyColor      color.RGBA
	HUDTextColor    color.RGBA
	OverlayColor    color.RGBA
	DebugColor      color.RGBA

	HUDFontSize    float64
	BannerFontSize float64
	// BannerSeconds is how long the level banner takes to fade out.
	BannerSeconds float32
	// SpriteScale is the draw scale of the generated sprites, which are
	// rendered at 1/SpriteScale of an entity's size.
	SpriteScale float64
}

var UI UIConfig

func init() {
	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 24, G: 20, B: 37, A: 255},
		WallColor:       color.RGBA{R: 90, G: 83, B: 83, A: 255},
		GoalColor:       color.RGBA{R: 99, G: 199, B: 77, A: 255},
		PickupColor:     color.RGBA{R: 254, G: 174, B: 52, A: 255},
		PlayerColor:     color.RGBA{R: 44, G: 232, B: 245, A: 255},
		EnemyColor:      color.RGBA{R: 228, G: 59, B: 68, A: 255},
		HUDTextColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		OverlayColor:    color.RGBA{R: 0, G: 0, B: 0, A: 160},
		DebugColor:      color.RGBA{R: 255, G: 0, B: 255, A: 200},
		HUDFontSize:     14,
		BannerFontSize:  28,
		BannerSeconds:   1.5,
		SpriteScale:     0.1,
	}
}
