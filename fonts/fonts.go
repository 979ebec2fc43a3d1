package fonts

import (
	"fmt"

	cfg "github.com/automoto/barr/config"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Banner FontName = "banner"
	Small  FontName = "small"
)

// Get returns the face registered under f. The same face is returned on
// every call so its glyph cache stays warm.
func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers the HUD, banner and small faces at the sizes in
// config.UI.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, cfg.UI.HUDFontSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Banner, gobold.TTF, cfg.UI.BannerFontSize); err != nil {
		return err
	}
	return LoadFontWithSize(Small, goregular.TTF, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = text.NewGoXFace(truetype.NewFace(fontData, &truetype.Options{Size: size}))
	return nil
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
