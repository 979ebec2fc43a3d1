package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	buttonIdle    = color.RGBA{60, 60, 90, 255}
	buttonHover   = color.RGBA{80, 80, 130, 255}
	buttonPressed = color.RGBA{40, 40, 60, 255}
	textIdle      = color.RGBA{255, 255, 255, 255}
	textDim       = color.RGBA{170, 170, 190, 255}
)

// TitleUI is the start screen: the game title, the level count and the
// Play and Quit buttons.
type TitleUI struct {
	UI *ebitenui.UI

	OnPlay func()
	OnQuit func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTitleUI(title string, levels int, onPlay, onQuit func()) (*TitleUI, error) {
	ui := &TitleUI{
		OnPlay: onPlay,
		OnQuit: onQuit,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(title, levels)
	return ui, nil
}

func (ui *TitleUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (ui *TitleUI) buildUI(title string, levels int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{24, 20, 37, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{Idle: textIdle}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%d levels", levels), &ui.smallFace, &widget.LabelColor{Idle: textDim}),
	))

	contentContainer.AddChild(ui.button("Play", func() {
		if ui.OnPlay != nil {
			ui.OnPlay()
		}
	}))
	contentContainer.AddChild(ui.button("Quit", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("arrows/WASD move, space jumps, P pauses, M mutes", &ui.smallFace, &widget.LabelColor{Idle: textDim}),
	))

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *TitleUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(buttonIdle),
			Hover:   image.NewNineSliceColor(buttonHover),
			Pressed: image.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle: textIdle,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
