package main

import (
	"image/color"

	"github.com/milk9111/fireworks/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	pauseWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pauseGrey  = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xbb, A: 0xff}
)

// NewPauseUI builds the centered pause panel. Labels use the built-in basic
// font so no theme assets are needed.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x05, G: 0x05, B: 0x12, A: 210})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x2a, G: 0x2a, B: 0x44, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x3c, G: 0x3c, B: 0x66, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnText := &widget.ButtonTextColor{Idle: pauseWhite}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnIdle}),
			widget.ButtonOpts.Text(label, &face, btnText),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Paused", &face, pauseWhite),
		widget.TextOpts.WidgetOpts(center),
	))
	panel.AddChild(button("Resume", g.resume))
	panel.AddChild(button("Clear sky", g.clear))
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("click: launch   space: autoplay   c: clear   esc: pause", &face, pauseGrey),
		widget.TextOpts.WidgetOpts(center),
	))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
