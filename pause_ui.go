package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/quizplatformer/common"
	"golang.org/x/image/font/basicfont"
)

var (
	uiWhite    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiGold     = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	uiBtnIdle  = imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x55, A: 255})
	uiBtnHover = imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x88, A: 255})
)

// uiFace is the basic bitmap font, so overlays need no font assets.
func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

var rowCenter = widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

// newPanel returns a centered vertical panel of at least minW x minH.
func newPanel(bg color.Color, minW, minH int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func newLabel(s string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, uiFace(), clr),
		widget.TextOpts.WidgetOpts(rowCenter),
	)
}

func newButton(label string, minW int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: uiBtnIdle, Hover: uiBtnHover, Pressed: uiBtnHover}),
		widget.ButtonOpts.Text(label, uiFace(), &widget.ButtonTextColor{Idle: uiWhite}),
		widget.ButtonOpts.WidgetOpts(rowCenter, widget.WidgetOpts.MinSize(minW, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// overlay centers panel on an otherwise empty root.
func overlay(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds the pause menu shown while Esc pauses the level.
func NewPauseUI(g *Game) *ebitenui.UI {
	panel := newPanel(color.NRGBA{A: 200}, common.BaseWidth/3, common.BaseHeight/3)
	panel.AddChild(newLabel("Paused", uiWhite))
	panel.AddChild(newButton("Resume", 160, func() {
		g.paused = false
	}))
	panel.AddChild(newButton("Restart level", 160, func() {
		if err := g.loadLevel(g.levelID); err != nil {
			log.Printf("game: restart level %d: %v", g.levelID, err)
			return
		}
		g.paused = false
	}))
	panel.AddChild(newButton("Main menu", 160, g.showStartMenu))
	return overlay(panel)
}
