package main

import (
	"image/color"
	"log"
	"strconv"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/quizplatformer/common"
	"github.com/milk9111/quizplatformer/levels"
)

var menuBackground = color.NRGBA{R: 0x10, G: 0x10, B: 0x30, A: 230}

// newRow lays children out horizontally, centered in a vertical panel.
func newRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(rowCenter),
	)
}

// showStartMenu drops any level in progress and shows the title screen.
func (g *Game) showStartMenu() {
	g.play = nil
	g.done = false
	g.paused = false
	g.question = nil
	g.results = nil

	panel := newPanel(menuBackground, common.BaseWidth/3, common.BaseHeight/2)
	panel.AddChild(newLabel("Quiz Platformer", uiGold))
	panel.AddChild(newButton("Play", 200, func() { g.startLevel(1) }))
	panel.AddChild(newButton("Select level", 200, g.showLevelSelect))
	panel.AddChild(newButton("Scores", 200, func() { g.showScores(1) }))
	panel.AddChild(newButton("Quit", 200, func() { g.quit = true }))
	g.menu = overlay(panel)
}

func (g *Game) showLevelSelect() {
	panel := newPanel(menuBackground, common.BaseWidth/3, common.BaseHeight/3)
	panel.AddChild(newLabel("Select a level", uiWhite))
	row := newRow()
	for _, id := range levels.IDs() {
		row.AddChild(newButton(strconv.Itoa(id), 50, func() { g.startLevel(id) }))
	}
	panel.AddChild(row)
	panel.AddChild(newButton("Back", 200, g.showStartMenu))
	g.menu = overlay(panel)
}

// showScores shows level's leaderboard with a button per level to switch.
func (g *Game) showScores(level int) {
	panel := newPanel(menuBackground, common.BaseWidth/2, common.BaseHeight/2)
	row := newRow()
	for _, id := range levels.IDs() {
		row.AddChild(newButton(strconv.Itoa(id), 50, func() { g.showScores(id) }))
	}
	panel.AddChild(row)
	panel.AddChild(newLabel(g.scores.Summary(level), uiWhite))

	buttons := newRow()
	buttons.AddChild(newButton("Back", 160, g.showStartMenu))
	buttons.AddChild(newButton("Reset", 160, func() {
		if err := g.scores.Reset(); err != nil {
			log.Printf("game: reset scores: %v", err)
		}
		g.showScores(level)
	}))
	panel.AddChild(buttons)
	g.menu = overlay(panel)
}

func (g *Game) startLevel(id int) {
	if err := g.loadLevel(id); err != nil {
		log.Printf("game: start level %d: %v", id, err)
		return
	}
	g.menu = nil
}

// recordResult saves the finished attempt to the results store.
func (g *Game) recordResult() {
	r := g.play.sess.Result()
	if err := g.scores.Commit(r); err != nil {
		log.Printf("game: record %s: %v", r, err)
	}
	if g.debug {
		log.Printf("game: recorded %s", r)
	}
}
