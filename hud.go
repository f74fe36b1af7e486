package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/quizplatformer/common"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/session"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 16

var hudFace = ebtext.NewGoXFace(basicfont.Face7x13)

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineHeight
	ebtext.Draw(screen, s, hudFace, op)
}

func drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	for i, line := range strings.Split(s, "\n") {
		w, _ := ebtext.Measure(line, hudFace, hudLineHeight)
		drawText(screen, line, (common.BaseWidth-w)/2, y+float64(i*hudLineHeight), clr)
	}
}

func drawHUD(screen *ebiten.Image, p *play, message string) {
	if p == nil {
		return
	}
	hp, maxHP := 0, p.maxHealth
	if actor, ok := ecs.Get(p.world, p.player, component.ActorComponent.Kind()); ok {
		hp = actor.Health
	}

	vector.DrawFilledRect(screen, 8, 8, 220, 72, color.NRGBA{A: 140}, false)
	if maxHP > 0 {
		frac := float32(max(hp, 0)) / float32(maxHP)
		vector.DrawFilledRect(screen, 16, 16, 200, 10, colornames.Darkred, false)
		vector.DrawFilledRect(screen, 16, 16, 200*frac, 10, colornames.Limegreen, false)
	}
	drawText(screen, fmt.Sprintf("HP %d/%d", hp, maxHP), 16, 32, colornames.White)
	drawText(screen, fmt.Sprintf("Level %d  Score %d  Time %.1fs", p.sess.Level, p.sess.Score, p.sess.Elapsed), 16, 50, colornames.White)

	var prompt string
	switch {
	case p.sess.Over():
	case p.sess.CanFinish:
		prompt = "Press E to finish"
	case p.sess.QuestionAvailable && !p.sess.Asking:
		prompt = "Press E to answer"
	}
	if prompt != "" {
		drawCentered(screen, prompt, common.BaseHeight-60, colornames.Gold)
	}
	if message != "" {
		drawCentered(screen, message, 24, colornames.White)
	}
}

func drawOutcome(screen *ebiten.Image, r session.Result) {
	vector.DrawFilledRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, color.NRGBA{A: 160}, false)
	switch r.Outcome {
	case session.Won:
		drawCentered(screen, fmt.Sprintf("Level %d complete!\nScore %d in %.1fs\n\nEnter: next level  Esc: menu", r.Level, r.Score, r.Elapsed), common.BaseHeight/2-32, colornames.Gold)
	case session.Lost:
		drawCentered(screen, fmt.Sprintf("You died on level %d\nScore %d\n\nR: restart  Esc: menu", r.Level, r.Score), common.BaseHeight/2-32, colornames.Tomato)
	}
}

func drawSummary(screen *ebiten.Image, results []session.Result) {
	vector.DrawFilledRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, color.NRGBA{A: 200}, false)
	lines := []string{"All levels complete", ""}
	total := 0
	for _, r := range results {
		lines = append(lines, r.String())
		total += r.Score
	}
	lines = append(lines, "", fmt.Sprintf("Total score %d", total), "", "Press Enter for the menu")
	drawCentered(screen, strings.Join(lines, "\n"), common.BaseHeight/3, colornames.White)
}
