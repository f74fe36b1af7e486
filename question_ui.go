package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/quizplatformer/common"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/ecs/system"
	"github.com/milk9111/quizplatformer/session"
)

// questionView is the overlay for the blocker wall the player is at.
type questionView struct {
	ui       *ebitenui.UI
	feedback *widget.Text
}

func (g *Game) openQuestion() {
	q, ok := g.play.sess.CurrentQuestion()
	if !ok {
		g.play.sess.CloseQuestion()
		return
	}
	g.question = newQuestionView(g, q)
}

func (g *Game) closeQuestion() {
	g.play.sess.CloseQuestion()
	g.question = nil
}

func (g *Game) answer(a string) {
	p := g.play
	out, err := system.AnswerQuestion(p.world, p.engine, p.sess, a)
	switch {
	case errors.Is(err, session.ErrAlreadyAnswered):
		g.question.feedback.Label = "Already answered. Step away and come back to try again."
		return
	case err != nil:
		g.question.feedback.Label = err.Error()
		return
	}

	rules := system.RulesOf(p.world)
	if out.Correct {
		g.say(fmt.Sprintf("Correct! +%d", rules.CorrectPoints))
		g.closeQuestion()
		return
	}

	g.question.feedback.Label = fmt.Sprintf("Wrong. -%d HP, %+d points", rules.WrongAnswerDamage, rules.WrongPoints)
	if out.Explanation != "" {
		g.question.feedback.Label += "\n" + out.Explanation
	}
	if actor, ok := ecs.Get(p.world, p.player, component.ActorComponent.Kind()); !ok || !actor.Alive() {
		g.closeQuestion()
	}
}

func newQuestionView(g *Game, q session.Question) *questionView {
	panel := newPanel(color.NRGBA{R: 0x10, G: 0x10, B: 0x30, A: 220}, common.BaseWidth/2, common.BaseHeight/3)
	panel.AddChild(newLabel(q.Text, uiWhite))
	for _, a := range q.Answers {
		panel.AddChild(newButton(a, common.BaseWidth/3, func() { g.answer(a) }))
	}

	view := &questionView{feedback: newLabel("", uiGold)}
	panel.AddChild(view.feedback)
	panel.AddChild(newButton("Close (Esc)", 160, g.closeQuestion))
	view.ui = overlay(panel)
	return view
}
