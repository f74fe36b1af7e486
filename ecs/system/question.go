package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
	"github.com/milk9111/quizplatformer/session"
)

var ErrNotOnGround = errors.New("system: player is not on the ground")

// AnswerOutcome reports what an answer did to the level.
type AnswerOutcome struct {
	Correct     bool
	Wall        int
	Removed     int
	Explanation string
}

// AnswerQuestion resolves the question guarding the wall the player is
// touching. A correct answer removes every tile of that wall; a wrong one
// costs health and score and leaves the wall standing.
func AnswerQuestion(w *ecs.World, engine *physics.Engine, sess *session.Session, answer string) (AnswerOutcome, error) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return AnswerOutcome{}, ErrNoPlayer
	}
	q, ok := sess.CurrentQuestion()
	if !ok {
		return AnswerOutcome{}, session.ErrNoQuestion
	}
	if !engine.IsOnGround(player) {
		return AnswerOutcome{}, ErrNotOnGround
	}
	if err := sess.Submit(); err != nil {
		return AnswerOutcome{}, fmt.Errorf("system: answer: %w", err)
	}

	rules := RulesOf(w)
	wall := sess.ActiveWall
	out := AnswerOutcome{Wall: wall, Explanation: q.Explanation}

	if !q.IsCorrect(answer) {
		if actor, ok := ecs.Get(w, player, component.ActorComponent.Kind()); ok {
			actor.TakeDamage(rules.WrongAnswerDamage)
		}
		sess.AddScore(rules.WrongPoints)
		w.Events().Push(ecs.Event{Kind: ecs.EventWrongAnswer, Entity: player, Value: wall})
		return out, nil
	}

	out.Correct = true
	var tiles []ecs.Entity
	ecs.ForEach(w, component.BlockerComponent.Kind(), func(e ecs.Entity, b *component.Blocker) {
		if b.Wall == wall {
			tiles = append(tiles, e)
		}
	})
	for _, e := range tiles {
		Despawn(w, engine, e)
	}
	out.Removed = len(tiles)

	sess.AddScore(rules.CorrectPoints)
	sess.MarkCleared(wall)
	sess.ClearQuestion()
	w.Events().Push(ecs.Event{Kind: ecs.EventBlockerOpened, Entity: player, Value: wall})
	return out, nil
}

// Interact handles the interact key: finishing the level at a door, or
// opening the question of the wall in front of the player.
func Interact(w *ecs.World, engine *physics.Engine, sess *session.Session, e ecs.Entity) {
	if sess.Over() || sess.Asking || !engine.IsOnGround(e) {
		return
	}
	if sess.CanFinish {
		if sess.Finish() {
			w.Events().Push(ecs.Event{Kind: ecs.EventLevelCompleted, Entity: e, Value: sess.Score})
		}
		return
	}
	if sess.QuestionAvailable {
		if _, err := sess.OpenQuestion(); err != nil {
			log.Printf("question: wall %d: %v", sess.ActiveWall, err)
		}
	}
}
