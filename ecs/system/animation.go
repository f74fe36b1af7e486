package system

import (
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
)

// actorMoved feeds a body's per-step displacement into the actor's facing
// and animation state.
func actorMoved(w *ecs.World, engine *physics.Engine, e ecs.Entity) physics.MoveFunc {
	return func(dx, dy, _ float64) {
		actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
		if !ok {
			return
		}
		rules := RulesOf(w)
		actor.UpdateFacing(dx, rules.DeadZone)
		actor.Anim.Advance(dx, dy, engine.IsOnGround(e), rules.DeadZone, rules.FrameDistance)
	}
}
