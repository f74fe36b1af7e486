package system

import (
	"log"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
	"github.com/milk9111/quizplatformer/session"
)

// ControlSystem ticks actor timers and lets each actor's controller act
// on the world through a ControlContext.
type ControlSystem struct {
	engine *physics.Engine
	sess   *session.Session
	dt     float64
}

func NewControlSystem(engine *physics.Engine, sess *session.Session, dt float64) *ControlSystem {
	return &ControlSystem{engine: engine, sess: sess, dt: dt}
}

func (cs *ControlSystem) Update(w *ecs.World) {
	if cs == nil || w == nil || cs.engine == nil {
		return
	}

	rules := RulesOf(w)
	ents := w.Query(component.BrainComponent.Kind(), component.ActorComponent.Kind())
	for _, e := range ents {
		brain, ok := ecs.Get(w, e, component.BrainComponent.Kind())
		if !ok || brain.Controller == nil {
			continue
		}
		actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
		if !ok || !actor.Alive() || !cs.engine.Has(e) {
			continue
		}
		actor.Tick(cs.dt)
		brain.Controller.Control(cs.context(w, e, actor, rules))
	}
}

func (cs *ControlSystem) context(w *ecs.World, e ecs.Entity, actor *component.Actor, rules component.Rules) *component.ControlContext {
	engine := cs.engine
	ctx := &component.ControlContext{
		Entity: uint64(e),
		Actor:  actor,
		Dt:     cs.dt,
	}
	ctx.Input, _ = ecs.Get(w, e, component.InputComponent.Kind())
	ctx.Player, _ = ecs.Get(w, e, component.PlayerComponent.Kind())
	ctx.Enemy, _ = ecs.Get(w, e, component.EnemyComponent.Kind())

	ctx.Position = func() (float64, float64) {
		p, _ := engine.Position(e)
		return p.X, p.Y
	}
	ctx.TargetPosition = func() (float64, float64, bool) {
		if ctx.Enemy == nil {
			return 0, 0, false
		}
		target := ecs.Entity(ctx.Enemy.Target)
		if !ecs.IsAlive(w, target) {
			return 0, 0, false
		}
		p, ok := engine.Position(target)
		return p.X, p.Y, ok
	}
	ctx.IsOnGround = func() bool { return engine.IsOnGround(e) }
	ctx.HasLineOfSight = func(x, y, maxDistance float64) bool {
		from, _ := engine.Position(e)
		return engine.HasLineOfSight(from, physics.Vector{X: x, Y: y}, maxDistance, LOSBlockers...)
	}
	ctx.ApplyForce = func(x, y float64) { engine.ApplyForce(e, physics.Vector{X: x, Y: y}) }
	ctx.ApplyImpulse = func(x, y float64) { engine.ApplyImpulse(e, physics.Vector{X: x, Y: y}) }
	ctx.SetFriction = func(f float64) { engine.SetFriction(e, f) }
	ctx.Fire = func() {
		if _, err := RangedAttack(w, engine, e, rules.Bullet); err != nil {
			log.Printf("combat: entity=%s fire: %v", e, err)
		}
	}
	ctx.Interact = func() { Interact(w, engine, cs.sess, e) }
	return ctx
}
