package system

import (
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
	"github.com/milk9111/quizplatformer/session"
)

// bulletMargin is how far outside the level a bullet may fly before it
// is dropped.
const bulletMargin = 64

// HealthSystem removes dead actors and stray bullets after collisions have
// been resolved, and ends the level when the player dies.
type HealthSystem struct {
	engine *physics.Engine
	sess   *session.Session
}

func NewHealthSystem(engine *physics.Engine, sess *session.Session) *HealthSystem {
	return &HealthSystem{engine: engine, sess: sess}
}

func (hs *HealthSystem) Update(w *ecs.World) {
	if hs == nil || w == nil {
		return
	}

	var dead []ecs.Entity
	var players []ecs.Entity
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, a *component.Actor) {
		if a.Alive() {
			return
		}
		if a.Faction == component.FactionPlayer {
			players = append(players, e)
			return
		}
		dead = append(dead, e)
	})
	for _, e := range players {
		Despawn(w, hs.engine, e)
		if hs.sess.Lose() {
			w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDied, Entity: e})
		}
	}
	for _, e := range dead {
		Despawn(w, hs.engine, e)
		w.Events().Push(ecs.Event{Kind: ecs.EventEnemyKilled, Entity: e})
	}

	bounds, ok := levelBounds(w)
	if !ok {
		return
	}
	var stray []ecs.Entity
	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Bullet, t *component.Transform) {
		if !bounds.Contains(t.X, t.Y, bulletMargin) {
			stray = append(stray, e)
		}
	})
	for _, e := range stray {
		Despawn(w, hs.engine, e)
	}
}

func levelBounds(w *ecs.World) (component.LevelBounds, bool) {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return component.LevelBounds{}, false
	}
	b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	if !ok {
		return component.LevelBounds{}, false
	}
	return *b, true
}

// SessionSystem advances the level clock.
type SessionSystem struct {
	sess *session.Session
	dt   float64
}

func NewSessionSystem(sess *session.Session, dt float64) *SessionSystem {
	return &SessionSystem{sess: sess, dt: dt}
}

func (ss *SessionSystem) Update(_ *ecs.World) {
	if ss != nil {
		ss.sess.Tick(ss.dt)
	}
}
