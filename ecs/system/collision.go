package system

import (
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
	"github.com/milk9111/quizplatformer/session"
)

// collisionPolicy holds the gameplay reactions to contacts. It keeps
// contact counts because a merged wall may touch the player with several
// shapes at once.
type collisionPolicy struct {
	w      *ecs.World
	engine *physics.Engine
	sess   *session.Session

	wallContacts map[int]int
	doorContacts int
}

// InstallCollisionPolicy registers the level's collision handlers on
// engine. It must be called once per engine.
func InstallCollisionPolicy(w *ecs.World, engine *physics.Engine, sess *session.Session) {
	p := &collisionPolicy{
		w:            w,
		engine:       engine,
		sess:         sess,
		wallContacts: make(map[int]int),
	}

	var (
		player  = collisionType(component.LayerPlayer)
		enemy   = collisionType(component.LayerEnemy)
		bullet  = collisionType(component.LayerBullet)
		coin    = collisionType(component.LayerCoin)
		wall    = collisionType(component.LayerWall)
		blocker = collisionType(component.LayerBlocker)
		door    = collisionType(component.LayerDoor)
	)

	engine.Handle(player, coin, physics.HandlerFuncs{Begin: p.collectCoin})
	engine.Handle(player, blocker, physics.HandlerFuncs{Begin: p.touchBlocker, Separate: p.leaveBlocker})
	engine.Handle(player, door, physics.HandlerFuncs{Begin: p.touchDoor, Separate: p.leaveDoor})
	engine.Handle(player, bullet, physics.HandlerFuncs{Begin: p.shootActor})
	engine.Handle(enemy, bullet, physics.HandlerFuncs{Begin: p.shootActor})
	for _, solid := range []physics.CollisionType{wall, blocker, door} {
		engine.Handle(bullet, solid, physics.HandlerFuncs{Begin: p.stopBullet})
	}
	engine.Handle(enemy, coin, physics.HandlerFuncs{Begin: passThrough})
	engine.Handle(bullet, coin, physics.HandlerFuncs{Begin: passThrough})
	engine.Handle(bullet, bullet, physics.HandlerFuncs{Begin: passThrough})
}

func passThrough(_, _ ecs.Entity) physics.Result {
	return physics.PassThrough
}

func (p *collisionPolicy) collectCoin(_, c ecs.Entity) physics.Result {
	coin, ok := ecs.Get(p.w, c, component.CoinComponent.Kind())
	if !ok {
		return physics.PassThrough
	}
	points := coin.Points
	Despawn(p.w, p.engine, c)
	p.sess.AddScore(points)
	p.w.Events().Push(ecs.Event{Kind: ecs.EventCoinCollected, Entity: c, Value: points})
	return physics.PassThrough
}

func (p *collisionPolicy) touchBlocker(_, b ecs.Entity) physics.Result {
	blocker, ok := ecs.Get(p.w, b, component.BlockerComponent.Kind())
	if !ok {
		return physics.Consume
	}
	p.wallContacts[blocker.Wall]++
	p.sess.SetQuestionAvailable(blocker.Wall)
	return physics.Consume
}

func (p *collisionPolicy) leaveBlocker(_, b ecs.Entity) {
	blocker, ok := ecs.Get(p.w, b, component.BlockerComponent.Kind())
	if !ok {
		return
	}
	p.wallContacts[blocker.Wall]--
	if p.wallContacts[blocker.Wall] > 0 {
		return
	}
	delete(p.wallContacts, blocker.Wall)
	if p.sess.ActiveWall != blocker.Wall {
		return
	}
	for wall := range p.wallContacts {
		p.sess.SetQuestionAvailable(wall)
		return
	}
	p.sess.ClearQuestion()
}

func (p *collisionPolicy) touchDoor(_, _ ecs.Entity) physics.Result {
	p.doorContacts++
	p.sess.SetCanFinish(true)
	return physics.Consume
}

func (p *collisionPolicy) leaveDoor(_, _ ecs.Entity) {
	if p.doorContacts > 0 {
		p.doorContacts--
	}
	if p.doorContacts == 0 {
		p.sess.SetCanFinish(false)
	}
}

// shootActor lets a bullet hurt an actor of another faction. The bullet
// is gone after the first hit.
func (p *collisionPolicy) shootActor(target, b ecs.Entity) physics.Result {
	bullet, ok := ecs.Get(p.w, b, component.BulletComponent.Kind())
	if !ok {
		return physics.PassThrough
	}
	actor, ok := ecs.Get(p.w, target, component.ActorComponent.Kind())
	if !ok || !actor.Alive() || actor.Faction == bullet.Faction {
		return physics.PassThrough
	}

	damage, faction := bullet.Damage, bullet.Faction
	Despawn(p.w, p.engine, b)
	actor.TakeDamage(damage)

	switch actor.Faction {
	case component.FactionPlayer:
		p.w.Events().Push(ecs.Event{Kind: ecs.EventPlayerHit, Entity: target, Value: damage})
	case component.FactionEnemy:
		p.w.Events().Push(ecs.Event{Kind: ecs.EventEnemyHit, Entity: target, Value: damage})
		if actor.Alive() || faction != component.FactionPlayer {
			break
		}
		if enemy, ok := ecs.Get(p.w, target, component.EnemyComponent.Kind()); ok {
			p.sess.AddScore(enemy.KillPoints)
		}
	}
	return physics.PassThrough
}

func (p *collisionPolicy) stopBullet(b, _ ecs.Entity) physics.Result {
	Despawn(p.w, p.engine, b)
	return physics.PassThrough
}
