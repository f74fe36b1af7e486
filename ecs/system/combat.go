package system

import (
	"fmt"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
)

// bulletLayer draws bullets above every actor.
const bulletLayer = 10

// RangedAttack spawns a bullet spec.Offset in front of owner travelling
// in its facing direction and resets the owner's attack timer. Cooldown
// gating is left to the caller.
func RangedAttack(w *ecs.World, engine *physics.Engine, owner ecs.Entity, spec component.BulletRules) (ecs.Entity, error) {
	actor, ok := ecs.Get(w, owner, component.ActorComponent.Kind())
	if !ok {
		return 0, ErrNotActor
	}
	pos, ok := engine.Position(owner)
	if !ok {
		return 0, ErrNoBody
	}

	dir := actor.Facing.Sign()
	x := pos.X + dir*spec.Offset
	y := pos.Y

	bullet := ecs.CreateEntity(w)
	if err := ecs.Add(w, bullet, component.BulletComponent.Kind(), &component.Bullet{
		Direction: dir,
		Owner:     uint64(owner),
		Faction:   actor.Faction,
		Damage:    spec.Damage,
	}); err != nil {
		return 0, fmt.Errorf("bullet: add bullet: %w", err)
	}
	if err := ecs.Add(w, bullet, component.TransformComponent.Kind(), &component.Transform{
		X: x, Y: y, Width: spec.Width, Height: spec.Height,
	}); err != nil {
		return 0, fmt.Errorf("bullet: add transform: %w", err)
	}
	if err := ecs.Add(w, bullet, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  spec.Width,
		Height: spec.Height,
		Kind:   component.BodyKinematic,
		Layer:  component.LayerBullet,
	}); err != nil {
		return 0, fmt.Errorf("bullet: add physics body: %w", err)
	}
	if err := ecs.Add(w, bullet, component.SpriteComponent.Kind(), &component.Sprite{
		Kind: "bullet", Layer: bulletLayer,
	}); err != nil {
		return 0, fmt.Errorf("bullet: add sprite: %w", err)
	}
	if err := RegisterBody(w, engine, bullet); err != nil {
		ecs.DestroyEntity(w, bullet)
		return 0, err
	}

	engine.SetVelocity(bullet, physics.Vector{X: dir * spec.Velocity, Y: 0})
	actor.ResetAttack()
	w.Events().Push(ecs.Event{Kind: ecs.EventBulletFired, Entity: owner})
	return bullet, nil
}
