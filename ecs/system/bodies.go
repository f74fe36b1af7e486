package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
)

var (
	ErrNoBody   = errors.New("system: entity has no physics body")
	ErrNotActor = errors.New("system: entity is not an actor")
	ErrNoPlayer = errors.New("system: no player in world")
)

// LOSBlockers are the layers that stop an enemy from seeing the player.
var LOSBlockers = []physics.CollisionType{
	collisionType(component.LayerWall),
	collisionType(component.LayerBlocker),
	collisionType(component.LayerDoor),
}

func collisionType(l component.CollisionLayer) physics.CollisionType {
	return physics.CollisionType(l)
}

func bodyKind(k component.BodyKind) physics.BodyKind {
	switch k {
	case component.BodyStatic:
		return physics.Static
	case component.BodyKinematic:
		return physics.Kinematic
	default:
		return physics.Dynamic
	}
}

// RulesOf returns the world's Rules singleton, or the defaults.
func RulesOf(w *ecs.World) component.Rules {
	if e, ok := ecs.First(w, component.RulesComponent.Kind()); ok {
		if r, ok := ecs.Get(w, e, component.RulesComponent.Kind()); ok {
			return *r
		}
	}
	return component.DefaultRules()
}

// RegisterBody hands e's PhysicsBody to the engine, centered on its
// Transform. Actors get their animation driven by the body's motion.
func RegisterBody(w *ecs.World, engine *physics.Engine, e ecs.Entity) error {
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return ErrNoBody
	}
	if pb.Registered {
		return nil
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("system: register %s: missing transform", e)
	}

	def := physics.BodyDef{
		Position:  physics.Vector{X: t.X, Y: t.Y},
		Width:     pb.Width,
		Height:    pb.Height,
		Mass:      pb.Mass,
		Friction:  pb.Friction,
		Type:      collisionType(pb.Layer),
		Kind:      bodyKind(pb.Kind),
		MaxSpeedH: pb.MaxSpeedH,
		MaxSpeedV: pb.MaxSpeedV,
	}
	if ecs.Has(w, e, component.ActorComponent.Kind()) {
		def.OnMoved = actorMoved(w, engine, e)
	}
	if err := engine.Register(e, def); err != nil {
		return fmt.Errorf("system: register %s: %w", e, err)
	}
	pb.Registered = true
	t.Width, t.Height = pb.Width, pb.Height
	return nil
}

// SyncBodies registers every body not yet known to the engine.
func SyncBodies(w *ecs.World, engine *physics.Engine) error {
	var errs []error
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		if pb.Registered {
			return
		}
		if err := RegisterBody(w, engine, e); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

// Despawn removes e from the engine and the world. Repeated calls and
// dead handles are no-ops.
func Despawn(w *ecs.World, engine *physics.Engine, e ecs.Entity) {
	engine.RemoveBody(e)
	ecs.DestroyEntity(w, e)
}
