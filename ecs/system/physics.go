package system

import (
	"log"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
)

// PhysicsSystem registers new bodies, steps the engine once per tick and
// mirrors body positions into transforms.
type PhysicsSystem struct {
	engine *physics.Engine
	dt     float64
}

func NewPhysicsSystem(engine *physics.Engine, dt float64) *PhysicsSystem {
	return &PhysicsSystem{engine: engine, dt: dt}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.engine == nil || w == nil {
		return
	}

	if err := SyncBodies(w, ps.engine); err != nil {
		log.Printf("physics: %v", err)
	}

	ps.engine.Step(ps.dt)

	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, t *component.Transform) {
		if pos, ok := ps.engine.Position(e); ok {
			t.X, t.Y = pos.X, pos.Y
		}
	})
}
