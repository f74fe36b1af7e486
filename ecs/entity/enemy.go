package entity

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/ecs/system"
	"github.com/milk9111/quizplatformer/levels"
	"github.com/milk9111/quizplatformer/prefabs"
)

func buildEnemy(w *ecs.World, m levels.Entity, ctx *buildContext) (ecs.Entity, error) {
	spec, err := prefabs.DecodeProps(m.Props, ctx.Set.Enemy)
	if err != nil {
		return 0, fmt.Errorf("enemy: props: %w", err)
	}
	x, y := ctx.standOn(m.X, m.Y, spec.Body.Height)

	cooldown := spec.AttackCooldownMin
	if spread := spec.AttackCooldownMax - spec.AttackCooldownMin; spread > 0 && ctx.Rand != nil {
		cooldown += ctx.Rand.Float64() * spread
	}

	return NewEnemyAt(w, EnemyParams{
		Spec:           spec,
		X:              x,
		Y:              y,
		AttackCooldown: cooldown,
		ViewDistance:   spec.ViewDistance * ctx.TileSize,
		Target:         ctx.Player,
		KillPoints:     ctx.Set.Scoring.EnemyKill,
		Controller:     ctx.controllerFor(spec.Script),
	})
}

// EnemyParams are the per-instance values of an enemy.
type EnemyParams struct {
	Spec           prefabs.EnemySpec
	X, Y           float64
	AttackCooldown float64
	// ViewDistance is in world units.
	ViewDistance float64
	Target       ecs.Entity
	KillPoints   int
	Controller   component.ActorController
}

func NewEnemyAt(w *ecs.World, p EnemyParams) (ecs.Entity, error) {
	enemy := ecs.CreateEntity(w)
	if err := ecs.Add(w, enemy, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}
	if err := ecs.Add(w, enemy, component.ActorComponent.Kind(), &component.Actor{
		Health:    p.Spec.Health,
		MaxHealth: p.Spec.Health,
		Faction:   component.FactionEnemy,
		Facing:    component.FacingLeft,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add actor: %w", err)
	}
	if err := ecs.Add(w, enemy, component.EnemyComponent.Kind(), &component.Enemy{
		AttackCooldown: p.AttackCooldown,
		ViewDistance:   p.ViewDistance,
		MoveForce:      p.Spec.MoveForce,
		Target:         uint64(p.Target),
		KillPoints:     p.KillPoints,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}

	controller := p.Controller
	if controller == nil {
		controller = system.ChaseController{}
	}
	if err := ecs.Add(w, enemy, component.BrainComponent.Kind(), &component.Brain{Controller: controller}); err != nil {
		return 0, fmt.Errorf("enemy: add brain: %w", err)
	}
	if err := addBody(w, enemy, p.X, p.Y, component.PhysicsBody{
		Width:     p.Spec.Body.Width,
		Height:    p.Spec.Body.Height,
		Mass:      p.Spec.Body.Mass,
		Friction:  p.Spec.Body.Friction,
		Kind:      component.BodyDynamic,
		Layer:     component.LayerEnemy,
		MaxSpeedH: p.Spec.Body.MaxSpeedH,
		MaxSpeedV: p.Spec.Body.MaxSpeedV,
	}, component.Sprite{Kind: "enemy", Layer: layerEnemy}); err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	return enemy, nil
}

// controllerFor returns a script controller for name, compiling each
// script once per level. An empty name or a broken script gives the
// built-in chase behavior.
func (ctx *buildContext) controllerFor(name string) component.ActorController {
	if name == "" {
		return system.ChaseController{}
	}
	if ctx.scripts == nil {
		ctx.scripts = make(map[string]*tengo.Compiled)
	}
	compiled, ok := ctx.scripts[name]
	if !ok {
		src, err := prefabs.LoadScript(name)
		if err == nil {
			compiled, err = system.CompileScript(name, src)
		}
		if err != nil {
			log.Printf("enemy: script %s: %v; using chase", name, err)
		}
		ctx.scripts[name] = compiled
	}
	if compiled == nil {
		return system.ChaseController{}
	}
	return system.NewScriptController(name, compiled)
}
