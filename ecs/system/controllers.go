package system

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/quizplatformer/ecs/component"
)

// PlayerController maps input onto the player's body.
type PlayerController struct{}

func (PlayerController) Name() string { return "player" }

func (PlayerController) Control(ctx *component.ControlContext) {
	in, p := ctx.Input, ctx.Player
	if in == nil || p == nil {
		return
	}

	if in.MoveX != 0 {
		ctx.SetFriction(p.MoveFriction)
	} else {
		ctx.SetFriction(p.StopFriction)
	}
	ctx.ApplyForce(in.MoveX*p.MoveForce, 0)

	if in.JumpPressed && ctx.IsOnGround() {
		ctx.ApplyImpulse(0, p.JumpImpulse)
	}
	if in.AttackPressed && ctx.Actor.CanAttack(p.AttackCooldown) {
		ctx.Fire()
	}
	if in.Interact {
		ctx.Interact()
	}
}

// ChaseController walks toward a visible target and shoots when the
// cooldown allows and the enemy already faces it.
type ChaseController struct{}

func (ChaseController) Name() string { return "chase" }

func (ChaseController) Control(ctx *component.ControlContext) {
	en := ctx.Enemy
	if en == nil {
		return
	}
	tx, ty, ok := ctx.TargetPosition()
	if !ok || !ctx.HasLineOfSight(tx, ty, en.ViewDistance) {
		return
	}
	x, _ := ctx.Position()
	ctx.ApplyForce(direction(tx-x)*en.MoveForce, 0)
	if ctx.Actor.CanAttack(en.AttackCooldown) && faces(ctx.Actor.Facing, tx-x) {
		ctx.Fire()
	}
}

func direction(dx float64) float64 {
	if dx < 0 {
		return -1
	}
	return 1
}

func faces(f component.Facing, dx float64) bool {
	return dx == 0 || math.Signbit(dx) == (f == component.FacingLeft)
}

// scriptBudget bounds one script run so a runaway loop cannot stall the
// tick.
const scriptBudget = 10 * time.Millisecond

var scriptInputs = map[string]any{
	"self_x":     0.0,
	"self_y":     0.0,
	"target_x":   0.0,
	"target_y":   0.0,
	"has_target": false,
	"can_see":    false,
	"move_force": 0.0,
	"can_attack": false,
}

// ScriptController runs a tengo script each tick to pick the horizontal
// force and whether to fire. Any runtime error switches the enemy to the
// chase behavior for the rest of the level.
type ScriptController struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
	fallback ChaseController
}

// CompileScript compiles src once; NewScriptController makes a per-enemy
// instance.
func CompileScript(name string, src []byte) (*tengo.Compiled, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math"))
	for k, v := range scriptInputs {
		if err := s.Add(k, v); err != nil {
			return nil, fmt.Errorf("script %s: add %s: %w", name, k, err)
		}
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", name, err)
	}
	return compiled, nil
}

// NewScriptController clones compiled so each enemy has its own globals.
func NewScriptController(name string, compiled *tengo.Compiled) *ScriptController {
	return &ScriptController{name: name, compiled: compiled.Clone()}
}

func (s *ScriptController) Name() string { return "script:" + s.name }

func (s *ScriptController) Control(ctx *component.ControlContext) {
	if s.failed || s.compiled == nil {
		s.fallback.Control(ctx)
		return
	}
	en := ctx.Enemy
	if en == nil {
		return
	}

	x, y := ctx.Position()
	tx, ty, hasTarget := ctx.TargetPosition()
	canSee := hasTarget && ctx.HasLineOfSight(tx, ty, en.ViewDistance)
	inputs := map[string]any{
		"self_x":     x,
		"self_y":     y,
		"target_x":   tx,
		"target_y":   ty,
		"has_target": hasTarget,
		"can_see":    canSee,
		"move_force": en.MoveForce,
		"can_attack": ctx.Actor.CanAttack(en.AttackCooldown),
	}
	for k, v := range inputs {
		if err := s.compiled.Set(k, v); err != nil {
			s.fail(ctx, err)
			return
		}
	}
	runCtx, cancel := context.WithTimeout(context.Background(), scriptBudget)
	defer cancel()
	if err := s.compiled.RunContext(runCtx); err != nil {
		s.fail(ctx, err)
		return
	}

	if fx := s.compiled.Get("force_x").Float(); fx != 0 {
		ctx.ApplyForce(fx, 0)
	}
	if s.compiled.Get("fire").Bool() && hasTarget && ctx.Actor.CanAttack(en.AttackCooldown) && faces(ctx.Actor.Facing, tx-x) {
		ctx.Fire()
	}
}

func (s *ScriptController) fail(ctx *component.ControlContext, err error) {
	log.Printf("ai: entity=%d script %s error, falling back to chase: %v", ctx.Entity, s.name, err)
	s.failed = true
	s.fallback.Control(ctx)
}
