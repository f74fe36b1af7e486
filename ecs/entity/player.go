package entity

import (
	"fmt"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/ecs/system"
	"github.com/milk9111/quizplatformer/levels"
	"github.com/milk9111/quizplatformer/prefabs"
)

const (
	layerTiles = iota
	layerDoor
	layerCoin
	layerEnemy
	layerPlayer
)

func buildPlayer(w *ecs.World, m levels.Entity, ctx *buildContext) (ecs.Entity, error) {
	spec, err := prefabs.DecodeProps(m.Props, ctx.Set.Player)
	if err != nil {
		return 0, fmt.Errorf("player: props: %w", err)
	}
	x, y := ctx.standOn(m.X, m.Y, spec.Body.Height)
	return NewPlayerAt(w, spec, x, y)
}

// NewPlayerAt creates the player centered on (x, y).
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.ActorComponent.Kind(), &component.Actor{
		Health:    spec.Health,
		MaxHealth: spec.Health,
		Faction:   component.FactionPlayer,
		// Ready to shoot on the first tick.
		SinceAttack: spec.AttackCooldown,
	}); err != nil {
		return 0, fmt.Errorf("player: add actor: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		MoveForce:      spec.MoveForce,
		JumpImpulse:    spec.JumpImpulse,
		AttackCooldown: spec.AttackCooldown,
		MoveFriction:   spec.MoveFriction,
		StopFriction:   spec.StopFriction,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.BrainComponent.Kind(), &component.Brain{
		Controller: system.PlayerController{},
	}); err != nil {
		return 0, fmt.Errorf("player: add brain: %w", err)
	}
	if err := addBody(w, player, x, y, component.PhysicsBody{
		Width:     spec.Body.Width,
		Height:    spec.Body.Height,
		Mass:      spec.Body.Mass,
		Friction:  spec.Body.Friction,
		Kind:      component.BodyDynamic,
		Layer:     component.LayerPlayer,
		MaxSpeedH: spec.Body.MaxSpeedH,
		MaxSpeedV: spec.Body.MaxSpeedV,
	}, component.Sprite{Kind: "player", Layer: layerPlayer}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return player, nil
}
