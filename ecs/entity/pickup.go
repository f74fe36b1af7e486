package entity

import (
	"fmt"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/levels"
)

func buildCoin(w *ecs.World, m levels.Entity, ctx *buildContext) (ecs.Entity, error) {
	x, y := ctx.cellCenter(m.X, m.Y)
	return NewCoinAt(w, x, y, ctx.TileSize/2, ctx.Set.Scoring.Coin)
}

func NewCoinAt(w *ecs.World, x, y, size float64, points int) (ecs.Entity, error) {
	coin := ecs.CreateEntity(w)
	if err := ecs.Add(w, coin, component.CoinComponent.Kind(), &component.Coin{Points: points}); err != nil {
		return 0, fmt.Errorf("coin: add coin: %w", err)
	}
	if err := addBody(w, coin, x, y, component.PhysicsBody{
		Width:  size,
		Height: size,
		Kind:   component.BodyStatic,
		Layer:  component.LayerCoin,
	}, component.Sprite{Kind: "coin", Layer: layerCoin}); err != nil {
		return 0, fmt.Errorf("coin: %w", err)
	}
	return coin, nil
}

func buildDoor(w *ecs.World, m levels.Entity, ctx *buildContext) (ecs.Entity, error) {
	x, y := ctx.cellCenter(m.X, m.Y)
	door := ecs.CreateEntity(w)
	if err := ecs.Add(w, door, component.DoorComponent.Kind(), &component.Door{}); err != nil {
		return 0, fmt.Errorf("door: add door: %w", err)
	}
	if err := addBody(w, door, x, y, component.PhysicsBody{
		Width:    ctx.TileSize,
		Height:   ctx.TileSize,
		Kind:     component.BodyStatic,
		Layer:    component.LayerDoor,
		Friction: ctx.Set.Physics.Friction,
	}, component.Sprite{Kind: "door", Layer: layerDoor}); err != nil {
		return 0, fmt.Errorf("door: %w", err)
	}
	return door, nil
}
