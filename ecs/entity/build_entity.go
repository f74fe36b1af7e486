package entity

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/levels"
	"github.com/milk9111/quizplatformer/prefabs"
)

// buildContext carries what marker builders share while one level is
// being built.
type buildContext struct {
	Set      *prefabs.Set
	Level    *levels.Level
	Rand     *rand.Rand
	TileSize float64
	Player   ecs.Entity

	scripts map[string]*tengo.Compiled
}

type markerBuildFn func(w *ecs.World, m levels.Entity, ctx *buildContext) (ecs.Entity, error)

var markerRegistry = map[string]markerBuildFn{
	"player": buildPlayer,
	"enemy":  buildEnemy,
	"coin":   buildCoin,
	"door":   buildDoor,
}

// markerBuildOrder places the player first so enemies can target it.
var markerBuildOrder = []string{"player", "enemy", "coin", "door"}

func buildMarkers(w *ecs.World, ctx *buildContext) error {
	byType := make(map[string][]levels.Entity)
	for _, m := range ctx.Level.Entities {
		kind := strings.ToLower(m.Type)
		if _, ok := markerRegistry[kind]; !ok {
			log.Printf("level: ignoring unknown marker %q at (%d,%d)", m.Type, m.X, m.Y)
			continue
		}
		byType[kind] = append(byType[kind], m)
	}

	for _, kind := range markerBuildOrder {
		builder := markerRegistry[kind]
		for _, m := range byType[kind] {
			e, err := builder(w, m, ctx)
			if err != nil {
				return fmt.Errorf("build %s at (%d,%d): %w", kind, m.X, m.Y, err)
			}
			if kind == "player" {
				ctx.Player = e
			}
		}
	}
	return nil
}

// cellCenter converts a grid cell (row 0 at the top) to the y-up world
// position of its center.
func (ctx *buildContext) cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * ctx.TileSize, (float64(ctx.Level.Height-cy) - 0.5) * ctx.TileSize
}

// standOn returns the center of a body of height h whose feet rest on the
// bottom of cell (cx, cy).
func (ctx *buildContext) standOn(cx, cy int, h float64) (float64, float64) {
	x, _ := ctx.cellCenter(cx, cy)
	bottom := float64(ctx.Level.Height-cy-1) * ctx.TileSize
	return x, bottom + h/2
}

func addBody(w *ecs.World, e ecs.Entity, x, y float64, body component.PhysicsBody, sprite component.Sprite) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: x, Y: y, Width: body.Width, Height: body.Height,
	}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}
