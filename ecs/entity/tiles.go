package entity

import (
	"fmt"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
)

// tileFn adds the role components of one merged rectangle of tiles that
// all carry value.
type tileFn func(w *ecs.World, e ecs.Entity, value int) (component.CollisionLayer, component.Sprite, error)

func wallTile(w *ecs.World, e ecs.Entity, _ int) (component.CollisionLayer, component.Sprite, error) {
	if err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{}); err != nil {
		return 0, component.Sprite{}, fmt.Errorf("add wall: %w", err)
	}
	return component.LayerWall, component.Sprite{Kind: "wall", Layer: layerTiles}, nil
}

func blockerTile(w *ecs.World, e ecs.Entity, value int) (component.CollisionLayer, component.Sprite, error) {
	if err := ecs.Add(w, e, component.BlockerComponent.Kind(), &component.Blocker{Wall: value}); err != nil {
		return 0, component.Sprite{}, fmt.Errorf("add blocker: %w", err)
	}
	return component.LayerBlocker, component.Sprite{Kind: "blocker", Layer: layerTiles}, nil
}

// addMergedTileColliders covers the non-empty tiles of layer with as few
// static boxes as a greedy row-then-column sweep finds. Only tiles with
// the same value are merged, so each blocker wall stays separate.
func addMergedTileColliders(w *ecs.World, ctx *buildContext, layer []int, fn tileFn) error {
	width, height := ctx.Level.Width, ctx.Level.Height
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	open := func(x, y, value int) bool {
		idx := index(x, y)
		return idx < len(layer) && !visited[idx] && layer[idx] == value
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := index(x, y)
			if idx >= len(layer) || visited[idx] || layer[idx] <= 0 {
				continue
			}
			value := layer[idx]

			maxW := 0
			for x2 := x; x2 < width && open(x2, y, value); x2++ {
				maxW++
			}

			maxH := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+maxW; x2++ {
					if !open(x2, y2, value) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				maxH++
			}

			for yy := y; yy < y+maxH; yy++ {
				for xx := x; xx < x+maxW; xx++ {
					visited[index(xx, yy)] = true
				}
			}

			e := ecs.CreateEntity(w)
			layerType, sprite, err := fn(w, e, value)
			if err != nil {
				return err
			}
			tile := ctx.TileSize
			cx := (float64(x) + float64(maxW)/2) * tile
			cy := (float64(height-y) - float64(maxH)/2) * tile
			if err := addBody(w, e, cx, cy, component.PhysicsBody{
				Width:    float64(maxW) * tile,
				Height:   float64(maxH) * tile,
				Friction: ctx.Set.Physics.Friction,
				Kind:     component.BodyStatic,
				Layer:    layerType,
			}, sprite); err != nil {
				return err
			}
		}
	}
	return nil
}
