package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/ecs/system"
	"github.com/milk9111/quizplatformer/levels"
	"github.com/milk9111/quizplatformer/physics"
	"github.com/milk9111/quizplatformer/prefabs"
)

// PhysicsConfig turns the physics prefab into an engine config.
func PhysicsConfig(set *prefabs.Set) physics.Config {
	return physics.Config{
		Gravity:         physics.Vector{X: set.Physics.Gravity.X, Y: set.Physics.Gravity.Y},
		Damping:         set.Physics.Damping,
		Iterations:      set.Physics.Iterations,
		GroundThreshold: set.Physics.GroundThreshold,
	}
}

// RulesFromSet collects the gameplay numbers systems read each tick.
func RulesFromSet(set *prefabs.Set) component.Rules {
	return component.Rules{
		DeadZone:          set.Physics.DeadZone,
		FrameDistance:     set.Physics.FrameDistance,
		CoinPoints:        set.Scoring.Coin,
		CorrectPoints:     set.Scoring.QuestionCorrect,
		WrongPoints:       set.Scoring.QuestionWrong,
		WrongAnswerDamage: set.Scoring.WrongAnswerHealthLoss,
		Bullet: component.BulletRules{
			Width:    set.Bullet.Width,
			Height:   set.Bullet.Height,
			Velocity: set.Bullet.Velocity,
			Damage:   set.Bullet.Damage,
			Offset:   set.Bullet.Offset,
		},
	}
}

// LoadLevelToWorld builds the level's geometry and actors into an empty
// world and registers their bodies with engine. It returns the player.
func LoadLevelToWorld(w *ecs.World, engine *physics.Engine, set *prefabs.Set, lvl *levels.Level, rng *rand.Rand) (ecs.Entity, error) {
	if w == nil || engine == nil || set == nil || lvl == nil {
		return 0, errors.New("level: nil argument")
	}
	ctx := &buildContext{
		Set:      set,
		Level:    lvl,
		Rand:     rng,
		TileSize: set.Physics.TileSize,
	}

	singletons := ecs.CreateEntity(w)
	if err := ecs.Add(w, singletons, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  float64(lvl.Width) * ctx.TileSize,
		Height: float64(lvl.Height) * ctx.TileSize,
	}); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	rules := RulesFromSet(set)
	if err := ecs.Add(w, singletons, component.RulesComponent.Kind(), &rules); err != nil {
		return 0, fmt.Errorf("level: add rules: %w", err)
	}

	for i, layer := range lvl.Layers {
		if i >= len(lvl.LayerMeta) {
			continue
		}
		meta := lvl.LayerMeta[i]
		switch {
		case meta.Blocker:
			if err := addMergedTileColliders(w, ctx, layer, blockerTile); err != nil {
				return 0, fmt.Errorf("level: layer %q: %w", meta.Name, err)
			}
		case meta.Physics:
			if err := addMergedTileColliders(w, ctx, layer, wallTile); err != nil {
				return 0, fmt.Errorf("level: layer %q: %w", meta.Name, err)
			}
		}
	}

	if err := buildMarkers(w, ctx); err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}
	if err := system.SyncBodies(w, engine); err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}
	return ctx.Player, nil
}
