package main

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/quizplatformer/common"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/ecs/entity"
	"github.com/milk9111/quizplatformer/ecs/system"
	"github.com/milk9111/quizplatformer/levels"
	"github.com/milk9111/quizplatformer/physics"
	"github.com/milk9111/quizplatformer/session"
)

// play is everything that lives for one attempt at a level. It is thrown
// away on level change, restart and prefab reload.
type play struct {
	world     *ecs.World
	engine    *physics.Engine
	sess      *session.Session
	scheduler *ecs.Scheduler
	player    ecs.Entity
	// maxHealth outlives the player entity, which is removed on death.
	maxHealth int
}

func (g *Game) loadLevel(id int) error {
	lvl, err := levels.Load(id)
	if err != nil {
		return err
	}

	engine, err := physics.New(entity.PhysicsConfig(g.set))
	if err != nil {
		return fmt.Errorf("game: level %d: %w", id, err)
	}
	w := ecs.NewWorld()
	sess := session.New(id, lvl.Questions)
	system.InstallCollisionPolicy(w, engine, sess)

	player, err := entity.LoadLevelToWorld(w, engine, g.set, lvl, rand.New(rand.NewSource(g.seed+int64(id))))
	if err != nil {
		return fmt.Errorf("game: level %d: %w", id, err)
	}
	if _, err := entity.NewCamera(w, common.BaseWidth, common.BaseHeight, 1); err != nil {
		return fmt.Errorf("game: level %d: %w", id, err)
	}

	maxHealth := 0
	if actor, ok := ecs.Get(w, player, component.ActorComponent.Kind()); ok {
		maxHealth = actor.MaxHealth
	}

	dt := 1.0 / float64(g.tps())
	g.play = &play{
		world:     w,
		engine:    engine,
		sess:      sess,
		player:    player,
		maxHealth: maxHealth,
		scheduler: ecs.NewScheduler(
			system.NewInputSystem(),
			system.NewControlSystem(engine, sess, dt),
			system.NewPhysicsSystem(engine, dt),
			system.NewHealthSystem(engine, sess),
			system.NewCameraSystem(),
			system.NewSessionSystem(sess, dt),
		),
	}
	g.levelID = id
	g.question = nil
	g.message, g.messageTicks = "", 0
	return nil
}

func (g *Game) tps() int {
	if g.set != nil && g.set.Physics.TPS > 0 {
		return g.set.Physics.TPS
	}
	return common.TPS
}
