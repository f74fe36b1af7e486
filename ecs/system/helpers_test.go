package system

import (
	"testing"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
	"github.com/milk9111/quizplatformer/session"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

type testLevel struct {
	w      *ecs.World
	engine *physics.Engine
	sess   *session.Session
}

func newTestLevel(t *testing.T, gravity float64, questions ...session.Question) *testLevel {
	t.Helper()
	cfg := physics.DefaultConfig()
	cfg.Gravity = physics.Vector{X: 0, Y: gravity}
	engine, err := physics.New(cfg)
	require.NoError(t, err)

	lvl := &testLevel{w: ecs.NewWorld(), engine: engine, sess: session.New(1, questions)}
	InstallCollisionPolicy(lvl.w, lvl.engine, lvl.sess)
	return lvl
}

func (l *testLevel) step(n int) {
	for i := 0; i < n; i++ {
		l.engine.Step(tick)
		l.mirror()
	}
}

func (l *testLevel) mirror() {
	ecs.ForEach(l.w, component.TransformComponent.Kind(), func(e ecs.Entity, tr *component.Transform) {
		if pos, ok := l.engine.Position(e); ok {
			tr.X, tr.Y = pos.X, pos.Y
		}
	})
}

func (l *testLevel) addStatic(t *testing.T, x, y, w, h float64, layer component.CollisionLayer) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(l.w)
	require.NoError(t, ecs.Add(l.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(l.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width: w, Height: h, Friction: 0.4, Kind: component.BodyStatic, Layer: layer,
	}))
	require.NoError(t, RegisterBody(l.w, l.engine, e))
	return e
}

func (l *testLevel) addActor(t *testing.T, x, y float64, faction component.Faction) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(l.w)
	layer := component.LayerEnemy
	if faction == component.FactionPlayer {
		layer = component.LayerPlayer
		require.NoError(t, ecs.Add(l.w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	} else {
		require.NoError(t, ecs.Add(l.w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}))
		require.NoError(t, ecs.Add(l.w, e, component.EnemyComponent.Kind(), &component.Enemy{KillPoints: 5}))
	}
	require.NoError(t, ecs.Add(l.w, e, component.ActorComponent.Kind(), &component.Actor{
		Health: 100, MaxHealth: 100, Faction: faction,
	}))
	require.NoError(t, ecs.Add(l.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(l.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width: 40, Height: 60, Mass: 1, Friction: 1, Kind: component.BodyDynamic, Layer: layer,
	}))
	require.NoError(t, RegisterBody(l.w, l.engine, e))
	return e
}

func actorOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Actor {
	t.Helper()
	a, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	require.True(t, ok)
	return a
}
