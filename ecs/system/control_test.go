package system

import (
	"testing"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingController struct {
	seen []uint64
}

func (r *recordingController) Name() string { return "recording" }

func (r *recordingController) Control(ctx *component.ControlContext) {
	r.seen = append(r.seen, ctx.Entity)
}

func TestDeadEnemyIsGoneBeforeNextControlPass(t *testing.T) {
	l := newTestLevel(t, 0)
	rec := &recordingController{}
	alive := l.addActor(t, 0, 0, component.FactionEnemy)
	dead := l.addActor(t, 200, 0, component.FactionEnemy)
	for _, e := range []ecs.Entity{alive, dead} {
		require.NoError(t, ecs.Add(l.w, e, component.BrainComponent.Kind(), &component.Brain{Controller: rec}))
	}

	actorOf(t, l.w, dead).TakeDamage(100)
	scheduler := ecs.NewScheduler(
		NewHealthSystem(l.engine, l.sess),
		NewControlSystem(l.engine, l.sess, tick),
	)
	events := scheduler.Tick(l.w)

	assert.Equal(t, []uint64{uint64(alive)}, rec.seen)
	assert.False(t, ecs.IsAlive(l.w, dead))
	assert.False(t, l.engine.Has(dead))
	assert.Equal(t, 1, l.engine.Len())
	assert.Equal(t, uint64(1), scheduler.Ticks())

	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventEnemyKilled, events[0].Kind)
	assert.Equal(t, dead, events[0].Entity)
}

func TestPlayerDeathLosesLevel(t *testing.T) {
	l := newTestLevel(t, 0)
	player := l.addActor(t, 0, 0, component.FactionPlayer)
	actorOf(t, l.w, player).TakeDamage(150)

	hs := NewHealthSystem(l.engine, l.sess)
	hs.Update(l.w)
	require.False(t, ecs.IsAlive(l.w, player), "removed in the tick it died")
	hs.Update(l.w)

	assert.Equal(t, session.Lost, l.sess.Outcome)
	assert.False(t, ecs.IsAlive(l.w, player))
	assert.False(t, l.engine.Has(player))
	assert.Zero(t, l.engine.Len())

	events := l.w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventPlayerDied, events[0].Kind)
	assert.Equal(t, player, events[0].Entity)
}

func TestStrayBulletsAreDropped(t *testing.T) {
	l := newTestLevel(t, 0)
	bounds := ecs.CreateEntity(l.w)
	require.NoError(t, ecs.Add(l.w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 200, Height: 200}))

	shooter := l.addActor(t, 150, 100, component.FactionPlayer)
	bullet, err := RangedAttack(l.w, l.engine, shooter, component.DefaultRules().Bullet)
	require.NoError(t, err)

	hs := NewHealthSystem(l.engine, l.sess)
	for i := 0; i < 60 && ecs.IsAlive(l.w, bullet); i++ {
		l.step(1)
		hs.Update(l.w)
	}
	assert.False(t, ecs.IsAlive(l.w, bullet))
	assert.False(t, l.engine.Has(bullet))
}

func TestControlSystemTicksCooldownAndFires(t *testing.T) {
	l := newTestLevel(t, 0)
	player := l.addActor(t, 0, 0, component.FactionPlayer)
	require.NoError(t, ecs.Add(l.w, player, component.PlayerComponent.Kind(), &component.Player{AttackCooldown: 0.5}))
	require.NoError(t, ecs.Add(l.w, player, component.InputComponent.Kind(), &component.Input{AttackPressed: true}))
	require.NoError(t, ecs.Add(l.w, player, component.BrainComponent.Kind(), &component.Brain{Controller: PlayerController{}}))

	cs := NewControlSystem(l.engine, l.sess, 0.25)
	cs.Update(l.w)
	assert.Empty(t, l.w.Query(component.BulletComponent.Kind()), "cooldown not elapsed yet")

	cs.Update(l.w)
	assert.Len(t, l.w.Query(component.BulletComponent.Kind()), 1)
	assert.Zero(t, actorOf(t, l.w, player).SinceAttack)

	cs.Update(l.w)
	assert.Len(t, l.w.Query(component.BulletComponent.Kind()), 1)
}
