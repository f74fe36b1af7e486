package physics

import (
	"errors"
	"testing"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	typeActor CollisionType = iota + 1
	typeFloor
	typePickup
	typeShot
)

const tick = 1.0 / 60.0

func newTestEngine(t *testing.T) (*Engine, *ecs.World) {
	t.Helper()
	e, err := New(DefaultConfig())
	require.NoError(t, err)
	return e, ecs.NewWorld()
}

func addFloor(t *testing.T, e *Engine, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	ent := w.CreateEntity()
	require.NoError(t, e.Register(ent, BodyDef{
		Position: Vector{X: x, Y: y},
		Width:    width,
		Height:   height,
		Friction: 0.4,
		Type:     typeFloor,
		Kind:     Static,
	}))
	return ent
}

func addActor(t *testing.T, e *Engine, w *ecs.World, x, y float64, onMoved MoveFunc) ecs.Entity {
	t.Helper()
	ent := w.CreateEntity()
	require.NoError(t, e.Register(ent, BodyDef{
		Position: Vector{X: x, Y: y},
		Width:    20,
		Height:   20,
		Mass:     1,
		Friction: 0.4,
		Type:     typeActor,
		Kind:     Dynamic,
		OnMoved:  onMoved,
	}))
	return ent
}

func TestConfigureDamping(t *testing.T) {
	cases := []struct {
		name    string
		damping float64
		wantErr bool
	}{
		{"zero_rejected", 0, true},
		{"negative_rejected", -0.1, true},
		{"above_one_rejected", 1.5, true},
		{"small_epsilon_ok", 0.01, false},
		{"one_ok", 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Damping = tc.damping
			_, err := New(cfg)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDamping)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	e, w := newTestEngine(t)
	ent := addActor(t, e, w, 0, 0, nil)

	err := e.Register(ent, BodyDef{Width: 1, Height: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)

	var dup *DuplicateRegistrationError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, ent, dup.Entity)
	assert.Equal(t, 1, e.Len())
}

func TestRegisterRejectsEmptyBox(t *testing.T) {
	e, w := newTestEngine(t)
	err := e.Register(w.CreateEntity(), BodyDef{Width: 0, Height: 10})
	assert.ErrorIs(t, err, ErrInvalidBody)
	assert.Zero(t, e.Len())
}

func TestRemoveBodyIdempotent(t *testing.T) {
	e, w := newTestEngine(t)
	floor := addFloor(t, e, w, 0, 0, 100, 10)
	actor := addActor(t, e, w, 0, 100, nil)
	require.Equal(t, 2, e.Len())

	e.RemoveBody(actor)
	assert.False(t, e.Has(actor))
	assert.Equal(t, 1, e.Len())

	assert.NotPanics(t, func() { e.RemoveBody(actor) })
	assert.Equal(t, 1, e.Len())
	assert.True(t, e.Has(floor))

	assert.NotPanics(t, func() { e.RemoveBody(w.CreateEntity()) })
}

func TestStepLandsOnGround(t *testing.T) {
	e, w := newTestEngine(t)
	addFloor(t, e, w, 0, 0, 200, 20)

	var fell bool
	var total float64
	actor := addActor(t, e, w, 0, 40, func(dx, dy, _ float64) {
		total += dy
		if dy < 0 {
			fell = true
		}
	})

	assert.False(t, e.IsOnGround(actor))
	for i := 0; i < 90; i++ {
		e.Step(tick)
	}

	assert.True(t, fell)
	assert.True(t, e.IsOnGround(actor))
	pos, ok := e.Position(actor)
	require.True(t, ok)
	assert.InDelta(t, 20, pos.Y, 1.0, "box should rest on top of the floor")
	assert.InDelta(t, pos.Y-40, total, 1e-6, "reported deltas add up to the displacement")
}

func TestJumpImpulseLeavesGround(t *testing.T) {
	e, w := newTestEngine(t)
	addFloor(t, e, w, 0, 0, 200, 20)
	actor := addActor(t, e, w, 0, 20.5, nil)
	for i := 0; i < 30; i++ {
		e.Step(tick)
	}
	require.True(t, e.IsOnGround(actor))

	e.ApplyImpulse(actor, Vector{X: 0, Y: 800})
	v, _ := e.Velocity(actor)
	assert.Greater(t, v.Y, 0.0)

	for i := 0; i < 5; i++ {
		e.Step(tick)
	}
	assert.False(t, e.IsOnGround(actor))
}

func TestMaxSpeedClamp(t *testing.T) {
	e, w := newTestEngine(t)
	ent := w.CreateEntity()
	require.NoError(t, e.Register(ent, BodyDef{
		Width:     10,
		Height:    10,
		Mass:      1,
		Kind:      Dynamic,
		MaxSpeedH: 300,
		MaxSpeedV: 500,
	}))

	for i := 0; i < 120; i++ {
		e.ApplyForce(ent, Vector{X: 100000, Y: 0})
		e.Step(tick)
	}
	v, ok := e.Velocity(ent)
	require.True(t, ok)
	assert.LessOrEqual(t, v.X, 300.0+1e-9)
	assert.GreaterOrEqual(t, v.Y, -500.0-1e-9)
}

func TestHandlerArgumentOrderAndPassThrough(t *testing.T) {
	e, w := newTestEngine(t)
	actor := addActor(t, e, w, 0, 0, nil)
	pickup := w.CreateEntity()
	require.NoError(t, e.Register(pickup, BodyDef{
		Position: Vector{X: 5, Y: 0},
		Width:    10,
		Height:   10,
		Type:     typePickup,
		Kind:     Static,
	}))

	var calls int
	e.Handle(typePickup, typeActor, HandlerFuncs{
		Begin: func(a, b ecs.Entity) Result {
			calls++
			assert.Equal(t, pickup, a)
			assert.Equal(t, actor, b)
			e.RemoveBody(a)
			e.RemoveBody(a)
			return PassThrough
		},
	})

	e.Step(tick)
	e.Step(tick)

	assert.Equal(t, 1, calls)
	assert.False(t, e.Has(pickup))
	assert.Equal(t, 1, e.Len())
}

func TestKinematicShotHitsStaticWall(t *testing.T) {
	e, w := newTestEngine(t)
	wall := addFloor(t, e, w, 100, 0, 20, 200)
	shot := w.CreateEntity()
	require.NoError(t, e.Register(shot, BodyDef{
		Position: Vector{X: 0, Y: 0},
		Width:    25,
		Height:   5,
		Type:     typeShot,
		Kind:     Kinematic,
	}))
	e.SetVelocity(shot, Vector{X: 500, Y: 0})

	var hitWall ecs.Entity
	e.Handle(typeShot, typeFloor, HandlerFuncs{
		Begin: func(s, f ecs.Entity) Result {
			hitWall = f
			e.RemoveBody(s)
			return PassThrough
		},
	})

	for i := 0; i < 30 && e.Has(shot); i++ {
		e.Step(tick)
		if e.Has(shot) {
			pos, _ := e.Position(shot)
			assert.InDelta(t, 0, pos.Y, 1e-9, "kinematic bodies ignore gravity")
		}
	}

	assert.False(t, e.Has(shot))
	assert.Equal(t, wall, hitWall)
}

func TestSeparateFiresWhenBodyRemoved(t *testing.T) {
	e, w := newTestEngine(t)
	floor := addFloor(t, e, w, 0, 0, 200, 20)
	actor := addActor(t, e, w, 0, 20.5, nil)

	var begins, separates int
	e.Handle(typeActor, typeFloor, HandlerFuncs{
		Begin: func(a, f ecs.Entity) Result {
			begins++
			return Consume
		},
		Separate: func(a, f ecs.Entity) {
			separates++
			assert.Equal(t, actor, a)
			assert.Equal(t, floor, f)
		},
	})

	for i := 0; i < 30; i++ {
		e.Step(tick)
	}
	require.GreaterOrEqual(t, begins, 1)
	require.True(t, e.IsOnGround(actor))
	before := separates

	e.RemoveBody(floor)
	assert.Equal(t, before+1, separates)

	e.Step(tick)
	assert.False(t, e.IsOnGround(actor))
	assert.Equal(t, before+1, separates)
}

func TestHasLineOfSight(t *testing.T) {
	e, w := newTestEngine(t)
	addFloor(t, e, w, 50, 0, 10, 100)

	cases := []struct {
		name     string
		from, to Vector
		maxDist  float64
		want     bool
	}{
		{"blocked_by_wall", Vector{X: 0, Y: 0}, Vector{X: 100, Y: 0}, 500, false},
		{"clear_above_wall", Vector{X: 0, Y: 80}, Vector{X: 100, Y: 80}, 500, true},
		{"too_far", Vector{X: 0, Y: 80}, Vector{X: 100, Y: 80}, 50, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.HasLineOfSight(tc.from, tc.to, tc.maxDist, typeFloor))
		})
	}

	assert.True(t, e.HasLineOfSight(Vector{}, Vector{X: 100}, 500), "no blocker types means nothing blocks")
}
