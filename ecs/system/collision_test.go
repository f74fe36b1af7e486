package system

import (
	"testing"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinCollectedOnce(t *testing.T) {
	l := newTestLevel(t, -2000)
	l.addStatic(t, 0, 0, 400, 20, component.LayerWall)
	coin := l.addStatic(t, 0, 40, 32, 32, component.LayerCoin)
	require.NoError(t, ecs.Add(l.w, coin, component.CoinComponent.Kind(), &component.Coin{Points: 1}))
	player := l.addActor(t, 0, 120, component.FactionPlayer)

	l.step(90)

	assert.Equal(t, 1, l.sess.Score)
	assert.False(t, ecs.IsAlive(l.w, coin))
	assert.False(t, l.engine.Has(coin))
	assert.True(t, l.engine.IsOnGround(player), "coins are not solid")

	events := l.w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventCoinCollected, events[0].Kind)
}

func TestDoorEnablesFinish(t *testing.T) {
	l := newTestLevel(t, -2000)
	l.addStatic(t, 0, 0, 400, 20, component.LayerWall)
	door := l.addStatic(t, 0, 42, 64, 64, component.LayerDoor)
	require.NoError(t, ecs.Add(l.w, door, component.DoorComponent.Kind(), &component.Door{}))
	player := l.addActor(t, 0, 120, component.FactionPlayer)

	l.step(60)
	assert.True(t, l.sess.CanFinish)
	assert.True(t, l.engine.IsOnGround(player), "the door is solid to stand on")

	l.engine.RemoveBody(door)
	assert.False(t, l.sess.CanFinish)
}

func TestEnemiesIgnoreCoins(t *testing.T) {
	l := newTestLevel(t, -2000)
	l.addStatic(t, 0, 0, 400, 20, component.LayerWall)
	coin := l.addStatic(t, 0, 40, 32, 32, component.LayerCoin)
	require.NoError(t, ecs.Add(l.w, coin, component.CoinComponent.Kind(), &component.Coin{Points: 1}))
	l.addActor(t, 0, 120, component.FactionEnemy)

	l.step(60)
	assert.True(t, ecs.IsAlive(l.w, coin))
	assert.Zero(t, l.sess.Score)
}

func TestCameraClampsToLevel(t *testing.T) {
	w := ecs.NewWorld()
	singletons := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, singletons, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: 1000, Height: 300}))
	require.NoError(t, ecs.Add(w, singletons, component.CameraComponent.Kind(), &component.Camera{ViewW: 400, ViewH: 400, Zoom: 1}))
	player := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	tr := &component.Transform{X: 50, Y: 100}
	require.NoError(t, ecs.Add(w, player, component.TransformComponent.Kind(), tr))

	cases := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"left_edge", 50, 0},
		{"middle", 500, 300},
		{"right_edge", 990, 600},
	}
	cs := NewCameraSystem()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr.X = tc.x
			cs.Update(w)
			cam := cameraOf(w)
			assert.Equal(t, tc.wantX, cam.X)
			assert.Equal(t, -50.0, cam.Y, "a level shorter than the view is centered")
		})
	}
}
