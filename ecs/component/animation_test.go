package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDeadZone      = 0.1
	testFrameDistance = 20.0
)

func TestAnimationAdvance(t *testing.T) {
	cases := []struct {
		name     string
		start    Animation
		dx, dy   float64
		onGround bool
		want     AnimState
	}{
		{"still_on_ground_is_idle", Animation{State: AnimWalk, WalkIndex: 3}, 0, 0, true, AnimIdle},
		{"jitter_on_ground_is_idle", Animation{State: AnimJump}, 0.05, -0.05, true, AnimIdle},
		{"rising_is_jump", Animation{}, 2, 5, false, AnimJump},
		{"sinking_is_fall", Animation{}, 0, -5, false, AnimFall},
		{"apex_keeps_previous", Animation{State: AnimJump}, 0, 0.05, false, AnimJump},
		{"moving_on_ground_is_walk", Animation{}, 3, 0, true, AnimWalk},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.start
			got := a.Advance(tc.dx, tc.dy, tc.onGround, testDeadZone, testFrameDistance)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, a.State)
		})
	}
}

func TestAnimationIdleStabilizes(t *testing.T) {
	a := Animation{State: AnimFall}
	for i := 0; i < 50; i++ {
		a.Advance(0, 0, true, testDeadZone, testFrameDistance)
		require.Equal(t, AnimIdle, a.State, "tick %d", i)
	}
	assert.Equal(t, 0, a.Frame())
}

func TestAnimationWalkCycleWraps(t *testing.T) {
	a := Animation{}
	var seen []int
	// 21 units per tick crosses the 20 unit threshold every tick.
	for i := 0; i < WalkFrames+1; i++ {
		a.Advance(21, 0, true, testDeadZone, testFrameDistance)
		seen = append(seen, a.WalkIndex)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 0, 1}, seen)
}

func TestAnimationWalkNeedsOdometer(t *testing.T) {
	a := Animation{}
	for i := 0; i < 4; i++ {
		a.Advance(5, 0, true, testDeadZone, testFrameDistance)
	}
	assert.Equal(t, 0, a.WalkIndex, "20 units is not past the threshold")
	a.Advance(5, 0, true, testDeadZone, testFrameDistance)
	assert.Equal(t, 1, a.WalkIndex)
	assert.Zero(t, a.Odometer)
}

func TestActorFacingDeadZone(t *testing.T) {
	cases := []struct {
		name  string
		start Facing
		dx    float64
		want  Facing
	}{
		{"jitter_left_keeps_right", FacingRight, -0.05, FacingRight},
		{"move_left_flips", FacingRight, -1, FacingLeft},
		{"jitter_right_keeps_left", FacingLeft, 0.1, FacingLeft},
		{"move_right_flips", FacingLeft, 0.2, FacingRight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Actor{Facing: tc.start}
			a.UpdateFacing(tc.dx, testDeadZone)
			assert.Equal(t, tc.want, a.Facing)
		})
	}
}

func TestActorDamageAndCooldown(t *testing.T) {
	a := Actor{Health: 30}
	a.TakeDamage(-5)
	assert.Equal(t, 30, a.Health, "negative damage must not heal")
	a.TakeDamage(10)
	assert.Equal(t, 20, a.Health)
	assert.True(t, a.Alive())
	a.TakeDamage(20)
	assert.False(t, a.Alive())

	a.ResetAttack()
	assert.False(t, a.CanAttack(1))
	a.Tick(0.5)
	a.Tick(0.5)
	assert.True(t, a.CanAttack(1))
}
