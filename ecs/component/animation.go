package component

import "math"

// AnimState is the coarse animation state derived from movement.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimJump
	AnimFall
)

// WalkFrames is the length of the walk cycle.
const WalkFrames = 8

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Animation tracks which frame an actor should show. It holds no images;
// frames are looked up by (kind, state, index, facing) at draw time.
type Animation struct {
	State     AnimState
	WalkIndex int
	// Odometer is the horizontal distance travelled since the last walk
	// frame advance.
	Odometer float64
}

// Frame returns the frame index within the current state.
func (a *Animation) Frame() int {
	if a == nil || a.State != AnimWalk {
		return 0
	}
	return a.WalkIndex
}

// Advance moves the state machine one tick given the measured body delta.
// States are checked in order: idle, jump, fall, walk. An airborne body
// whose deltas are both inside the dead zone keeps its previous state.
func (a *Animation) Advance(dx, dy float64, onGround bool, deadZone, frameDistance float64) AnimState {
	if a == nil {
		return AnimIdle
	}

	if math.Abs(dx) <= deadZone && onGround {
		a.State = AnimIdle
		a.Odometer = 0
		return a.State
	}

	if !onGround {
		if dy > deadZone {
			a.State = AnimJump
			return a.State
		}
		if dy < -deadZone {
			a.State = AnimFall
			return a.State
		}
		if math.Abs(dx) <= deadZone {
			return a.State
		}
	}

	a.Odometer += math.Abs(dx)
	if a.State != AnimWalk {
		a.State = AnimWalk
	}
	if a.Odometer > frameDistance {
		a.Odometer = 0
		a.WalkIndex = (a.WalkIndex + 1) % WalkFrames
	}
	return a.State
}

var AnimationComponent = NewComponent[Animation]()
