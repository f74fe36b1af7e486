package component

// Blocker is one tile of a question wall. All tiles sharing Wall are
// removed together once its question is answered.
type Blocker struct {
	Wall int
}

var BlockerComponent = NewComponent[Blocker]()

// Door ends the level when the player interacts with it.
type Door struct{}

var DoorComponent = NewComponent[Door]()

// Wall is static level geometry.
type Wall struct{}

var WallComponent = NewComponent[Wall]()
