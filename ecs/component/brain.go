package component

// ActorController decides what an actor does this tick. Implementations
// are strategy objects; the same Actor data is driven by player input or
// by AI depending on which controller is installed.
type ActorController interface {
	Name() string
	Control(ctx *ControlContext)
}

// ControlContext gives a controller access to its actor and to the
// physics engine through callbacks, so controllers stay decoupled from
// the ecs and physics packages.
type ControlContext struct {
	Entity uint64
	Actor  *Actor
	Input  *Input  // nil for AI
	Player *Player // nil unless the actor is the player
	Enemy  *Enemy  // nil unless the actor is an enemy
	Dt     float64

	Position       func() (x, y float64)
	TargetPosition func() (x, y float64, ok bool)
	IsOnGround     func() bool
	HasLineOfSight func(x, y, maxDistance float64) bool
	ApplyForce     func(x, y float64)
	ApplyImpulse   func(x, y float64)
	SetFriction    func(friction float64)
	Fire           func()
	Interact       func()
}

// Brain binds a controller to an actor.
type Brain struct {
	Controller ActorController
}

var BrainComponent = NewComponent[Brain]()
