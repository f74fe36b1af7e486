package component

// Player holds the tuning for the controllable character.
type Player struct {
	MoveForce      float64
	JumpImpulse    float64
	AttackCooldown float64
	// MoveFriction applies while a direction is held, StopFriction
	// otherwise.
	MoveFriction float64
	StopFriction float64
}

var PlayerComponent = NewComponent[Player]()
