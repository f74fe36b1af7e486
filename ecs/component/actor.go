package component

// Facing is the horizontal direction an actor looks in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Faction decides who a bullet may hurt.
type Faction int

const (
	FactionNone Faction = iota
	FactionPlayer
	FactionEnemy
)

// Actor is the state shared by every living, moving thing in a level.
// Position and velocity are owned by the physics engine.
type Actor struct {
	Health    int
	MaxHealth int
	Facing    Facing
	Faction   Faction
	Anim      Animation
	// SinceAttack counts seconds since the last ranged attack.
	SinceAttack float64
}

// Alive reports whether the actor still has health left.
func (a *Actor) Alive() bool {
	return a != nil && a.Health > 0
}

// TakeDamage lowers health. Negative amounts are ignored so health never
// goes up.
func (a *Actor) TakeDamage(amount int) {
	if a == nil || amount <= 0 {
		return
	}
	a.Health -= amount
}

// CanAttack reports whether cooldown seconds have elapsed since the last
// attack.
func (a *Actor) CanAttack(cooldown float64) bool {
	return a != nil && a.SinceAttack >= cooldown
}

func (a *Actor) ResetAttack() {
	if a != nil {
		a.SinceAttack = 0
	}
}

// Tick advances the actor timers by dt seconds.
func (a *Actor) Tick(dt float64) {
	if a != nil {
		a.SinceAttack += dt
	}
}

// UpdateFacing flips facing only when dx leaves the dead zone in the
// opposite direction.
func (a *Actor) UpdateFacing(dx, deadZone float64) {
	if a == nil {
		return
	}
	if dx < -deadZone && a.Facing == FacingRight {
		a.Facing = FacingLeft
	}
	if dx > deadZone && a.Facing == FacingLeft {
		a.Facing = FacingRight
	}
}

var ActorComponent = NewComponent[Actor]()
