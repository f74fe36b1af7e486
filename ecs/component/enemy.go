package component

// Enemy holds per-instance AI tuning.
type Enemy struct {
	// AttackCooldown is rolled between the enemy spec bounds when the
	// level is built.
	AttackCooldown float64
	// ViewDistance is in world units.
	ViewDistance float64
	MoveForce    float64
	Target       uint64 // ecs.Entity
	KillPoints   int
}

var EnemyComponent = NewComponent[Enemy]()
