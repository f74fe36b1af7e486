package component

type Bullet struct {
	Direction float64
	Owner     uint64 // ecs.Entity, may be dead
	Faction   Faction
	Damage    int
}

var BulletComponent = NewComponent[Bullet]()
