package component

// BulletRules shapes every bullet fired in a level.
type BulletRules struct {
	Width    float64
	Height   float64
	Velocity float64
	Damage   int
	// Offset is the horizontal spawn distance from the shooter's center.
	Offset float64
}

// Rules is a singleton with the tuning systems and collision handlers
// read each tick.
type Rules struct {
	DeadZone      float64
	FrameDistance float64

	CoinPoints        int
	CorrectPoints     int
	WrongPoints       int
	WrongAnswerDamage int

	Bullet BulletRules
}

// DefaultRules mirrors the shipped prefab values.
func DefaultRules() Rules {
	return Rules{
		DeadZone:          0.1,
		FrameDistance:     20,
		CoinPoints:        1,
		CorrectPoints:     10,
		WrongPoints:       -5,
		WrongAnswerDamage: 20,
		Bullet: BulletRules{
			Width:    25,
			Height:   5,
			Velocity: 500,
			Damage:   10,
			Offset:   48,
		},
	}
}

var RulesComponent = NewComponent[Rules]()
