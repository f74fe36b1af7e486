package component

// Transform mirrors the physics body center each tick, in world units
// with y pointing up.
type Transform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var TransformComponent = NewComponent[Transform]()
