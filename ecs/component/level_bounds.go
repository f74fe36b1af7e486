package component

// LevelBounds is a singleton holding the level size in world units.
type LevelBounds struct {
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the level, with margin of
// slack on every side.
func (b LevelBounds) Contains(x, y, margin float64) bool {
	return x >= -margin && y >= -margin && x <= b.Width+margin && y <= b.Height+margin
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
