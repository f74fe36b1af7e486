package component

// Camera is a singleton describing the visible part of the level. X and Y
// are the world position of the view's bottom-left corner.
type Camera struct {
	X, Y         float64
	ViewW, ViewH float64
	Zoom         float64
	// Smoothness is the fraction of the remaining distance covered per
	// tick; zero snaps.
	Smoothness float64
}

// ToScreen maps a y-up world point to y-down screen pixels.
func (c Camera) ToScreen(x, y float64) (float64, float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (x - c.X) * zoom, (c.Y + c.ViewH - y) * zoom
}

var CameraComponent = NewComponent[Camera]()
