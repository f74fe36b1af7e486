// Package common holds constants shared by the game shell and systems.
package common

const (
	// BaseWidth and BaseHeight are the logical screen size in pixels.
	BaseWidth  = 1280
	BaseHeight = 720
	// TPS is the fixed simulation rate.
	TPS = 60
)

// Lerp moves a toward b by fraction t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
