package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/quizplatformer/ecs/component"
	"golang.org/x/image/colornames"
)

// FrameProvider returns the image for one animation frame. Frames face
// right; the renderer mirrors them for left-facing actors.
type FrameProvider interface {
	Frame(kind, state string, index int) *ebiten.Image
}

const (
	placeholderW = 32
	placeholderH = 48
)

// DefaultTints colors the placeholder art of each sprite kind.
var DefaultTints = map[string]color.RGBA{
	"player":  colornames.Royalblue,
	"enemy":   colornames.Firebrick,
	"bullet":  colornames.Red,
	"coin":    colornames.Gold,
	"wall":    colornames.Slategray,
	"blocker": colornames.Mediumpurple,
	"door":    colornames.Saddlebrown,
}

type frameKey struct {
	kind  string
	state string
	index int
}

// PlaceholderFrames draws simple tinted frames on first use and caches
// them.
type PlaceholderFrames struct {
	tints  map[string]color.RGBA
	frames map[frameKey]*ebiten.Image
}

func NewPlaceholderFrames() *PlaceholderFrames {
	tints := make(map[string]color.RGBA, len(DefaultTints))
	for k, v := range DefaultTints {
		tints[k] = v
	}
	return &PlaceholderFrames{
		tints:  tints,
		frames: make(map[frameKey]*ebiten.Image),
	}
}

// SetTint overrides the color of kind and drops its cached frames.
func (p *PlaceholderFrames) SetTint(kind string, c color.RGBA) {
	p.tints[kind] = c
	for k, img := range p.frames {
		if k.kind == kind {
			img.Deallocate()
			delete(p.frames, k)
		}
	}
}

// Tint returns the color used for kind.
func (p *PlaceholderFrames) Tint(kind string) color.RGBA {
	if c, ok := p.tints[kind]; ok {
		return c
	}
	return colornames.Magenta
}

func (p *PlaceholderFrames) Frame(kind, state string, index int) *ebiten.Image {
	key := frameKey{kind: kind, state: state, index: index}
	if img, ok := p.frames[key]; ok {
		return img
	}
	img := ebiten.NewImage(placeholderW, placeholderH)
	drawPlaceholder(img, p.Tint(kind), state, index)
	p.frames[key] = img
	return img
}

// drawPlaceholder paints a body, an eye on the right side and legs whose
// spread follows the walk cycle.
func drawPlaceholder(img *ebiten.Image, tint color.RGBA, state string, index int) {
	body := float32(placeholderH - 10)
	vector.DrawFilledRect(img, 0, 0, placeholderW, body, tint, false)
	vector.DrawFilledRect(img, placeholderW-10, 8, 6, 6, colornames.White, false)

	left, right := legOffsets(state, index)
	legs := darken(tint)
	vector.DrawFilledRect(img, 6+left, body, 6, 10, legs, false)
	vector.DrawFilledRect(img, placeholderW-12+right, body, 6, 10, legs, false)
}

// legOffsets spreads the legs over the walk cycle and tucks them while
// airborne.
func legOffsets(state string, index int) (float32, float32) {
	switch state {
	case component.AnimWalk.String():
		phase := float32(index%component.WalkFrames) - component.WalkFrames/2
		return phase / 2, -phase / 2
	case component.AnimJump.String():
		return 3, -3
	case component.AnimFall.String():
		return -2, 2
	default:
		return 0, 0
	}
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
