package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageFrames loads frames from PNG files named
// <kind>_<state>_<index>.png under Dir, using Fallback for any frame that
// has no file.
type ImageFrames struct {
	Dir      string
	Fallback FrameProvider

	images  map[frameKey]*ebiten.Image
	missing map[frameKey]bool
}

func NewImageFrames(dir string, fallback FrameProvider) *ImageFrames {
	return &ImageFrames{
		Dir:      dir,
		Fallback: fallback,
		images:   make(map[frameKey]*ebiten.Image),
		missing:  make(map[frameKey]bool),
	}
}

// FramePath returns the file a frame is read from.
func FramePath(dir, kind, state string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%d.png", kind, state, index))
}

func (f *ImageFrames) Frame(kind, state string, index int) *ebiten.Image {
	key := frameKey{kind: kind, state: state, index: index}
	if img, ok := f.images[key]; ok {
		return img
	}
	if !f.missing[key] {
		img, err := loadImage(FramePath(f.Dir, kind, state, index))
		if err == nil {
			f.images[key] = img
			return img
		}
		if !os.IsNotExist(err) {
			log.Printf("assets: %v", err)
		}
		f.missing[key] = true
	}
	if f.Fallback == nil {
		return nil
	}
	return f.Fallback.Frame(kind, state, index)
}

func loadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
