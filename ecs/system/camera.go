package system

import (
	"math"

	"github.com/milk9111/quizplatformer/common"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
)

// CameraSystem keeps the player centered, clamped to the level bounds.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	x := t.X - cam.ViewW/2
	y := t.Y - cam.ViewH/2
	if bounds, ok := levelBounds(w); ok {
		x = clampView(x, cam.ViewW, bounds.Width)
		y = clampView(y, cam.ViewH, bounds.Height)
	}

	if cam.Smoothness <= 0 || cam.Smoothness >= 1 {
		cam.X, cam.Y = x, y
		return
	}
	cam.X = common.Lerp(cam.X, x, cam.Smoothness)
	cam.Y = common.Lerp(cam.Y, y, cam.Smoothness)
}

// clampView keeps a view of size view inside [0, size]; a level smaller
// than the view is centered.
func clampView(pos, view, size float64) float64 {
	if size <= view {
		return (size - view) / 2
	}
	return math.Max(0, math.Min(pos, size-view))
}
