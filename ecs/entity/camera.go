package entity

import (
	"fmt"

	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
)

// NewCamera adds the camera singleton for a view of viewW x viewH pixels.
func NewCamera(w *ecs.World, viewW, viewH, zoom float64) (ecs.Entity, error) {
	if zoom <= 0 {
		zoom = 1
	}
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		ViewW:      viewW / zoom,
		ViewH:      viewH / zoom,
		Zoom:       zoom,
		Smoothness: 0.15,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
