package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/quizplatformer/assets"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
)

type RenderSystem struct {
	frames assets.FrameProvider
}

func NewRenderSystem(frames assets.FrameProvider) *RenderSystem {
	return &RenderSystem{frames: frames}
}

func cameraOf(w *ecs.World) component.Camera {
	if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
			return *cam
		}
	}
	return component.Camera{Zoom: 1}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.frames == nil || w == nil || screen == nil {
		return
	}

	cam := cameraOf(w)
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := ecs.Get(w, entities[i], component.SpriteComponent.Kind())
		sj, _ := ecs.Get(w, entities[j], component.SpriteComponent.Kind())
		if si.Layer != sj.Layer {
			return si.Layer < sj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		state, index, facing := component.AnimIdle.String(), 0, component.FacingRight
		if actor, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
			state, index, facing = actor.Anim.State.String(), actor.Anim.Frame(), actor.Facing
		}
		if b, ok := ecs.Get(w, e, component.BulletComponent.Kind()); ok && b.Direction < 0 {
			facing = component.FacingLeft
		}

		img := r.frames.Frame(s.Kind, state, index)
		if img == nil {
			continue
		}
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

		op := &ebiten.DrawImageOptions{}
		if facing == component.FacingLeft {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(iw, 0)
		}
		op.GeoM.Scale(t.Width/iw, t.Height/ih)
		op.GeoM.Scale(zoom, zoom)
		// Transform is the y-up center; images are drawn from the top-left.
		sx, sy := cam.ToScreen(t.X-t.Width/2, t.Y+t.Height/2)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(img, op)
	}
}
