package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quizplatformer/ecs"
	"github.com/milk9111/quizplatformer/ecs/component"
	"github.com/milk9111/quizplatformer/physics"
	"golang.org/x/image/colornames"
)

var layerDebugColors = map[component.CollisionLayer]color.RGBA{
	component.LayerPlayer:  colornames.Deepskyblue,
	component.LayerEnemy:   colornames.Orangered,
	component.LayerBullet:  colornames.Yellow,
	component.LayerCoin:    colornames.Gold,
	component.LayerWall:    colornames.Lightgray,
	component.LayerBlocker: colornames.Violet,
	component.LayerDoor:    colornames.Sandybrown,
}

// DrawPhysicsDebug outlines every body in its layer's color, marks
// contact points, and draws each enemy's sight line to its target.
func DrawPhysicsDebug(engine *physics.Engine, w *ecs.World, screen *ebiten.Image) {
	if engine == nil || w == nil || screen == nil {
		return
	}
	d := &physicsDebugDrawer{screen: screen, world: w, cam: cameraOf(w)}
	cp.DrawSpace(engine.Space(), d)

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, tr *component.Transform) {
		target := ecs.Entity(enemy.Target)
		to, ok := engine.Position(target)
		if !ok {
			return
		}
		from := physics.Vector{X: tr.X, Y: tr.Y}
		clr := colornames.Red
		if engine.HasLineOfSight(from, to, enemy.ViewDistance, LOSBlockers...) {
			clr = colornames.Lime
		}
		d.line(from, to, clr)
	})
}

// DrawActorDebug prints the player's grounded flag and animation state.
func DrawActorDebug(w *ecs.World, engine *physics.Engine, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	actor, ok := ecs.Get(w, player, component.ActorComponent.Kind())
	if !ok {
		return
	}
	v, _ := engine.Velocity(player)
	text := fmt.Sprintf("State: %s[%d]\nFacing: %s\nGrounded: %v\nVelocity: %.0f, %.0f\nBodies: %d",
		actor.Anim.State, actor.Anim.Frame(), actor.Facing, engine.IsOnGround(player), v.X, v.Y, engine.Len())
	ebitenutil.DebugPrintAt(screen, text, 10, 90)
}

// physicsDebugDrawer implements cp.Drawer. Every body is a box, so only
// polygons and contact dots are drawn.
type physicsDebugDrawer struct {
	screen *ebiten.Image
	world  *ecs.World
	cam    component.Camera
}

func (d *physicsDebugDrawer) DrawCircle(cp.Vector, float64, float64, cp.FColor, cp.FColor, interface{}) {
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	d.line(a, b, toRGBA(fill))
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	d.line(a, b, toRGBA(outline))
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, _, fill cp.FColor, _ interface{}) {
	clr := toRGBA(fill)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], clr)
	}
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	x, y := d.cam.ToScreen(pos.X, pos.Y)
	half := float32(max(size, 4) / 2)
	vector.DrawFilledRect(d.screen, float32(x)-half, float32(y)-half, 2*half, 2*half, toRGBA(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

// ShapeColor looks the shape's entity up to color it by collision layer.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	clr := colornames.White
	if e, ok := shape.UserData.(ecs.Entity); ok {
		if body, ok := ecs.Get(d.world, e, component.PhysicsBodyComponent.Kind()); ok {
			if c, ok := layerDebugColors[body.Layer]; ok {
				clr = c
			}
		}
	}
	return cp.FColor{R: float32(clr.R) / 255, G: float32(clr.G) / 255, B: float32(clr.B) / 255, A: 1}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 1}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) line(a, b cp.Vector, clr color.Color) {
	x1, y1 := d.cam.ToScreen(a.X, a.Y)
	x2, y2 := d.cam.ToScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, false)
}

func toRGBA(c cp.FColor) color.RGBA {
	to8 := func(v float32) uint8 { return uint8(min(max(v, 0), 1) * 255) }
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}
