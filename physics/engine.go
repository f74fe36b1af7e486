package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/quizplatformer/ecs"
)

// Vector is a 2D vector in world units, y pointing up.
type Vector = cp.Vector

// BodyKind selects how a body is integrated.
type BodyKind int

const (
	// Dynamic bodies are moved by gravity, forces and contacts.
	Dynamic BodyKind = iota
	// Static bodies never move.
	Static
	// Kinematic bodies follow their velocity and ignore gravity and forces.
	Kinematic
)

// MoveFunc receives the displacement a body made during one Step.
type MoveFunc func(dx, dy, dAngle float64)

// BodyDef describes a body to register. Position is the body center.
type BodyDef struct {
	Position  Vector
	Width     float64
	Height    float64
	Mass      float64
	Friction  float64
	Type      CollisionType
	Kind      BodyKind
	MaxSpeedH float64 // zero means unclamped
	MaxSpeedV float64 // zero means unclamped
	OnMoved   MoveFunc
}

// Config holds the space-wide simulation settings.
type Config struct {
	Gravity    Vector
	Damping    float64
	Iterations int
	// GroundThreshold is how far a contact normal must point down from a
	// body for it to count as standing on something.
	GroundThreshold float64
}

// DefaultConfig returns the tuning the shipped levels were built for.
func DefaultConfig() Config {
	return Config{
		Gravity:         Vector{X: 0, Y: -2000},
		Damping:         0.01,
		Iterations:      20,
		GroundThreshold: 0.5,
	}
}

type body struct {
	entity    ecs.Entity
	cp        *cp.Body
	shape     *cp.Shape
	kind      BodyKind
	ctype     CollisionType
	width     float64
	height    float64
	maxSpeedH float64
	maxSpeedV float64
	last      Vector
	lastAngle float64
	onMoved   MoveFunc
	removed   bool
}

// Engine owns a Chipmunk space and maps its bodies to entities. It is
// not safe for concurrent use.
type Engine struct {
	space    *cp.Space
	cfg      Config
	bodies   map[ecs.Entity]*body
	order    []*body
	shapes   map[*cp.Shape]*body
	handlers map[pairKey]*handler

	// locked counts nested sections where cp forbids removals.
	locked  int
	pending []*body
}

// New creates an empty engine. Zero Iterations or GroundThreshold take
// their defaults; invalid damping is an error.
func New(cfg Config) (*Engine, error) {
	if cfg.Iterations <= 0 {
		cfg.Iterations = 20
	}
	if cfg.GroundThreshold <= 0 {
		cfg.GroundThreshold = 0.5
	}

	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)

	e := &Engine{
		space:    space,
		cfg:      cfg,
		bodies:   make(map[ecs.Entity]*body),
		shapes:   make(map[*cp.Shape]*body),
		handlers: make(map[pairKey]*handler),
	}
	if err := e.Configure(cfg.Gravity, cfg.Damping); err != nil {
		return nil, err
	}
	return e, nil
}

// Configure sets gravity and damping. Damping is the fraction of velocity
// kept per second; zero would stop every body dead, so it is rejected.
func (e *Engine) Configure(gravity Vector, damping float64) error {
	if !(damping > 0 && damping <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidDamping, damping)
	}
	e.cfg.Gravity = gravity
	e.cfg.Damping = damping
	e.space.SetGravity(gravity)
	e.space.SetDamping(damping)
	return nil
}

// Space exposes the underlying space for debug drawing.
func (e *Engine) Space() *cp.Space {
	if e == nil {
		return nil
	}
	return e.space
}

// Register adds a box body for ent.
func (e *Engine) Register(ent ecs.Entity, def BodyDef) error {
	if e == nil {
		return ErrInvalidBody
	}
	if _, ok := e.bodies[ent]; ok {
		return &DuplicateRegistrationError{Entity: ent}
	}
	if e.locked > 0 {
		return ErrSpaceLocked
	}
	if def.Width <= 0 || def.Height <= 0 {
		return fmt.Errorf("%w: entity %s has size %vx%v", ErrInvalidBody, ent, def.Width, def.Height)
	}

	var cpBody *cp.Body
	switch def.Kind {
	case Static:
		cpBody = cp.NewStaticBody()
	case Kinematic:
		cpBody = cp.NewKinematicBody()
	default:
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		// Infinite moment keeps actors upright.
		cpBody = cp.NewBody(mass, cp.INFINITY)
	}
	cpBody.SetPosition(def.Position)

	b := &body{
		entity:    ent,
		cp:        cpBody,
		kind:      def.Kind,
		ctype:     def.Type,
		width:     def.Width,
		height:    def.Height,
		maxSpeedH: def.MaxSpeedH,
		maxSpeedV: def.MaxSpeedV,
		last:      def.Position,
		onMoved:   def.OnMoved,
	}
	if def.Kind == Dynamic && (def.MaxSpeedH > 0 || def.MaxSpeedV > 0) {
		cpBody.SetVelocityUpdateFunc(b.updateVelocity)
	}

	e.space.AddBody(cpBody)
	shape := cp.NewBox(cpBody, def.Width, def.Height, 0)
	shape.SetFriction(def.Friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(cp.CollisionType(def.Type))
	shape.UserData = ent
	e.space.AddShape(shape)
	b.shape = shape

	e.bodies[ent] = b
	e.shapes[shape] = b
	e.order = append(e.order, b)
	return nil
}

func (b *body) updateVelocity(cpBody *cp.Body, gravity cp.Vector, damping, dt float64) {
	cp.BodyUpdateVelocity(cpBody, gravity, damping, dt)
	v := cpBody.Velocity()
	if b.maxSpeedH > 0 {
		v.X = clamp(v.X, b.maxSpeedH)
	}
	if b.maxSpeedV > 0 {
		v.Y = clamp(v.Y, b.maxSpeedV)
	}
	cpBody.SetVelocityVector(v)
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}

func (e *Engine) live(ent ecs.Entity) (*body, bool) {
	if e == nil {
		return nil, false
	}
	b, ok := e.bodies[ent]
	if !ok || b.removed {
		return nil, false
	}
	return b, true
}

// ApplyForce adds a force at the body center. Forces accumulate until
// the next Step and are then cleared.
func (e *Engine) ApplyForce(ent ecs.Entity, force Vector) {
	if b, ok := e.live(ent); ok && b.kind == Dynamic {
		b.cp.ApplyForceAtWorldPoint(force, b.cp.Position())
	}
}

// ApplyImpulse changes velocity immediately.
func (e *Engine) ApplyImpulse(ent ecs.Entity, impulse Vector) {
	if b, ok := e.live(ent); ok && b.kind == Dynamic {
		b.cp.ApplyImpulseAtWorldPoint(impulse, b.cp.Position())
	}
}

// SetFriction changes the friction of ent's shape.
func (e *Engine) SetFriction(ent ecs.Entity, friction float64) {
	if b, ok := e.live(ent); ok {
		b.shape.SetFriction(friction)
	}
}

// SetVelocity overrides the velocity of a dynamic or kinematic body.
func (e *Engine) SetVelocity(ent ecs.Entity, v Vector) {
	if b, ok := e.live(ent); ok && b.kind != Static {
		b.cp.SetVelocityVector(v)
	}
}

// Position returns the body center.
func (e *Engine) Position(ent ecs.Entity) (Vector, bool) {
	b, ok := e.live(ent)
	if !ok {
		return Vector{}, false
	}
	return b.cp.Position(), true
}

// Velocity returns the body's current velocity.
func (e *Engine) Velocity(ent ecs.Entity) (Vector, bool) {
	b, ok := e.live(ent)
	if !ok {
		return Vector{}, false
	}
	return b.cp.Velocity(), true
}

// Size returns the box size a body was registered with.
func (e *Engine) Size(ent ecs.Entity) (w, h float64, ok bool) {
	b, ok := e.live(ent)
	if !ok {
		return 0, 0, false
	}
	return b.width, b.height, true
}

// Has reports whether ent has a body that is not being removed.
func (e *Engine) Has(ent ecs.Entity) bool {
	_, ok := e.live(ent)
	return ok
}

// Len returns the number of live bodies.
func (e *Engine) Len() int {
	if e == nil {
		return 0
	}
	return len(e.bodies) - len(e.pending)
}

// IsOnGround reports whether a solid contact is pushing the body up.
func (e *Engine) IsOnGround(ent ecs.Entity) bool {
	b, ok := e.live(ent)
	if !ok || b.kind != Dynamic {
		return false
	}
	grounded := false
	b.cp.EachArbiter(func(arb *cp.Arbiter) {
		if grounded || arb.Count() == 0 {
			return
		}
		// The normal points from this body into the other one.
		if arb.Normal().Y < -e.cfg.GroundThreshold {
			grounded = true
		}
	})
	return grounded
}

// RemoveBody drops ent's body. Unknown or already removed entities are
// ignored. Removals requested while the space is locked run as soon as
// it unlocks.
func (e *Engine) RemoveBody(ent ecs.Entity) {
	b, ok := e.live(ent)
	if !ok {
		return
	}
	b.removed = true
	if e.locked > 0 {
		e.pending = append(e.pending, b)
		return
	}
	e.detach(b)
	e.flush()
}

func (e *Engine) detach(b *body) {
	// RemoveShape runs separate handlers, which may ask for more removals.
	e.locked++
	e.space.RemoveShape(b.shape)
	e.space.RemoveBody(b.cp)
	e.locked--

	delete(e.shapes, b.shape)
	delete(e.bodies, b.entity)
	for i, o := range e.order {
		if o == b {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

func (e *Engine) flush() {
	for e.locked == 0 && len(e.pending) > 0 {
		b := e.pending[0]
		e.pending = e.pending[1:]
		e.detach(b)
	}
	if len(e.pending) == 0 {
		e.pending = nil
	}
}

// Step advances the simulation by dt seconds, runs collision handlers,
// applies deferred removals and then reports each moving body's
// displacement to its MoveFunc.
func (e *Engine) Step(dt float64) {
	if e == nil || dt <= 0 {
		return
	}

	e.locked++
	e.space.Step(dt)
	e.locked--
	e.flush()

	moved := make([]*body, len(e.order))
	copy(moved, e.order)
	for _, b := range moved {
		if b.removed || b.kind == Static {
			continue
		}
		pos := b.cp.Position()
		angle := b.cp.Angle()
		dx, dy, da := pos.X-b.last.X, pos.Y-b.last.Y, angle-b.lastAngle
		b.last = pos
		b.lastAngle = angle
		if b.onMoved != nil {
			b.onMoved(dx, dy, da)
		}
	}
}

// HasLineOfSight reports whether the segment from -> to is no longer than
// maxDistance and crosses no body of the blocker types.
func (e *Engine) HasLineOfSight(from, to Vector, maxDistance float64, blockers ...CollisionType) bool {
	if e == nil {
		return false
	}
	if maxDistance > 0 && from.Distance(to) > maxDistance {
		return false
	}
	if len(blockers) == 0 {
		return true
	}

	blocked := false
	e.space.SegmentQuery(from, to, 0, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _, _ cp.Vector, _ float64, _ interface{}) {
		if blocked {
			return
		}
		b, ok := e.shapes[shape]
		if !ok || b.removed {
			return
		}
		for _, t := range blockers {
			if b.ctype == t {
				blocked = true
				return
			}
		}
	}, nil)
	return !blocked
}
