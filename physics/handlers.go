package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/quizplatformer/ecs"
)

// CollisionType tags a body so handlers can be chosen by the pair of
// types that touch. Zero means untyped.
type CollisionType uint

// Result tells the engine whether a contact that just began is solid.
type Result int

const (
	// Consume keeps normal rigid resolution.
	Consume Result = iota
	// PassThrough makes the pair ignore each other until they separate.
	PassThrough
)

func (r Result) String() string {
	if r == PassThrough {
		return "pass_through"
	}
	return "consume"
}

// HandlerFuncs are invoked synchronously inside Step. Arguments follow
// the (a, b) order the handler was registered with. Either may be nil.
type HandlerFuncs struct {
	Begin    func(a, b ecs.Entity) Result
	Separate func(a, b ecs.Entity)
}

type pairKey struct {
	lo, hi CollisionType
}

func makePairKey(a, b CollisionType) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

type handler struct {
	a, b  CollisionType
	funcs HandlerFuncs
}

// Handle installs the handlers for the unordered pair (a, b), replacing
// any handlers already installed for that pair.
func (e *Engine) Handle(a, b CollisionType, funcs HandlerFuncs) {
	if e == nil {
		return
	}
	key := makePairKey(a, b)
	if h, ok := e.handlers[key]; ok {
		h.a, h.b = a, b
		h.funcs = funcs
		return
	}

	h := &handler{a: a, b: b, funcs: funcs}
	e.handlers[key] = h

	ch := e.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
	ch.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		first, second, ok := e.arbiterBodies(arb, h)
		if !ok {
			// One side is already queued for removal.
			return false
		}
		if h.funcs.Begin == nil {
			return true
		}
		return h.funcs.Begin(first.entity, second.entity) == Consume
	}
	ch.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		if h.funcs.Separate == nil {
			return
		}
		first, second, ok := e.arbiterEntities(arb, h)
		if !ok {
			return
		}
		h.funcs.Separate(first, second)
	}
}

// arbiterBodies resolves the two live bodies of an arbiter in the order
// the handler expects.
func (e *Engine) arbiterBodies(arb *cp.Arbiter, h *handler) (*body, *body, bool) {
	sa, sb := arb.Shapes()
	ba, okA := e.shapes[sa]
	bb, okB := e.shapes[sb]
	if !okA || !okB || ba.removed || bb.removed {
		return nil, nil, false
	}
	if ba.ctype != h.a && bb.ctype == h.a {
		ba, bb = bb, ba
	}
	return ba, bb, true
}

// arbiterEntities is arbiterBodies for separation, which must still fire
// while one side is being removed.
func (e *Engine) arbiterEntities(arb *cp.Arbiter, h *handler) (ecs.Entity, ecs.Entity, bool) {
	sa, sb := arb.Shapes()
	ba, okA := e.shapes[sa]
	bb, okB := e.shapes[sb]
	if !okA || !okB {
		return 0, 0, false
	}
	if ba.ctype != h.a && bb.ctype == h.a {
		ba, bb = bb, ba
	}
	return ba.entity, bb.entity, true
}
