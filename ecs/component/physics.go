package component

// BodyKind selects how the physics engine integrates a body.
type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyStatic
	BodyKinematic
)

// PhysicsBody describes the collider an entity should be registered with.
// The engine keeps the runtime body; this component is only the recipe.
type PhysicsBody struct {
	Width     float64
	Height    float64
	Mass      float64
	Friction  float64
	Kind      BodyKind
	Layer     CollisionLayer
	MaxSpeedH float64
	MaxSpeedV float64
	// Registered is set once the body has been handed to the engine.
	Registered bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
