package component

// Sprite selects how an entity is drawn. Kind keys the frame provider;
// higher layers draw on top.
type Sprite struct {
	Kind  string
	Layer int
}

var SpriteComponent = NewComponent[Sprite]()
