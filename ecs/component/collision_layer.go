package component

// CollisionLayer tags a body so collision handlers can be selected by
// the pair of layers that touch.
type CollisionLayer uint

const (
	LayerNone CollisionLayer = iota
	LayerPlayer
	LayerEnemy
	LayerBullet
	LayerCoin
	LayerWall
	LayerBlocker
	LayerDoor
)

func (l CollisionLayer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerEnemy:
		return "enemy"
	case LayerBullet:
		return "bullet"
	case LayerCoin:
		return "coin"
	case LayerWall:
		return "wall"
	case LayerBlocker:
		return "blocker"
	case LayerDoor:
		return "door"
	default:
		return "none"
	}
}
