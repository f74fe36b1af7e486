package component

// Coin is a pickup worth Points.
type Coin struct {
	Points int
}

var CoinComponent = NewComponent[Coin]()
