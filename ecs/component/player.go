package component

import "github.com/jakecoffman/cp"

// BellyMax is the most food the player can hold.
const BellyMax = 10

type Player struct {
	// Snapback is the vector from the player to the wall it last touched.
	// It is zero while the player touches no wall.
	Snapback cp.Vector
	InputX   float64
	State    PlayerState
	Belly    uint8
}

var PlayerComponent = NewComponent[Player]()
