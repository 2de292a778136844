package component

import "github.com/milk9111/burrow/collision"

// Collider links an entity to its object in the collision world.
type Collider struct {
	Handle collision.Handle
	Group  collision.Group
}

var ColliderComponent = NewComponent[Collider]()
