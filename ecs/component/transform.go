package component

import "github.com/jakecoffman/cp"

// Transform is the externally visible position of an entity. For entities
// with a collider it mirrors the collider's centre.
type Transform struct {
	X float64
	Y float64
}

func (t Transform) Vector() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

func (t *Transform) Set(v cp.Vector) {
	t.X = v.X
	t.Y = v.Y
}

var TransformComponent = NewComponent[Transform]()
