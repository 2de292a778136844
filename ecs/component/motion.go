package component

import "github.com/jakecoffman/cp"

type Motion struct {
	Velocity cp.Vector
	// Acceleration is an impulse added to Velocity once, then cleared.
	Acceleration cp.Vector
}

var MotionComponent = NewComponent[Motion]()
