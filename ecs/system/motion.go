package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
)

const DefaultMoveSpeed = 120

// MotionSystem turns player input into velocity and moves the player's
// collider, mirroring the result into its Transform.
type MotionSystem struct {
	speed float64
}

func NewMotionSystem(speed float64) *MotionSystem {
	return &MotionSystem{speed: speed}
}

func (m *MotionSystem) Speed() float64 {
	if m == nil {
		return 0
	}
	return m.speed
}

func (m *MotionSystem) SetSpeed(speed float64) {
	if m == nil {
		return
	}
	m.speed = speed
}

func (m *MotionSystem) Update(f *Frame) {
	if m == nil || f == nil || f.Collision == nil {
		return
	}

	ecs.ForEach3(f.World,
		component.PlayerComponent.Kind(),
		component.MotionComponent.Kind(),
		component.ColliderComponent.Kind(),
		func(e ecs.Entity, p *component.Player, mo *component.Motion, c *component.Collider) {
			mo.Velocity.X = p.InputX * m.speed
			if !p.Snapback.Equal(cp.Vector{}) {
				// Acceleration stays queued until the wall lets go. Both axes
				// are replaced, so a vertical push-out keeps Velocity.Y after
				// the contact stops.
				mo.Velocity = p.Snapback.Neg()
			} else {
				mo.Velocity = mo.Velocity.Add(mo.Acceleration)
				mo.Acceleration = cp.Vector{}
			}

			pos := f.Collision.Translate(c.Handle, mo.Velocity.Mult(f.DT))
			t, ok := ecs.Get(f.World, e, component.TransformComponent.Kind())
			if !ok {
				missing(e, "transform")
			}
			t.Set(pos)
		})
}
