package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/ecs/entity"
	"github.com/milk9111/burrow/prefabs"
	"github.com/stretchr/testify/require"
)

var tileSpec = prefabs.ColliderSpec{Width: 32, Height: 32}

type harness struct {
	t       *testing.T
	frame   *Frame
	player  ecs.Entity
	axis    float64
	input   *InputSystem
	motion  *MotionSystem
	contact *ContactSystem
}

func newHarness(t *testing.T, belly uint8, pos cp.Vector) *harness {
	t.Helper()
	h := &harness{
		t: t,
		frame: &Frame{
			World:     ecs.NewWorld(),
			Collision: collision.NewWorld(),
			DT:        1,
		},
		motion:  NewMotionSystem(DefaultMoveSpeed),
		contact: NewContactSystem(),
	}
	h.input = NewInputSystem(AxisFunc(func() float64 { return h.axis }))

	spec := &prefabs.PlayerSpec{MoveSpeed: DefaultMoveSpeed, HP: 30, Power: 1, Belly: belly, Collider: tileSpec}
	p, err := entity.NewPlayerAt(h.frame.World, h.frame.Collision, spec, pos)
	require.NoError(t, err)
	h.player = p
	return h
}

// tick runs one frame in game order.
func (h *harness) tick() {
	NewScheduler(h.input, h.motion, h.contact).Update(h.frame)
}

func (h *harness) wall(pos cp.Vector) ecs.Entity {
	h.t.Helper()
	origin := pos.Sub(cp.Vector{X: 16, Y: 16})
	walls, err := entity.BuildWalls(h.frame.World, h.frame.Collision, [][]uint32{{1}}, origin, 32, component.Sprite{})
	require.NoError(h.t, err)
	return walls[0]
}

func (h *harness) food(kind component.FoodKind, pos cp.Vector) ecs.Entity {
	h.t.Helper()
	e, err := entity.NewFoodAt(h.frame.World, h.frame.Collision, &prefabs.FoodSpec{Collider: tileSpec}, kind, pos)
	require.NoError(h.t, err)
	return e
}

func (h *harness) exit(pos cp.Vector) ecs.Entity {
	h.t.Helper()
	e, err := entity.NewExitAt(h.frame.World, h.frame.Collision, &prefabs.PropSpec{Collider: tileSpec}, pos)
	require.NoError(h.t, err)
	return e
}

func (h *harness) enemy(pos cp.Vector) ecs.Entity {
	h.t.Helper()
	e, err := entity.NewEnemyAt(h.frame.World, h.frame.Collision, &prefabs.PropSpec{Collider: tileSpec}, pos)
	require.NoError(h.t, err)
	return e
}

func (h *harness) state() *component.Player {
	p, ok := ecs.Get(h.frame.World, h.player, component.PlayerComponent.Kind())
	require.True(h.t, ok)
	return p
}

func (h *harness) power() uint32 {
	p, ok := ecs.Get(h.frame.World, h.player, component.PowerComponent.Kind())
	require.True(h.t, ok)
	return p.Value
}

func (h *harness) handle(e ecs.Entity) collision.Handle {
	c, ok := ecs.Get(h.frame.World, e, component.ColliderComponent.Kind())
	require.True(h.t, ok)
	return c.Handle
}

func (h *harness) position() cp.Vector {
	tr, ok := ecs.Get(h.frame.World, h.player, component.TransformComponent.Kind())
	require.True(h.t, ok)
	return tr.Vector()
}
