package system

import (
	"github.com/milk9111/burrow/common"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
)

// AxisSource reports horizontal intent. Only the latest reading matters.
type AxisSource interface {
	Axis() float64
}

// AxisFunc adapts a function to AxisSource.
type AxisFunc func() float64

func (f AxisFunc) Axis() float64 {
	return f()
}

type InputSystem struct {
	source AxisSource
}

func NewInputSystem(source AxisSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(f *Frame) {
	if i == nil || i.source == nil || f == nil {
		return
	}

	moveX := common.Axis(i.source.Axis())
	ecs.ForEach(f.World, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		p.InputX = moveX
	})
}
