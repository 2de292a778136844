package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/prefabs"
)

func NewPlayerAt(w *ecs.World, cw *collision.World, spec *prefabs.PlayerSpec, pos cp.Vector) (ecs.Entity, error) {
	if spec.Belly > component.BellyMax {
		return 0, fmt.Errorf("player: belly %d exceeds %d", spec.Belly, component.BellyMax)
	}

	e, err := buildEntity(w, cw, collision.GroupPlayer, boxOf(spec.Collider), pos, spriteOf(spec.Sprite))
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		State: component.PlayerIdle,
		Belly: spec.Belly,
	}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.HPComponent.Kind(), &component.HP{Value: spec.HP}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.PowerComponent.Kind(), &component.Power{Value: spec.Power}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}
