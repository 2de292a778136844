package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/prefabs"
)

// NewEnemyAt places an enemy. Enemies have no behaviour of their own yet;
// they only occupy the enemy collision group.
func NewEnemyAt(w *ecs.World, cw *collision.World, spec *prefabs.PropSpec, pos cp.Vector) (ecs.Entity, error) {
	e, err := buildEntity(w, cw, collision.GroupEnemy, boxOf(spec.Collider), pos, spriteOf(spec.Sprite))
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	return e, nil
}

func NewExitAt(w *ecs.World, cw *collision.World, spec *prefabs.PropSpec, pos cp.Vector) (ecs.Entity, error) {
	e, err := buildEntity(w, cw, collision.GroupExit, boxOf(spec.Collider), pos, spriteOf(spec.Sprite))
	if err != nil {
		return 0, fmt.Errorf("exit: %w", err)
	}
	if err := ecs.Add(w, e, component.ExitTagComponent.Kind(), &component.ExitTag{}); err != nil {
		return 0, fmt.Errorf("exit: %w", err)
	}
	return e, nil
}
