package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/prefabs"
	"golang.org/x/image/colornames"
)

func NewFoodAt(w *ecs.World, cw *collision.World, spec *prefabs.FoodSpec, kind component.FoodKind, pos cp.Vector) (ecs.Entity, error) {
	sprite := component.Sprite{Color: colornames.White, Layer: 1}
	if s, ok := spec.Sprites[kind.String()]; ok && opaque(s.Color.RGBA) {
		sprite = spriteOf(s)
	}

	e, err := buildEntity(w, cw, collision.GroupFood, boxOf(spec.Collider), pos, sprite)
	if err != nil {
		return 0, fmt.Errorf("food: %w", err)
	}
	food := component.NewFood(kind)
	if err := ecs.Add(w, e, component.FoodComponent.Kind(), &food); err != nil {
		return 0, fmt.Errorf("food: %w", err)
	}
	return e, nil
}
