package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/prefabs"
)

// buildEntity creates an entity with a transform, a sprite and a collider
// registered in cw. The collider's owner is the new entity.
func buildEntity(w *ecs.World, cw *collision.World, group collision.Group, shape collision.Box, pos cp.Vector, sprite component.Sprite) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	h := cw.Register(shape, group, pos, collision.Owner(e))

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Handle: h, Group: group}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return 0, err
	}
	return e, nil
}

func boxOf(spec prefabs.ColliderSpec) collision.Box {
	return collision.Box{HalfWidth: spec.Width / 2, HalfHeight: spec.Height / 2}
}

func spriteOf(spec prefabs.SpriteSpec) component.Sprite {
	return component.Sprite{Color: spec.Color.RGBA, Layer: spec.Layer}
}

// opaque reports whether c would draw anything.
func opaque(c color.RGBA) bool {
	return c.A != 0
}
