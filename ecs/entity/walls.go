package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
)

// CellCenter returns the world position of the centre of grid cell
// (col, row). Rows grow downwards from origin.
func CellCenter(origin cp.Vector, cell float64, col, row int) cp.Vector {
	return cp.Vector{
		X: origin.X + float64(col)*cell + cell/2,
		Y: origin.Y + float64(row)*cell + cell/2,
	}
}

// BuildWalls registers one wall entity per non-zero tile. Each wall fills
// its cell exactly, so neighbouring walls touch without overlapping.
func BuildWalls(w *ecs.World, cw *collision.World, tiles [][]uint32, origin cp.Vector, cell float64, sprite component.Sprite) ([]ecs.Entity, error) {
	if cell <= 0 {
		return nil, fmt.Errorf("walls: cell size %v", cell)
	}

	shape := collision.Box{HalfWidth: cell / 2, HalfHeight: cell / 2}
	var walls []ecs.Entity
	for row, line := range tiles {
		for col, id := range line {
			if id == 0 {
				continue
			}
			e, err := buildEntity(w, cw, collision.GroupWall, shape, CellCenter(origin, cell, col, row), sprite)
			if err != nil {
				return nil, fmt.Errorf("walls: tile %d,%d: %w", col, row, err)
			}
			if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
				return nil, fmt.Errorf("walls: tile %d,%d: %w", col, row, err)
			}
			walls = append(walls, e)
		}
	}
	return walls, nil
}
