package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/levels"
	"github.com/milk9111/burrow/prefabs"
)

var ErrNoPlayer = errors.New("level: no player placed")

// NewCollisionWorld returns an empty collision world partitioned over lvl's
// tile area, with broad-phase cells two tiles wide.
func NewCollisionWorld(lvl *levels.Level) *collision.World {
	bounds := cp.BB{
		L: lvl.Origin.X,
		B: lvl.Origin.Y,
		R: lvl.Origin.X + float64(lvl.Width())*lvl.CellSize,
		T: lvl.Origin.Y + float64(lvl.Height())*lvl.CellSize,
	}
	return collision.NewWorld(collision.WithCellSize(lvl.CellSize*2), collision.WithBounds(bounds))
}

// LoadLevelToWorld builds the walls and entities of lvl into w and cw and
// returns the player entity.
func LoadLevelToWorld(w *ecs.World, cw *collision.World, lvl *levels.Level, specs *prefabs.Specs) (ecs.Entity, error) {
	origin := cp.Vector{X: lvl.Origin.X, Y: lvl.Origin.Y}
	if _, err := BuildWalls(w, cw, lvl.Tiles, origin, lvl.CellSize, spriteOf(specs.Wall.Sprite)); err != nil {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	var player ecs.Entity
	for i, ent := range lvl.Entities {
		pos := CellCenter(origin, lvl.CellSize, ent.X, ent.Y)
		var err error
		switch strings.ToLower(ent.Type) {
		case "player":
			player, err = NewPlayerAt(w, cw, specs.Player, pos)
		case "food":
			var kind component.FoodKind
			kind, err = component.ParseFoodKind(ent.Props["kind"])
			if err == nil {
				_, err = NewFoodAt(w, cw, specs.Food, kind, pos)
			}
		case "exit":
			_, err = NewExitAt(w, cw, specs.Exit, pos)
		case "enemy":
			_, err = NewEnemyAt(w, cw, specs.Enemy, pos)
		default:
			err = fmt.Errorf("unknown entity type %q", ent.Type)
		}
		if err != nil {
			return 0, fmt.Errorf("level %s: entity %d: %w", lvl.Name, i, err)
		}
	}

	if !player.Valid() {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, ErrNoPlayer)
	}
	return player, nil
}
