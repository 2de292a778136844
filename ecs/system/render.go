package system

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"golang.org/x/image/colornames"
)

type RenderSystem struct {
	items []renderItem
}

type renderItem struct {
	entity ecs.Entity
	bb     cp.BB
	sprite component.Sprite
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw fills each collider's box with its sprite colour, lowest layer first,
// then prints the HUD line.
func (r *RenderSystem) Draw(f *Frame, screen *ebiten.Image) {
	if r == nil || f == nil || screen == nil {
		return
	}

	screen.Fill(colornames.Lightblue)

	r.items = r.items[:0]
	ecs.ForEach2(f.World, component.SpriteComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, s *component.Sprite, c *component.Collider) {
		r.items = append(r.items, renderItem{entity: e, bb: f.Collision.BB(c.Handle), sprite: *s})
	})
	sort.SliceStable(r.items, func(i, j int) bool {
		if r.items[i].sprite.Layer != r.items[j].sprite.Layer {
			return r.items[i].sprite.Layer < r.items[j].sprite.Layer
		}
		return uint64(r.items[i].entity) < uint64(r.items[j].entity)
	})

	for _, it := range r.items {
		bb := it.bb
		vector.FillRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), it.sprite.Color, false)
	}

	if hud, ok := HUDStats(f.World); ok {
		ebitenutil.DebugPrint(screen, FormatHUD(hud))
	}
}

// FormatHUD renders the stats line shown in the top left corner.
func FormatHUD(h HUD) string {
	return fmt.Sprintf("Belly: %d  HP: %d  Power: %d", h.Belly, h.HP, h.Power)
}
