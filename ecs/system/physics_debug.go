package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"golang.org/x/image/colornames"
)

// DrawCollisionDebug outlines every collider. Player colliders are red.
func DrawCollisionDebug(cw *collision.World, screen *ebiten.Image) {
	if cw == nil || screen == nil {
		return
	}
	cw.Each(func(_ collision.Handle, group collision.Group, bb cp.BB) {
		clr := colornames.Black
		if group == collision.GroupPlayer {
			clr = colornames.Red
		}
		vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, clr, false)
	})
}

func DrawPlayerStateDebug(f *Frame, screen *ebiten.Image) {
	if f == nil || screen == nil {
		return
	}
	text := fmt.Sprintf("Colliders: %d\nFPS: %.2f", f.Collision.Len(), ebiten.ActualFPS())
	if player, ok := ecs.First(f.World, component.PlayerComponent.Kind()); ok {
		p, _ := ecs.Get(f.World, player, component.PlayerComponent.Kind())
		text += fmt.Sprintf("\nPlayer State: %s\nSnapback: %.1f,%.1f\nInput: %.2f", p.State, p.Snapback.X, p.Snapback.Y, p.InputX)
	}
	ebitenutil.DebugPrintAt(screen, text, 10, 20)
}
