package system

import (
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
)

// HUD is the read-only view of player stats the overlay shows.
type HUD struct {
	Belly uint8
	HP    uint32
	Power uint32
	State component.PlayerState
}

// HUDStats reads the first player's stats. It reports false when no player
// exists.
func HUDStats(w *ecs.World) (HUD, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return HUD{}, false
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	hud := HUD{Belly: p.Belly, State: p.State}
	if hp, ok := ecs.Get(w, e, component.HPComponent.Kind()); ok {
		hud.HP = hp.Value
	}
	if power, ok := ecs.Get(w, e, component.PowerComponent.Kind()); ok {
		hud.Power = power.Value
	}
	return hud, true
}
