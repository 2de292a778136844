package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/ecs/system"
	"github.com/milk9111/burrow/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame builds a game whose scheduler reads a fixed axis instead of
// the keyboard.
func newTestGame(t *testing.T, axis float64) *Game {
	t.Helper()
	logger.Silence()
	g, err := NewGame("meadow", false, nil)
	require.NoError(t, err)
	g.sched = system.NewScheduler(
		system.NewInputSystem(system.AxisFunc(func() float64 { return axis })),
		g.motion,
		system.NewContactSystem(),
	)
	return g
}

func TestNewGameLoadsLevel(t *testing.T) {
	g := newTestGame(t, 0)
	assert.Equal(t, "meadow", g.level.Name)
	assert.True(t, ecs.IsAlive(g.frame.World, g.player))

	_, err := NewGame("missing", false, nil)
	assert.Error(t, err)
}

func TestWalkingRightEatsAndExits(t *testing.T) {
	g := newTestGame(t, 1)

	start, _ := ecs.Get(g.frame.World, g.player, component.TransformComponent.Kind())
	startX := start.X

	var ate bool
	for frame := 0; frame < 60*10 && g.level.Name == "meadow"; frame++ {
		require.NoError(t, g.step(1.0/60))
		if g.level.Name != "meadow" {
			break
		}
		if hud, ok := system.HUDStats(g.frame.World); ok && hud.Belly > 0 {
			ate = true
			tr, _ := ecs.Get(g.frame.World, g.player, component.TransformComponent.Kind())
			assert.Greater(t, tr.X, startX)
		}
	}

	assert.True(t, ate)
	assert.Equal(t, "warren", g.level.Name)
	hud, ok := system.HUDStats(g.frame.World)
	require.True(t, ok)
	assert.Equal(t, system.HUD{Belly: 0, HP: 30, Power: 1, State: component.PlayerIdle}, hud)
}

func TestExitWithoutNextReloadsSameLevel(t *testing.T) {
	g := newTestGame(t, 0)
	g.level.Next = ""

	p, ok := ecs.Get(g.frame.World, g.player, component.PlayerComponent.Kind())
	require.True(t, ok)
	p.State = component.PlayerExiting
	old := g.frame

	require.NoError(t, g.step(1.0/60))
	assert.Equal(t, "meadow", g.level.Name)
	assert.NotSame(t, old, g.frame)

	c, ok := ecs.Get(g.frame.World, g.player, component.ColliderComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 80, Y: 304}, g.frame.Collision.Position(c.Handle))
}
