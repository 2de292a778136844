package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/ecs/entity"
	"github.com/milk9111/burrow/ecs/system"
	"github.com/milk9111/burrow/levels"
	"github.com/milk9111/burrow/logger"
	"github.com/milk9111/burrow/prefabs"
	"github.com/sirupsen/logrus"
)

const (
	baseWidth  = 640
	baseHeight = 384
)

type Game struct {
	debug bool

	specs   *prefabs.Specs
	level   *levels.Level
	frame   *system.Frame
	player  ecs.Entity
	motion  *system.MotionSystem
	sched   *system.Scheduler
	render  *system.RenderSystem
	watcher *prefabs.Watcher
}

// NewGame loads prefabs and the named level. watcher may be nil.
func NewGame(levelName string, debug bool, watcher *prefabs.Watcher) (*Game, error) {
	specs, err := prefabs.LoadAll()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:   debug,
		specs:   specs,
		motion:  system.NewMotionSystem(specs.Player.MoveSpeed),
		render:  system.NewRenderSystem(),
		watcher: watcher,
	}
	g.sched = system.NewScheduler(
		system.NewInputSystem(NewInput()),
		g.motion,
		system.NewContactSystem(),
	)

	if err := g.loadLevel(levelName); err != nil {
		return nil, err
	}
	return g, nil
}

// loadLevel replaces the ECS and collision worlds with fresh ones for name.
func (g *Game) loadLevel(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	cw := entity.NewCollisionWorld(lvl)
	player, err := entity.LoadLevelToWorld(w, cw, lvl, g.specs)
	if err != nil {
		return err
	}

	g.level = lvl
	g.player = player
	g.frame = &system.Frame{World: w, Collision: cw}
	logger.Log.WithFields(logrus.Fields{
		"level":     lvl.Name,
		"colliders": cw.Len(),
		"next":      lvl.Next,
	}).Info("Game: level loaded")
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.reloadPrefabs()
	return g.step(1 / float64(ebiten.TPS()))
}

// step runs one simulation frame and moves on to the next level once the
// player reaches an exit.
func (g *Game) step(dt float64) error {
	g.frame.DT = dt
	g.sched.Update(g.frame)

	if p, ok := ecs.Get(g.frame.World, g.player, component.PlayerComponent.Kind()); ok && p.State == component.PlayerExiting {
		next := g.level.Next
		if next == "" {
			next = g.level.Name
		}
		if err := g.loadLevel(next); err != nil {
			return fmt.Errorf("load level %s: %w", next, err)
		}
	}
	return nil
}

// reloadPrefabs re-reads the prefab specs after a change on disk. Collider
// sizes apply from the next level load; move speed applies immediately.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			logger.Log.WithError(err).Warn("Game: prefab watcher")
		}
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	specs, err := prefabs.LoadAll()
	if err != nil {
		logger.Log.WithError(err).WithField("files", changed).Error("Game: reload prefabs")
		return
	}
	g.specs = specs
	g.motion.SetSpeed(specs.Player.MoveSpeed)
	logger.Log.WithFields(logrus.Fields{
		"files":      changed,
		"move_speed": specs.Player.MoveSpeed,
	}).Info("Game: prefabs reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.frame, screen)
	if g.debug {
		system.DrawCollisionDebug(g.frame.Collision, screen)
		system.DrawPlayerStateDebug(g.frame, screen)
		ebitenutil.DebugPrintAt(screen, "Level: "+g.level.Name, 10, 100)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
