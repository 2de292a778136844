package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/logger"
	"github.com/sirupsen/logrus"
)

// EnemyContactFunc is called for every contact transition between a player
// and an enemy. It runs inside the resolver's event pass, so removals must go
// through ContactSystem.Destroy.
type EnemyContactFunc func(f *Frame, player, enemy ecs.Entity, kind collision.ContactKind)

// ContactSystem steps the collision world and applies the gameplay rules for
// the resulting contact events.
type ContactSystem struct {
	onEnemy EnemyContactFunc
	doomed  []ecs.Entity
	players map[collision.Handle]ecs.Entity
}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{players: make(map[collision.Handle]ecs.Entity)}
}

func (s *ContactSystem) OnEnemyContact(fn EnemyContactFunc) {
	if s == nil {
		return
	}
	s.onEnemy = fn
}

// Destroy queues e for removal once the current event pass ends.
func (s *ContactSystem) Destroy(e ecs.Entity) {
	if s == nil {
		return
	}
	s.doomed = append(s.doomed, e)
}

func (s *ContactSystem) Update(f *Frame) {
	if s == nil || f == nil || f.Collision == nil {
		return
	}
	s.Resolve(f, f.Collision.Step())
}

// Resolve applies one frame's events. Entities consumed by the rules are
// destroyed after the whole slice has been processed.
func (s *ContactSystem) Resolve(f *Frame, events []collision.ContactEvent) {
	if s == nil || f == nil || len(events) == 0 {
		return
	}

	clear(s.players)
	ecs.ForEach2(f.World, component.PlayerComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, _ *component.Player, c *component.Collider) {
		s.players[c.Handle] = e
	})
	if len(s.players) == 0 {
		return
	}

	for _, ev := range events {
		if e, ok := s.players[ev.A]; ok {
			s.apply(f, e, ev.A, ev.B, ev.Kind)
		}
		if e, ok := s.players[ev.B]; ok {
			s.apply(f, e, ev.B, ev.A, ev.Kind)
		}
	}

	s.flush(f)
}

func (s *ContactSystem) apply(f *Frame, playerEnt ecs.Entity, self, other collision.Handle, kind collision.ContactKind) {
	player, ok := ecs.Get(f.World, playerEnt, component.PlayerComponent.Kind())
	if !ok {
		missing(playerEnt, "player")
	}

	switch f.Collision.Group(other) {
	case collision.GroupWall:
		if kind == collision.ContactStarted {
			player.Snapback = f.Collision.Position(other).Sub(f.Collision.Position(self))
			logger.Log.WithFields(logrus.Fields{
				"player":   playerEnt.String(),
				"snapback": player.Snapback,
			}).Debug("ContactSystem: wall contact")
		} else {
			player.Snapback = cp.Vector{}
		}
	case collision.GroupFood:
		if kind == collision.ContactStarted {
			s.eat(f, playerEnt, player, other)
		}
	case collision.GroupExit:
		if kind == collision.ContactStarted {
			player.State = component.PlayerExiting
			logger.Log.WithField("player", playerEnt.String()).Debug("ContactSystem: reached exit")
		}
	case collision.GroupEnemy:
		if s.onEnemy != nil {
			s.onEnemy(f, playerEnt, ecs.Entity(f.Collision.Owner(other)), kind)
		}
	}
}

func (s *ContactSystem) eat(f *Frame, playerEnt ecs.Entity, player *component.Player, other collision.Handle) {
	foodEnt := ecs.Entity(f.Collision.Owner(other))
	food, ok := ecs.Get(f.World, foodEnt, component.FoodComponent.Kind())
	if !ok {
		missing(foodEnt, "food")
	}

	fields := logrus.Fields{
		"player": playerEnt.String(),
		"food":   food.Kind.String(),
		"belly":  player.Belly,
	}
	if int(player.Belly)+int(food.Fillingness) > component.BellyMax {
		logger.Log.WithFields(fields).Debug("ContactSystem: too full to eat")
		return
	}

	power, ok := ecs.Get(f.World, playerEnt, component.PowerComponent.Kind())
	if !ok {
		missing(playerEnt, "power")
	}
	player.Belly += food.Fillingness
	power.Value++
	s.doomed = append(s.doomed, foodEnt)
	logger.Log.WithFields(fields).Debug("ContactSystem: ate food")
}

func (s *ContactSystem) flush(f *Frame) {
	for _, e := range s.doomed {
		if c, ok := ecs.Get(f.World, e, component.ColliderComponent.Kind()); ok {
			f.Collision.Remove(c.Handle)
		}
		ecs.DestroyEntity(f.World, e)
	}
	s.doomed = s.doomed[:0]
}
