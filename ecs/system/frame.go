package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
)

var ErrMissingComponent = errors.New("system: missing component")

// Frame is the state one tick of the simulation runs against.
type Frame struct {
	World     *ecs.World
	Collision *collision.World
	// DT is the elapsed time for this frame in seconds.
	DT float64
}

type System interface {
	Update(f *Frame)
}

type Scheduler struct {
	systems []System
}

// NewScheduler runs systems in the order given. Nil entries are skipped.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		if system != nil {
			s.systems = append(s.systems, system)
		}
	}
	return s
}

// Update runs every system once, in order.
func (s *Scheduler) Update(f *Frame) {
	if s == nil || f == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(f)
	}
}

func missing(e ecs.Entity, what string) {
	panic(fmt.Errorf("%w: entity %s has no %s", ErrMissingComponent, e, what))
}
