package collision

import (
	"sort"

	"github.com/jakecoffman/cp"
)

// World tracks axis-aligned box colliders and reports overlap transitions
// between them. It is not safe for concurrent use.
type World struct {
	reg      registry
	broad    *broadPhase
	cellSize float64
	bounds   cp.BB
	contacts map[pair]struct{}
	current  map[pair]struct{}
	events   eventQueue
}

// Option configures a World.
type Option func(*World)

// WithCellSize sets the broad-phase cell size. Non-positive values keep the
// default.
func WithCellSize(size float64) Option {
	return func(w *World) {
		if size > 0 {
			w.cellSize = size
		}
	}
}

// WithBounds sets the area the broad phase partitions, usually the level's
// extent. Colliders outside it still collide correctly. Empty bounds keep the
// default.
func WithBounds(bounds cp.BB) Option {
	return func(w *World) {
		if bounds.R > bounds.L && bounds.T > bounds.B {
			w.bounds = bounds
		}
	}
}

// WithCapacity caps the number of slots the registry may allocate.
func WithCapacity(n int) Option {
	return func(w *World) {
		w.reg.capacity = n
	}
}

// NewWorld creates an empty collision world.
func NewWorld(opts ...Option) *World {
	w := &World{
		cellSize: defaultCellSize,
		bounds:   defaultBounds,
		contacts: make(map[pair]struct{}),
		current:  make(map[pair]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.broad = newBroadPhase(w.bounds, w.cellSize)
	return w
}

// Register inserts a new object and returns its handle.
func (w *World) Register(shape Box, group Group, position cp.Vector, owner Owner) Handle {
	if !shape.valid() {
		fatal(ErrInvalidShape, "half extents %vx%v", shape.HalfWidth, shape.HalfHeight)
	}
	if !group.Valid() {
		fatal(ErrInvalidGroup, "group %d", uint8(group))
	}
	h, ok := w.reg.insert(object{
		shape:    shape,
		group:    group,
		position: position,
		owner:    owner,
	})
	if !ok {
		fatal(ErrRegistryFull, "%d live objects", w.reg.live)
	}
	obj, _ := w.reg.get(h)
	obj.body = w.broad.add(h, obj.bb())
	return h
}

// Remove deletes the object behind h. Pair state involving it is dropped
// without a Stopped event. Removing a stale handle is a no-op and reports false.
func (w *World) Remove(h Handle) bool {
	obj, ok := w.reg.get(h)
	if !ok {
		return false
	}
	w.broad.remove(obj.body)
	w.reg.remove(h)
	for p := range w.contacts {
		if p.involves(h) {
			delete(w.contacts, p)
		}
	}
	return true
}

func (w *World) mustGet(h Handle) *object {
	obj, ok := w.reg.get(h)
	if !ok {
		fatal(ErrInvalidHandle, "%s", h)
	}
	return obj
}

// SetPosition moves the object behind h to pos.
func (w *World) SetPosition(h Handle, pos cp.Vector) {
	obj := w.mustGet(h)
	obj.position = pos
	w.broad.move(obj.body, obj.bb())
}

// Translate moves the object behind h by delta and returns its new position.
func (w *World) Translate(h Handle, delta cp.Vector) cp.Vector {
	obj := w.mustGet(h)
	obj.position = obj.position.Add(delta)
	w.broad.move(obj.body, obj.bb())
	return obj.position
}

func (w *World) Position(h Handle) cp.Vector {
	return w.mustGet(h).position
}

func (w *World) Group(h Handle) Group {
	return w.mustGet(h).group
}

func (w *World) Owner(h Handle) Owner {
	return w.mustGet(h).owner
}

func (w *World) HalfExtents(h Handle) Box {
	return w.mustGet(h).shape
}

// BB returns the world-space bounds of the object behind h.
func (w *World) BB(h Handle) cp.BB {
	return w.mustGet(h).bb()
}

// Contains reports whether h refers to a live object.
func (w *World) Contains(h Handle) bool {
	_, ok := w.reg.get(h)
	return ok
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return w.reg.live
}

// Each visits every live object in slot order.
func (w *World) Each(fn func(h Handle, group Group, bb cp.BB)) {
	w.reg.each(func(h Handle, obj *object) {
		fn(h, obj.group, obj.bb())
	})
}

// Overlapping reports whether a and b were in contact as of the last Step.
func (w *World) Overlapping(a, b Handle) bool {
	_, ok := w.contacts[makePair(a, b)]
	return ok
}

// Step runs the broad and narrow phase over all live objects and returns the
// contact transitions since the previous Step, in ascending pair order.
func (w *World) Step() []ContactEvent {
	clear(w.current)
	w.reg.each(func(h Handle, obj *object) {
		bb := obj.bb()
		for _, other := range w.broad.candidates(obj.body) {
			// Each pair is tested from its lower handle only.
			if !handleLess(h, other) {
				continue
			}
			o, ok := w.reg.get(other)
			if ok && overlaps(bb, o.bb()) {
				w.current[makePair(h, other)] = struct{}{}
			}
		}
	})

	var changed []pair
	for p := range w.current {
		if _, ok := w.contacts[p]; !ok {
			changed = append(changed, p)
		}
	}
	for p := range w.contacts {
		if _, ok := w.current[p]; !ok {
			changed = append(changed, p)
		}
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].less(changed[j]) })

	for _, p := range changed {
		if _, ok := w.current[p]; ok {
			w.events.push(ContactStarted, p)
		} else {
			w.events.push(ContactStopped, p)
		}
	}

	w.contacts, w.current = w.current, w.contacts
	return w.events.drain()
}
