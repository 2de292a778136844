package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
)

const maxSlots = math.MaxUint32 - 1

// Box is an axis-aligned box described by its half extents.
type Box struct {
	HalfWidth  float64
	HalfHeight float64
}

func (b Box) valid() bool {
	return b.HalfWidth > 0 && b.HalfHeight > 0
}

type object struct {
	shape    Box
	group    Group
	position cp.Vector
	owner    Owner
	body     *resolv.Object
	live     bool
}

func (o *object) bb() cp.BB {
	return cp.NewBBForExtents(o.position, o.shape.HalfWidth, o.shape.HalfHeight)
}

// registry is the arena of collision objects. Freed slots are reused with a
// bumped generation so handles to the old occupant stop resolving.
type registry struct {
	objects  []object
	gens     []generation
	free     []slotID
	live     int
	capacity int
}

func (r *registry) insert(obj object) (Handle, bool) {
	var slot slotID
	if n := len(r.free); n > 0 {
		slot = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		limit := maxSlots
		if r.capacity > 0 && r.capacity < limit {
			limit = r.capacity
		}
		if len(r.objects) >= limit {
			return 0, false
		}
		slot = slotID(len(r.objects))
		r.objects = append(r.objects, object{})
		r.gens = append(r.gens, 0)
	}

	obj.live = true
	r.objects[slot] = obj
	r.live++
	return makeHandle(slot, r.gens[slot]), true
}

func (r *registry) get(h Handle) (*object, bool) {
	if !h.Valid() {
		return nil, false
	}
	slot := h.slot()
	if int(slot) >= len(r.objects) {
		return nil, false
	}
	obj := &r.objects[slot]
	if !obj.live || r.gens[slot] != h.generation() {
		return nil, false
	}
	return obj, true
}

func (r *registry) remove(h Handle) bool {
	if _, ok := r.get(h); !ok {
		return false
	}
	slot := h.slot()
	r.objects[slot] = object{}
	r.gens[slot]++
	r.free = append(r.free, slot)
	r.live--
	return true
}

// each visits live objects in slot order.
func (r *registry) each(fn func(h Handle, obj *object)) {
	for i := range r.objects {
		obj := &r.objects[i]
		if !obj.live {
			continue
		}
		slot := slotID(i)
		fn(makeHandle(slot, r.gens[slot]), obj)
	}
}
