package collision

import "strconv"

// Handle addresses a collision object. It packs the slot index (offset by one
// so the zero Handle is never valid) and the slot generation at registration.
type Handle uint64

type slotID uint32
type generation uint32

const slotIDBits = 32

func makeHandle(slot slotID, gen generation) Handle {
	return Handle(uint64(gen)<<slotIDBits | uint64(slot+1))
}

func (h Handle) slot() slotID {
	return slotID(uint32(h) - 1)
}

func (h Handle) generation() generation {
	return generation(uint32(uint64(h) >> slotIDBits))
}

func (h Handle) String() string {
	if !h.Valid() {
		return "handle(none)"
	}
	return "handle(" + strconv.FormatUint(uint64(h.slot()), 10) + "@" + strconv.FormatUint(uint64(h.generation()), 10) + ")"
}

// Valid reports whether h could refer to a slot. It says nothing about liveness.
func (h Handle) Valid() bool {
	return uint32(h) != 0
}

// Owner is the id of the game entity a collision object represents.
// The world never dereferences it.
type Owner uint64
