package collision

// ContactKind identifies a contact transition.
type ContactKind uint8

const (
	ContactStarted ContactKind = iota + 1
	ContactStopped
)

func (k ContactKind) String() string {
	switch k {
	case ContactStarted:
		return "started"
	case ContactStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ContactEvent is emitted when a pair of objects starts or stops overlapping.
// A always sorts before B.
type ContactEvent struct {
	Kind ContactKind
	A    Handle
	B    Handle
}

// Other returns the handle paired with h, or false if the event does not
// involve h.
func (e ContactEvent) Other(h Handle) (Handle, bool) {
	switch h {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return 0, false
	}
}

// pair is an unordered pair of handles stored with a before b.
type pair struct {
	a Handle
	b Handle
}

func makePair(a, b Handle) pair {
	if handleLess(b, a) {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

func (p pair) less(o pair) bool {
	if p.a != o.a {
		return handleLess(p.a, o.a)
	}
	return handleLess(p.b, o.b)
}

func (p pair) involves(h Handle) bool {
	return p.a == h || p.b == h
}

// handleLess orders handles by slot, then generation.
func handleLess(a, b Handle) bool {
	if a.slot() != b.slot() {
		return a.slot() < b.slot()
	}
	return a.generation() < b.generation()
}

// eventQueue is a FIFO of contact events for one step.
type eventQueue struct {
	items []ContactEvent
}

func (q *eventQueue) push(kind ContactKind, p pair) {
	q.items = append(q.items, ContactEvent{Kind: kind, A: p.a, B: p.b})
}

// drain returns all events and clears the queue.
func (q *eventQueue) drain() []ContactEvent {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
