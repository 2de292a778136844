package collision

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tile = Box{HalfWidth: 16, HalfHeight: 16}

func recoverErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

func TestRegisterAndAccessors(t *testing.T) {
	w := NewWorld()
	h := w.Register(tile, GroupFood, cp.Vector{X: 10, Y: 20}, 42)

	require.True(t, h.Valid())
	assert.True(t, w.Contains(h))
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, cp.Vector{X: 10, Y: 20}, w.Position(h))
	assert.Equal(t, GroupFood, w.Group(h))
	assert.Equal(t, Owner(42), w.Owner(h))
	assert.Equal(t, tile, w.HalfExtents(h))
	assert.Equal(t, cp.BB{L: -6, B: 4, R: 26, T: 36}, w.BB(h))
}

func TestHandlesAreNotReusedAfterRemove(t *testing.T) {
	w := NewWorld()
	a := w.Register(tile, GroupWall, cp.Vector{}, 1)
	require.True(t, w.Remove(a))
	assert.False(t, w.Contains(a))
	assert.False(t, w.Remove(a))

	b := w.Register(tile, GroupWall, cp.Vector{}, 2)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a.slot(), b.slot())
	assert.True(t, w.Contains(b))
	assert.False(t, w.Contains(a))
}

func TestStaleHandlePanics(t *testing.T) {
	w := NewWorld()
	h := w.Register(tile, GroupPlayer, cp.Vector{}, 1)
	w.Remove(h)

	tests := []struct {
		name string
		fn   func()
	}{
		{name: "set position", fn: func() { w.SetPosition(h, cp.Vector{X: 1}) }},
		{name: "translate", fn: func() { w.Translate(h, cp.Vector{X: 1}) }},
		{name: "position", fn: func() { w.Position(h) }},
		{name: "zero handle", fn: func() { w.Position(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverErr(t, tt.fn)
			assert.True(t, errors.Is(err, ErrInvalidHandle), "got %v", err)
		})
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	w := NewWorld()
	err := recoverErr(t, func() { w.Register(Box{HalfWidth: 0, HalfHeight: 4}, GroupWall, cp.Vector{}, 0) })
	assert.ErrorIs(t, err, ErrInvalidShape)

	err = recoverErr(t, func() { w.Register(tile, groupCount, cp.Vector{}, 0) })
	assert.ErrorIs(t, err, ErrInvalidGroup)
}

func TestRegistryExhaustion(t *testing.T) {
	w := NewWorld(WithCapacity(2))
	a := w.Register(tile, GroupWall, cp.Vector{}, 1)
	w.Register(tile, GroupWall, cp.Vector{}, 2)

	err := recoverErr(t, func() { w.Register(tile, GroupWall, cp.Vector{}, 3) })
	assert.ErrorIs(t, err, ErrRegistryFull)

	// A freed slot is available again.
	w.Remove(a)
	assert.NotPanics(t, func() { w.Register(tile, GroupWall, cp.Vector{}, 4) })
}

func TestTranslateMovesExactly(t *testing.T) {
	w := NewWorld()
	h := w.Register(tile, GroupPlayer, cp.Vector{}, 1)

	got := w.Translate(h, cp.Vector{X: 120, Y: 0}.Mult(0.1))
	assert.Equal(t, cp.Vector{X: 12, Y: 0}, got)
	assert.Equal(t, got, w.Position(h))
	assert.Empty(t, w.Step())
}

func TestStepTransitions(t *testing.T) {
	w := NewWorld()
	player := w.Register(tile, GroupPlayer, cp.Vector{}, 1)
	wall := w.Register(tile, GroupWall, cp.Vector{X: 100}, 2)

	require.Empty(t, w.Step())

	w.SetPosition(player, cp.Vector{X: 95})
	events := w.Step()
	require.Len(t, events, 1)
	assert.Equal(t, ContactEvent{Kind: ContactStarted, A: player, B: wall}, events[0])
	assert.True(t, w.Overlapping(wall, player))

	// Persisting overlap emits nothing.
	for range 5 {
		w.Translate(player, cp.Vector{X: 0.5})
		assert.Empty(t, w.Step())
	}

	w.SetPosition(player, cp.Vector{})
	events = w.Step()
	require.Len(t, events, 1)
	assert.Equal(t, ContactStopped, events[0].Kind)
	assert.False(t, w.Overlapping(player, wall))

	assert.Empty(t, w.Step())
}

func TestEdgeTouchingDoesNotOverlap(t *testing.T) {
	w := NewWorld()
	w.Register(tile, GroupWall, cp.Vector{X: 16, Y: 16}, 1)
	w.Register(tile, GroupWall, cp.Vector{X: 48, Y: 16}, 2)
	w.Register(tile, GroupWall, cp.Vector{X: 16, Y: 48}, 3)

	assert.Empty(t, w.Step())
}

func TestRemoveIsSilent(t *testing.T) {
	w := NewWorld()
	player := w.Register(tile, GroupPlayer, cp.Vector{}, 1)
	food := w.Register(tile, GroupFood, cp.Vector{X: 4}, 2)

	require.Len(t, w.Step(), 1)
	require.True(t, w.Remove(food))
	assert.False(t, w.Overlapping(player, food))
	assert.Empty(t, w.Step())
}

func TestEventsAreOrderedByPair(t *testing.T) {
	w := NewWorld()
	player := w.Register(tile, GroupPlayer, cp.Vector{}, 1)
	left := w.Register(tile, GroupWall, cp.Vector{X: -20}, 2)
	right := w.Register(tile, GroupWall, cp.Vector{X: 20}, 3)

	events := w.Step()
	require.Len(t, events, 2)
	assert.Equal(t, ContactEvent{Kind: ContactStarted, A: player, B: left}, events[0])
	assert.Equal(t, ContactEvent{Kind: ContactStarted, A: player, B: right}, events[1])

	other, ok := events[1].Other(right)
	assert.True(t, ok)
	assert.Equal(t, player, other)
	_, ok = events[1].Other(left)
	assert.False(t, ok)
}

func TestNegativeCoordinates(t *testing.T) {
	w := NewWorld(WithCellSize(32))
	a := w.Register(tile, GroupPlayer, cp.Vector{X: -500, Y: -500}, 1)
	b := w.Register(tile, GroupEnemy, cp.Vector{X: -490, Y: -510}, 2)

	events := w.Step()
	require.Len(t, events, 1)
	assert.Equal(t, makePair(a, b), pair{a: events[0].A, b: events[0].B})
}

// Started and Stopped strictly alternate per pair and the broad phase finds
// exactly the pairs a brute-force scan finds.
func TestStepMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Bounds smaller than the play area push many boxes onto the border cells.
	w := NewWorld(WithCellSize(48), WithBounds(cp.BB{L: -100, B: -100, R: 100, T: 100}))

	var handles []Handle
	for i := range 40 {
		shape := Box{HalfWidth: 4 + rng.Float64()*30, HalfHeight: 4 + rng.Float64()*30}
		pos := cp.Vector{X: rng.Float64()*400 - 200, Y: rng.Float64()*400 - 200}
		handles = append(handles, w.Register(shape, Group(i%int(groupCount)), pos, Owner(i)))
	}

	open := make(map[pair]bool)
	for frame := range 60 {
		for _, h := range handles {
			w.Translate(h, cp.Vector{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10})
		}
		if frame == 30 {
			w.Remove(handles[0])
			for p := range open {
				if p.involves(handles[0]) {
					delete(open, p)
				}
			}
			handles = handles[1:]
		}

		for _, e := range w.Step() {
			p := pair{a: e.A, b: e.B}
			switch e.Kind {
			case ContactStarted:
				require.False(t, open[p], "double start for %v", p)
				open[p] = true
			case ContactStopped:
				require.True(t, open[p], "stop without start for %v", p)
				delete(open, p)
			}
		}

		for i := range handles {
			for j := i + 1; j < len(handles); j++ {
				a, b := handles[i], handles[j]
				want := overlaps(w.BB(a), w.BB(b))
				assert.Equal(t, want, open[makePair(a, b)], "frame %d pair %s %s", frame, a, b)
				assert.Equal(t, want, w.Overlapping(a, b))
			}
		}
	}
}

func TestCollidersOutsideBoundsStillCollide(t *testing.T) {
	w := NewWorld(WithCellSize(32), WithBounds(cp.BB{L: 0, B: 0, R: 64, T: 64}))
	farA := w.Register(tile, GroupPlayer, cp.Vector{X: 500, Y: 500}, 1)
	farB := w.Register(tile, GroupFood, cp.Vector{X: 510, Y: 505}, 2)
	leftA := w.Register(tile, GroupWall, cp.Vector{X: -300, Y: 20}, 3)
	leftB := w.Register(tile, GroupWall, cp.Vector{X: -300, Y: 40}, 4)

	events := w.Step()
	require.Len(t, events, 2)
	assert.True(t, w.Overlapping(farA, farB))
	assert.True(t, w.Overlapping(leftA, leftB))
	assert.False(t, w.Overlapping(farA, leftA))

	w.SetPosition(farA, cp.Vector{X: 30, Y: 30})
	events = w.Step()
	require.Len(t, events, 1)
	assert.Equal(t, ContactStopped, events[0].Kind)
}

func TestEachVisitsLiveObjects(t *testing.T) {
	w := NewWorld()
	a := w.Register(tile, GroupWall, cp.Vector{}, 1)
	b := w.Register(tile, GroupFood, cp.Vector{X: 64}, 2)
	w.Remove(a)

	var seen []Handle
	w.Each(func(h Handle, group Group, bb cp.BB) {
		seen = append(seen, h)
		assert.Equal(t, GroupFood, group)
		assert.Equal(t, w.BB(h), bb)
	})
	assert.Equal(t, []Handle{b}, seen)
}

func TestGroupAndKindStrings(t *testing.T) {
	assert.Equal(t, "wall", GroupWall.String())
	assert.Equal(t, "unknown", Group(200).String())
	assert.Equal(t, "started", ContactStarted.String())
	assert.Equal(t, "handle(none)", Handle(0).String())
}
