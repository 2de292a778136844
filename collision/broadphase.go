package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/burrow/common"
	"github.com/solarlune/resolv"
)

const defaultCellSize = 64

// defaultBounds is the area partitioned when the world is built without
// WithBounds.
var defaultBounds = cp.BB{L: -1024, B: -1024, R: 1024, T: 1024}

// broadPhase mirrors every collider into a resolv.Space so candidate pairs
// come from shared cells. Boxes reaching past the partitioned area are
// clamped onto its border cells; clamping keeps overlapping boxes in a
// shared cell, so they are still tested, only less selectively.
type broadPhase struct {
	space  *resolv.Space
	origin cp.Vector
	// spanX and spanY are the last addressable local coordinates.
	spanX float64
	spanY float64
}

func newBroadPhase(bounds cp.BB, cellSize float64) *broadPhase {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	if bounds.R <= bounds.L || bounds.T <= bounds.B {
		bounds = defaultBounds
	}
	cell := max(1, int(math.Ceil(cellSize)))
	cols := max(1, int(math.Ceil((bounds.R-bounds.L)/float64(cell))))
	rows := max(1, int(math.Ceil((bounds.T-bounds.B)/float64(cell))))

	return &broadPhase{
		space:  resolv.NewSpace(cols*cell, rows*cell, cell, cell),
		origin: cp.Vector{X: bounds.L, Y: bounds.B},
		spanX:  float64(cols*cell) - 1,
		spanY:  float64(rows*cell) - 1,
	}
}

// add creates the resolv body for h.
func (b *broadPhase) add(h Handle, bb cp.BB) *resolv.Object {
	body := resolv.NewObject(0, 0, 1, 1)
	body.Data = h
	b.fit(body, bb)
	b.space.Add(body)
	return body
}

func (b *broadPhase) move(body *resolv.Object, bb cp.BB) {
	b.fit(body, bb)
	body.Update()
}

func (b *broadPhase) remove(body *resolv.Object) {
	if body == nil {
		return
	}
	b.space.Remove(body)
}

// candidates returns the handles sharing at least one cell with body.
func (b *broadPhase) candidates(body *resolv.Object) []Handle {
	col := body.Check(0, 0)
	if col == nil {
		return nil
	}
	out := make([]Handle, 0, len(col.Objects))
	for _, o := range col.Objects {
		if h, ok := o.Data.(Handle); ok {
			out = append(out, h)
		}
	}
	return out
}

// fit places body over bb in space-local coordinates. The extra unit of width
// and height covers resolv's inclusive far edge.
func (b *broadPhase) fit(body *resolv.Object, bb cp.BB) {
	l := common.Clamp(bb.L-b.origin.X, 0, b.spanX)
	r := common.Clamp(bb.R-b.origin.X, 0, b.spanX)
	top := common.Clamp(bb.B-b.origin.Y, 0, b.spanY)
	bottom := common.Clamp(bb.T-b.origin.Y, 0, b.spanY)

	body.X, body.Y = l, top
	body.W, body.H = r-l+1, bottom-top+1
}

// overlaps is the exact box test. Boxes that only share an edge do not
// overlap, so adjacent tiles stay out of contact.
func overlaps(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}
