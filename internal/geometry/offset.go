package geometry

import "github.com/LISSConsulting/LISSTech.Floater/internal/dom"

// Offset is a caller-specified fine adjustment of the floating position. It is
// either a FixedOffset or a *DynamicOffset. A nil Offset behaves as FixedOffset{}.
type Offset interface {
	// Resolve returns the adjustment for the measured target. ok is false
	// when the adjustment cannot be computed yet.
	Resolve(target *dom.Node, dir Direction) (adj Point, ok bool)
}

// FixedOffset is a literal top/left adjustment.
type FixedOffset Point

// Resolve returns the fixed pair.
func (o FixedOffset) Resolve(*dom.Node, Direction) (Point, bool) {
	return Point(o), true
}

// OffsetFunc computes an adjustment from the measured element and direction.
// Returning false suppresses positioning.
type OffsetFunc func(target *dom.Node, dir Direction) (Point, bool)

// DynamicOffset wraps an OffsetFunc. Two dynamic offsets are the same only if
// they are the same pointer, so callers wanting stable positioning keep one
// instance across renders.
type DynamicOffset struct {
	fn OffsetFunc
}

// NewDynamicOffset returns a DynamicOffset calling fn.
func NewDynamicOffset(fn OffsetFunc) *DynamicOffset {
	return &DynamicOffset{fn: fn}
}

// Resolve calls the wrapped function. A nil function is never ready.
func (o *DynamicOffset) Resolve(target *dom.Node, dir Direction) (Point, bool) {
	if o == nil || o.fn == nil {
		return Point{}, false
	}
	return o.fn(target, dir)
}

// OffsetsDiffer reports whether switching from old to next might move the
// floating element. It is false only for identical dynamic offsets or plain
// pairs with equal fields.
func OffsetsDiffer(old, next Offset) bool {
	old, next = normalize(old), normalize(next)
	switch o := old.(type) {
	case FixedOffset:
		n, ok := next.(FixedOffset)
		return !ok || o.Top != n.Top || o.Left != n.Left
	case *DynamicOffset:
		n, ok := next.(*DynamicOffset)
		return !ok || o != n
	}
	return true
}

// ResolveOffset resolves o, treating nil as the zero pair.
func ResolveOffset(o Offset, target *dom.Node, dir Direction) (Point, bool) {
	return normalize(o).Resolve(target, dir)
}

func normalize(o Offset) Offset {
	if o == nil {
		return FixedOffset{}
	}
	if d, ok := o.(*DynamicOffset); ok && d == nil {
		return FixedOffset{}
	}
	return o
}
