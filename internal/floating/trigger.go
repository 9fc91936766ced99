package floating

import (
	"github.com/LISSConsulting/LISSTech.Floater/internal/dom"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
)

// needsRecompute reports whether the position must be measured again. prev is
// nil on mount, which always recomputes.
func needsRecompute(prev *Props, next Props, st State) bool {
	if prev == nil || !st.MenuRendered {
		return true
	}
	return prev.MenuPosition != next.MenuPosition ||
		geometry.OffsetsDiffer(prev.MenuOffset, next.MenuOffset) ||
		prev.MenuDirection != next.MenuDirection
}

// updateMenuSize measures target and commits a new floating position when
// the trigger conditions hold. Every skip leaves the previous state intact.
// It reports whether the committed position changed.
func (c *Controller) updateMenuSize(target *dom.Node, prev *Props) bool {
	if target == nil {
		c.logger.Printf("floating: menu body node for calculating its position is not available, skipping")
		c.emit(Event{Kind: EventSkip, Reason: ReasonNoTarget})
		return false
	}
	if !needsRecompute(prev, c.props, c.state) {
		return false
	}

	box := c.host.Measure(target)
	size := geometry.Size{Width: box.Width, Height: box.Height}
	dir := c.props.MenuDirection
	adj, ready := geometry.ResolveOffset(c.props.MenuOffset, target, dir)

	// hidden menus measure as zero; dynamic offsets may not be ready yet
	if size.Width <= 0 || size.Height <= 0 {
		c.emit(Event{Kind: EventSkip, Direction: dir, Size: &size, Reason: ReasonZeroSize})
		return false
	}
	if !ready {
		c.emit(Event{Kind: EventSkip, Direction: dir, Size: &size, Reason: ReasonOffsetPending})
		return false
	}

	pos, ok := geometry.ComputeFloatingPosition(geometry.Params{
		MenuSize:  size,
		RefRect:   c.props.MenuPosition,
		Offset:    adj,
		Direction: dir,
		ScrollY:   c.host.ScrollY(),
	})
	if !ok {
		c.logger.Printf("floating: unknown menu direction %q, not positioning", dir)
		c.emit(Event{Kind: EventSkip, Direction: dir, Size: &size, Reason: ReasonBadDirection})
		return false
	}

	changed := c.state.FloatingPosition == nil || *c.state.FloatingPosition != pos
	c.state = State{FloatingPosition: &pos, MenuRendered: true}
	c.emit(Event{Kind: EventPosition, Direction: dir, Size: &size, Position: &pos})
	return changed
}
