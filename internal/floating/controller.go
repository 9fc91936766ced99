// Package floating mounts a floating menu outside its trigger's layout flow,
// measures it, and keeps it positioned next to a reference rectangle across
// renders.
//
// A Controller is driven entirely by its lifecycle: Mount, any number of
// Update calls with new props, then Unmount. Failures to measure or position
// are absorbed; callers only observe whether the child carries position
// styling yet.
package floating

import (
	"log"
	"time"

	"github.com/LISSConsulting/LISSTech.Floater/internal/dom"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
)

// Props are the caller-supplied inputs for one render.
type Props struct {
	// Child is the single element to float. Nil renders nothing.
	Child *dom.Element
	// MenuPosition is the viewport rectangle of the trigger.
	MenuPosition geometry.Rect
	// MenuDirection defaults to bottom.
	MenuDirection geometry.Direction
	// MenuOffset defaults to a zero FixedOffset.
	MenuOffset geometry.Offset
	// Styles are merged over the computed position style.
	Styles dom.Style
}

func (p Props) withDefaults() Props {
	if p.MenuDirection == "" {
		p.MenuDirection = geometry.DirectionBottom
	}
	if p.MenuOffset == nil {
		p.MenuOffset = geometry.FixedOffset{}
	}
	return p
}

// State is the controller's lifecycle state. FloatingPosition stays nil until
// the first successful measurement.
type State struct {
	FloatingPosition *geometry.Point
	MenuRendered     bool
}

// Phase is the externally visible lifecycle phase.
type Phase int

const (
	PhaseUnmounted  Phase = iota // not attached
	PhaseMeasuring               // attached, never positioned
	PhasePositioned              // child carries absolute position styling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUnmounted:
		return "unmounted"
	case PhaseMeasuring:
		return "measuring"
	case PhasePositioned:
		return "positioned"
	default:
		return "unknown"
	}
}

// Controller owns one floating element and the document nodes used to mount it.
type Controller struct {
	host     dom.Host
	mode     Mode
	strategy MountStrategy
	props    Props
	prev     *Props
	state    State
	mounted  bool
	logger   *log.Logger
	observer Observer
	now      func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithMode forces a mount strategy. The default is ModeAuto.
func WithMode(m Mode) Option {
	return func(c *Controller) { c.mode = m }
}

// WithLogger sets the logger that receives measurement warnings.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn to receive lifecycle events.
func WithObserver(fn Observer) Option {
	return func(c *Controller) { c.observer = fn }
}

// New creates an unmounted controller. The mount strategy is chosen here,
// once, from the host's capabilities and the requested mode.
func New(host dom.Host, props Props, opts ...Option) *Controller {
	c := &Controller{
		host:   host,
		mode:   ModeAuto,
		props:  props.withDefaults(),
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.mode = resolveMode(host, c.mode)
	c.strategy = NewStrategy(host, c.mode)
	return c
}

// Mount attaches the floating element to the document and runs the first
// measurement. Mounting twice is a no-op.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	if c.strategy == nil {
		c.strategy = NewStrategy(c.host, c.mode)
	}
	c.mounted = true
	c.emit(Event{Kind: EventMount, Direction: c.props.MenuDirection})
	c.prev = nil
	c.strategy.Mount(c)
}

// Update applies new props. Before Mount the props are only stored.
func (c *Controller) Update(props Props) {
	prev := c.props
	c.props = props.withDefaults()
	if !c.mounted {
		return
	}
	c.emit(Event{Kind: EventUpdate, Direction: c.props.MenuDirection})
	c.prev = &prev
	c.strategy.Update(c)
	c.prev = nil
}

// Unmount detaches and releases every node the strategy created and resets
// the lifecycle state. A later Mount starts from scratch.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.strategy.Unmount()
	c.strategy = nil
	c.mounted = false
	c.state = State{}
	c.emit(Event{Kind: EventUnmount})
}

// State returns a snapshot of the lifecycle state.
func (c *Controller) State() State {
	st := c.state
	if st.FloatingPosition != nil {
		pos := *st.FloatingPosition
		st.FloatingPosition = &pos
	}
	return st
}

// Phase reports the current lifecycle phase.
func (c *Controller) Phase() Phase {
	switch {
	case !c.mounted:
		return PhaseUnmounted
	case c.state.FloatingPosition == nil:
		return PhaseMeasuring
	default:
		return PhasePositioned
	}
}

// Strategy returns the name of the selected mount strategy.
func (c *Controller) Strategy() string { return string(c.mode) }

// Target returns the rendered root node of the floating element, or nil.
func (c *Controller) Target() *dom.Node {
	if c.strategy == nil {
		return nil
	}
	return c.strategy.Target()
}

// Child returns the floating element as it should be rendered now: unstyled
// until positioned, then with absolute position styling and Styles merged
// last. It returns nil when Props.Child is nil.
func (c *Controller) Child() *dom.Element {
	if c.props.Child == nil {
		return nil
	}
	el := *c.props.Child
	pos := c.state.FloatingPosition
	if pos == nil {
		return &el
	}
	el = el.WithStyle(PositionStyle(*pos).Merge(c.props.Styles))
	return &el
}

// PositionStyle is the inline style applied to a positioned floating element.
func PositionStyle(pos geometry.Point) dom.Style {
	return dom.Style{
		"position": "absolute",
		"left":     dom.Px(pos.Left),
		"top":      dom.Px(pos.Top),
		"right":    "auto",
		"margin":   "0",
		"opacity":  "1",
	}
}

func (c *Controller) child() *dom.Element { return c.Child() }

func (c *Controller) measure(target *dom.Node) bool {
	return c.updateMenuSize(target, c.prev)
}

func (c *Controller) emit(e Event) {
	if c.observer == nil {
		return
	}
	e.Strategy = string(c.mode)
	e.At = c.now()
	c.observer(e)
}
