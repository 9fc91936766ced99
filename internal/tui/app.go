package tui

import (
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Floater/internal/dom"
	"github.com/LISSConsulting/LISSTech.Floater/internal/floating"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
	"github.com/LISSConsulting/LISSTech.Floater/internal/tui/components"
)

// Menu is one trigger of the demo and the items its floating menu lists.
type Menu struct {
	Label string
	Items []string
}

// DefaultMenus is the trigger row shown when Options.Menus is empty.
var DefaultMenus = []Menu{
	{Label: "File", Items: []string{"New", "Open…", "Save", "Quit"}},
	{Label: "Edit", Items: []string{"Undo", "Redo", "Cut", "Copy", "Paste"}},
	{Label: "View", Items: []string{"Zoom in", "Zoom out"}},
	{Label: "Help", Items: []string{"About floater"}},
}

// Options configures the demo Model.
type Options struct {
	Menus       []Menu
	Direction   geometry.Direction
	Offset      geometry.FixedOffset
	Clamp       bool // start with the clamping dynamic offset enabled
	Mode        floating.Mode
	AccentColor string
	DocOptions  []dom.Option
	Logger      *log.Logger       // controller warnings; nil discards them
	Observer    floating.Observer // also receives every controller event
}

// eventSink collects controller events between bubbletea updates. The
// controller reports synchronously, so the Model drains it after each call.
type eventSink struct {
	pending []floating.Event
	forward floating.Observer
}

func (s *eventSink) observe(e floating.Event) {
	s.pending = append(s.pending, e)
	if s.forward != nil {
		s.forward(e)
	}
}

func (s *eventSink) drain() []floating.Event {
	out := s.pending
	s.pending = nil
	return out
}

// Model is the root bubbletea model of the floating menu demo.
type Model struct {
	doc  *dom.Document
	ctrl *floating.Controller
	sink *eventSink

	menus     []Menu
	direction geometry.Direction
	offset    geometry.FixedOffset
	clamp     bool
	clamps    []*geometry.DynamicOffset // one per trigger; rebuilt on resize
	open      bool

	// Layout and focus
	layout   Layout
	focus    FocusTarget
	theme    Theme
	keys     KeyMap
	help     help.Model
	stage    viewport.Model
	triggers components.TriggerBar
	events   components.LogView
	width    int
	height   int
}

// New creates the demo Model. The controller's mount strategy is chosen
// once here from the document's capabilities and opts.Mode.
func New(opts Options) Model {
	menus := opts.Menus
	if len(menus) == 0 {
		menus = DefaultMenus
	}
	labels := make([]string, len(menus))
	for i, mn := range menus {
		labels[i] = mn.Label
	}
	direction := opts.Direction
	if direction == "" {
		direction = geometry.DirectionBottom
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	doc := dom.NewDocument(opts.DocOptions...)
	sink := &eventSink{forward: opts.Observer}

	m := Model{
		doc:       doc,
		sink:      sink,
		menus:     menus,
		direction: direction,
		offset:    opts.Offset,
		clamp:     opts.Clamp,
		theme:     NewTheme(opts.AccentColor),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		triggers:  components.NewTriggerBar(labels),
		focus:     FocusStage,
	}
	m.ctrl = floating.New(doc, floating.Props{}, floating.WithMode(opts.Mode),
		floating.WithLogger(logger), floating.WithObserver(sink.observe))
	return m.resize(80, 24)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller returns the floating controller driven by the demo.
func (m Model) Controller() *floating.Controller { return m.ctrl }

// Document returns the demo's document host.
func (m Model) Document() *dom.Document { return m.doc }

// Open reports whether the active trigger's menu is mounted.
func (m Model) Open() bool { return m.open }

// Direction returns the current menu direction.
func (m Model) Direction() geometry.Direction { return m.direction }

// resize recomputes the layout and every size-dependent piece of state.
func (m Model) resize(width, height int) Model {
	m.width, m.height = width, height
	m.layout = Calculate(width, height)
	if m.layout.TooSmall {
		return m
	}

	st := m.layout.Stage
	yOffset := m.stage.YOffset
	m.stage = viewport.New(st.Width, st.Height)
	m.stage.SetContent(m.renderCanvas())
	m.stage.SetYOffset(yOffset)

	logW, logH := innerDims(m.layout.Log)
	if m.events.Len() == 0 {
		m.events = components.NewLogView(logW, logH)
	} else {
		m.events = m.events.SetSize(logW, logH)
	}
	m.help.Width = width

	m.clamps = make([]*geometry.DynamicOffset, m.triggers.Len())
	cw, _ := m.doc.CellSize()
	for i := range m.clamps {
		m.clamps[i] = clampOffset(m.doc, m.triggerRect(i), float64(st.Width)*cw)
	}
	return m.syncScroll()
}

// triggerCells returns trigger i's rectangle in stage document cells.
func (m Model) triggerCells(i int) Rect {
	x, w := m.triggers.Bounds(i)
	return Rect{X: m.barX() + x, Y: triggerRow(m.layout.Stage.Height), Width: w, Height: 1}
}

// triggerRect returns trigger i's viewport-relative rectangle in pixels.
func (m Model) triggerRect(i int) geometry.Rect {
	r := m.triggerCells(i)
	r.Y -= m.stage.YOffset
	cw, ch := m.doc.CellSize()
	return r.Pixels(cw, ch)
}

// barX returns the column where the trigger bar starts.
func (m Model) barX() int {
	x := (m.layout.Stage.Width - m.triggers.Width()) / 2
	if x < 0 {
		return 0
	}
	return x
}

// props builds the controller props for the active trigger.
func (m Model) props() floating.Props {
	i := m.triggers.Active()
	var offset geometry.Offset = m.offset
	if m.clamp && i < len(m.clamps) {
		offset = m.clamps[i]
	}
	return floating.Props{
		Child:         &dom.Element{Tag: "ul", Content: m.theme.RenderMenu(m.menus[i].Items)},
		MenuPosition:  m.triggerRect(i),
		MenuDirection: m.direction,
		MenuOffset:    offset,
	}
}

// syncScroll mirrors the stage scroll offset into the document.
func (m Model) syncScroll() Model {
	_, ch := m.doc.CellSize()
	m.doc.SetScrollY(float64(m.stage.YOffset) * ch)
	return m
}

// refresh pushes the current props to a mounted controller and records
// whatever it reported.
func (m Model) refresh() Model {
	if m.open {
		m.ctrl.Update(m.props())
	}
	return m.record()
}

// record appends drained controller events to the log.
func (m Model) record() Model {
	for _, e := range m.sink.drain() {
		m.events = m.events.AppendLine(m.theme.RenderEvent(e))
	}
	return m
}

// Triggers returns the number of triggers in the bar.
func (m Model) Triggers() int { return m.triggers.Len() }

// Resize lays the model out for a width×height terminal, as a
// tea.WindowSizeMsg would.
func (m Model) Resize(width, height int) Model {
	return m.resize(width, height).refresh()
}

// Select makes trigger i active, moving an open menu to it.
func (m Model) Select(i int) Model {
	m.triggers = m.triggers.Select(i)
	return m.redrawStage().refresh()
}

// Toggle opens or closes the active trigger's menu. It is a no-op while the
// terminal is too small.
func (m Model) Toggle() Model {
	if m.layout.TooSmall {
		return m
	}
	return m.toggle()
}
