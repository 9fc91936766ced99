package dom

import "github.com/charmbracelet/lipgloss"

// Default cell geometry: one terminal cell maps to 8x16 px.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Box is a measured bounding box in pixels.
type Box struct {
	Width, Height float64
}

// Host is the environment a floating controller is mounted into. Document is
// the production implementation; tests may supply their own.
type Host interface {
	Body() *Node
	CreateElement(tag string) *Node
	Render(el Element, container *Node) *Node
	Measure(n *Node) Box
	ScrollY() float64
	SupportsPortal() bool
}

// Document is a headless document with a body, a scroll offset and a cell
// size used to turn rendered text into pixel boxes.
type Document struct {
	body       *Node
	nextID     int
	scrollY    float64
	cellWidth  float64
	cellHeight float64
	portal     bool
}

// Option configures a Document.
type Option func(*Document)

// WithCellSize sets the pixel size of one terminal cell.
func WithCellSize(w, h float64) Option {
	return func(d *Document) {
		if w > 0 {
			d.cellWidth = w
		}
		if h > 0 {
			d.cellHeight = h
		}
	}
}

// WithPortal sets whether the document supports detached-node portals.
func WithPortal(supported bool) Option {
	return func(d *Document) { d.portal = supported }
}

// NewDocument creates an empty document with portal support enabled.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		cellWidth:  DefaultCellWidth,
		cellHeight: DefaultCellHeight,
		portal:     true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the document body.
func (d *Document) Body() *Node { return d.body }

// CreateElement returns a new detached node.
func (d *Document) CreateElement(tag string) *Node {
	d.nextID++
	return &Node{id: d.nextID, tag: tagOrDefault(tag)}
}

// ScrollY returns the vertical scroll offset in pixels.
func (d *Document) ScrollY() float64 { return d.scrollY }

// SetScrollY sets the vertical scroll offset in pixels.
func (d *Document) SetScrollY(y float64) { d.scrollY = y }

// SupportsPortal reports whether detached-node portal mounting is available.
func (d *Document) SupportsPortal() bool { return d.portal }

// CellSize returns the pixel size of one terminal cell.
func (d *Document) CellSize() (w, h float64) { return d.cellWidth, d.cellHeight }

// Contains reports whether n is attached under the body.
func (d *Document) Contains(n *Node) bool { return n != nil && d.body.Contains(n) }

// Measure returns n's rendered bounding box. Detached nodes and nodes hidden
// with display:none (on themselves or an ancestor) have not been laid out and
// measure as zero.
func (d *Document) Measure(n *Node) Box {
	if !d.Contains(n) {
		return Box{}
	}
	for p := n; p != nil; p = p.parent {
		if p.style.Hidden() {
			return Box{}
		}
	}
	if n.content == "" {
		return Box{}
	}
	return Box{
		Width:  float64(lipgloss.Width(n.content)) * d.cellWidth,
		Height: float64(lipgloss.Height(n.content)) * d.cellHeight,
	}
}
