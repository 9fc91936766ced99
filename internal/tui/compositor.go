package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/LISSConsulting/LISSTech.Floater/internal/dom"
)

// Compose paints every absolutely positioned node under doc's body over base.
// base is a width×height frame whose top-left is the viewport origin. Pixel
// positions are converted to cells with the document's cell size, and the
// document scroll offset is subtracted from top. Nodes that are hidden or
// transparent, on themselves or an ancestor, are not painted. Later nodes in
// document order paint over earlier ones.
func Compose(base string, width, height int, doc *dom.Document) string {
	lines := frameLines(base, width, height)
	cw, ch := doc.CellSize()
	scrollY := doc.ScrollY()

	doc.Body().Walk(func(n *dom.Node) {
		st := n.Style()
		if st.Get("position") != "absolute" || n.Content() == "" || !visible(n) {
			return
		}
		left, _ := st.Pixels("left")
		top, _ := st.Pixels("top")
		x := int(math.Round(left / cw))
		y := int(math.Round((top - scrollY) / ch))
		paint(lines, x, y, n.Content(), width)
	})
	return strings.Join(lines, "\n")
}

// visible reports whether n and all its ancestors would be seen.
func visible(n *dom.Node) bool {
	for p := n; p != nil; p = p.Parent() {
		st := p.Style()
		if st.Hidden() || st.Transparent() {
			return false
		}
	}
	return true
}

// frameLines splits base into exactly height lines of exactly width cells.
func frameLines(base string, width, height int) []string {
	src := strings.Split(base, "\n")
	lines := make([]string, height)
	for i := range lines {
		var l string
		if i < len(src) {
			l = ansi.Truncate(src[i], width, "")
		}
		if pad := width - ansi.StringWidth(l); pad > 0 {
			l += strings.Repeat(" ", pad)
		}
		lines[i] = l
	}
	return lines
}

// paint overlays block onto lines with its top-left at cell (x, y), clipped
// to the frame.
func paint(lines []string, x, y int, block string, width int) {
	for i, l := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		lines[row] = overlay(lines[row], l, x, width)
	}
}

// overlay replaces the cells of base starting at column x with top.
func overlay(base, top string, x, width int) string {
	w := ansi.StringWidth(top)
	if x >= width || x+w <= 0 {
		return base
	}
	if x < 0 {
		top = ansi.TruncateLeft(top, -x, "")
		w += x
		x = 0
	}
	if x+w > width {
		top = ansi.Truncate(top, width-x, "")
		w = width - x
	}

	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(base, x+w, "")
	return left + top + right
}
