package tui

import (
	"github.com/LISSConsulting/LISSTech.Floater/internal/dom"
	"github.com/LISSConsulting/LISSTech.Floater/internal/geometry"
)

// Minimum terminal size for the demo.
const (
	MinWidth  = 40
	MinHeight = 12
)

// Rect represents a rectangular region of the terminal, in cells.
type Rect struct {
	X, Y, Width, Height int
}

// Pixels converts r to a pixel rectangle at the given cell size.
func (r Rect) Pixels(cellW, cellH float64) geometry.Rect {
	return geometry.Rect{
		Top:    float64(r.Y) * cellH,
		Left:   float64(r.X) * cellW,
		Right:  float64(r.X+r.Width) * cellW,
		Bottom: float64(r.Y+r.Height) * cellH,
	}
}

// Layout holds the computed region geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Stage          Rect // scrollable document area the menu is composited over
	Log            Rect // event log, including its border
	TooSmall       bool // true when terminal is below MinWidth×MinHeight
}

// Calculate computes the layout for a terminal of the given dimensions.
//
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Log: full width, a quarter of the height clamped to [5, 10] rows
//   - Stage: everything in between
func Calculate(width, height int) Layout {
	if width < MinWidth || height < MinHeight {
		return Layout{TooSmall: true}
	}

	logH := height / 4
	if logH < 5 {
		logH = 5
	}
	if logH > 10 {
		logH = 10
	}
	stageH := height - 2 - logH

	return Layout{
		Header: Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer: Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Stage:  Rect{X: 0, Y: 1, Width: width, Height: stageH},
		Log:    Rect{X: 0, Y: 1 + stageH, Width: width, Height: logH},
	}
}

// innerDims returns the content dimensions of a bordered region.
func innerDims(r Rect) (w, h int) {
	w, h = r.Width-2, r.Height-2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// stageCanvasRows is the scrollable height of the stage document: enough to
// scroll the trigger row off the top edge.
func stageCanvasRows(stageH int) int {
	return stageH * 2
}

// triggerRow is the document row holding the trigger bar.
func triggerRow(stageH int) int {
	return stageH / 2
}

// clampOffset returns a dynamic offset that nudges a top- or bottom-anchored
// menu horizontally so it stays inside [0, widthPx]. It is not ready until
// the menu has a measurable width. One instance is kept per trigger so
// repeated renders do not look like offset changes.
func clampOffset(doc *dom.Document, ref geometry.Rect, widthPx float64) *geometry.DynamicOffset {
	return geometry.NewDynamicOffset(func(target *dom.Node, dir geometry.Direction) (geometry.Point, bool) {
		box := doc.Measure(target)
		if box.Width <= 0 {
			return geometry.Point{}, false
		}
		if dir != geometry.DirectionTop && dir != geometry.DirectionBottom {
			return geometry.Point{}, true
		}
		left := (ref.Left+ref.Right)/2 - box.Width/2
		switch {
		case left < 0:
			return geometry.Point{Left: -left}, true
		case left+box.Width > widthPx:
			return geometry.Point{Left: widthPx - left - box.Width}, true
		}
		return geometry.Point{}, true
	})
}
