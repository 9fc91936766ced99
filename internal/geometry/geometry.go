// Package geometry computes where a floating element goes relative to a
// reference rectangle. Everything here is pure: the same inputs always give
// the same position.
package geometry

import "fmt"

// CaretClearance is the gap, in pixels, reserved between the floating element
// and the reference rectangle for a caret/arrow graphic.
const CaretClearance = 8

// Rect is a viewport-relative reference rectangle in pixels. Unset fields are 0.
type Rect struct {
	Top    float64 `json:"top" yaml:"top"`
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Size is a measured width/height in pixels.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Point is a top/left pair: an offset adjustment or a final position.
type Point struct {
	Top  float64 `json:"top" yaml:"top"`
	Left float64 `json:"left" yaml:"left"`
}

// Direction selects the side of the reference rectangle to anchor to.
type Direction string

const (
	DirectionLeft   Direction = "left"
	DirectionTop    Direction = "top"
	DirectionRight  Direction = "right"
	DirectionBottom Direction = "bottom"
)

// Directions lists every valid direction in cycling order.
var Directions = []Direction{DirectionBottom, DirectionRight, DirectionTop, DirectionLeft}

// ParseDirection validates s. The empty string means DirectionBottom.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if d == "" {
		return DirectionBottom, nil
	}
	if !d.Valid() {
		return "", fmt.Errorf("geometry: unknown direction %q (want left, top, right or bottom)", s)
	}
	return d, nil
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionLeft, DirectionTop, DirectionRight, DirectionBottom:
		return true
	}
	return false
}

// Next returns the following direction in Directions, wrapping around.
func (d Direction) Next() Direction {
	for i, dir := range Directions {
		if dir == d {
			return Directions[(i+1)%len(Directions)]
		}
	}
	return DirectionBottom
}

// Params are the inputs to ComputeFloatingPosition.
type Params struct {
	MenuSize  Size
	RefRect   Rect
	Offset    Point
	Direction Direction // empty means bottom
	ScrollY   float64
}

// ComputeFloatingPosition returns the top-left corner of the floating element
// relative to the top-left of the viewport. ok is false for an unrecognized
// direction, in which case no position must be applied.
//
// left:   placed left of the rect, vertically centered
// right:  placed right of the rect, vertically centered
// top:    placed above the rect, horizontally centered
// bottom: placed below the rect, horizontally centered
func ComputeFloatingPosition(p Params) (pos Point, ok bool) {
	ref := p.RefRect
	w, h := p.MenuSize.Width, p.MenuSize.Height
	centerX := (ref.Left + ref.Right) / 2
	centerY := (ref.Top + ref.Bottom) / 2

	dir := p.Direction
	if dir == "" {
		dir = DirectionBottom
	}

	switch dir {
	case DirectionLeft:
		return Point{
			Left: ref.Left - w - p.Offset.Left - CaretClearance,
			Top:  centerY - h/2 + p.ScrollY + p.Offset.Top,
		}, true
	case DirectionTop:
		return Point{
			Left: centerX - w/2 + p.Offset.Left,
			Top:  ref.Top - h + p.ScrollY - p.Offset.Top - CaretClearance,
		}, true
	case DirectionRight:
		return Point{
			Left: ref.Right + p.Offset.Left + CaretClearance,
			Top:  centerY - h/2 + p.ScrollY + p.Offset.Top,
		}, true
	case DirectionBottom:
		return Point{
			Left: centerX - w/2 + p.Offset.Left,
			Top:  ref.Bottom + p.ScrollY + p.Offset.Top + CaretClearance,
		}, true
	}
	return Point{}, false
}
