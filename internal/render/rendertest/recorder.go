// Package rendertest provides a Renderer that records draw calls for tests.
package rendertest

import (
	"image"
	"image/color"
)

type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpPolygon
	OpText
)

// Op is one recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Color  color.RGBA
	Rect   image.Rectangle
	Center image.Point
	Radius int
	Points []image.Point
	Text   string
	At     image.Point
}

// Recorder implements render.Renderer. Ops holds the calls of the frame in
// progress; Last holds the calls of the most recently presented frame.
type Recorder struct {
	Ops    []Op
	Last   []Op
	Frames int
}

func (r *Recorder) Clear(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rect, Color: c})
}

func (r *Recorder) FillCircle(center image.Point, radius int, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Center: center, Radius: radius, Color: c})
}

func (r *Recorder) FillPolygon(points []image.Point, c color.RGBA) {
	pts := append([]image.Point(nil), points...)
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: pts, Color: c})
}

func (r *Recorder) Text(s string, at image.Point, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, At: at, Color: c})
}

func (r *Recorder) Present() {
	r.Frames++
	r.Last, r.Ops = r.Ops, nil
}

// Count returns how many ops of kind k the last presented frame holds.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Last {
		if op.Kind == k {
			n++
		}
	}
	return n
}
