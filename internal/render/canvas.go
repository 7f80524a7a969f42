package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
)

type drawOp func(dst *ebiten.Image)

// Canvas is a Renderer that records a frame as a display list while the game
// ticks and replays the last presented frame when ebiten asks for a draw.
type Canvas struct {
	face    *text.GoTextFace
	pending []drawOp
	front   []drawOp

	// white is the 1x1 source region used to fill polygon triangles.
	white *ebiten.Image
}

func NewCanvas(fontSize float64) (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load score font: %w", err)
	}
	return &Canvas{face: &text.GoTextFace{Source: src, Size: fontSize}}, nil
}

func (c *Canvas) Clear(col color.RGBA) {
	c.pending = append(c.pending, func(dst *ebiten.Image) {
		dst.Fill(col)
	})
}

func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	c.pending = append(c.pending, func(dst *ebiten.Image) {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), col, false)
	})
}

func (c *Canvas) FillCircle(center image.Point, radius int, col color.RGBA) {
	c.pending = append(c.pending, func(dst *ebiten.Image) {
		vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(radius), col, true)
	})
}

func (c *Canvas) FillPolygon(points []image.Point, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	pts := append([]image.Point(nil), points...)
	c.pending = append(c.pending, func(dst *ebiten.Image) {
		c.fillPath(dst, pts, col)
	})
}

func (c *Canvas) Text(s string, at image.Point, col color.RGBA) {
	c.pending = append(c.pending, func(dst *ebiten.Image) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(at.X), float64(at.Y))
		op.ColorScale.ScaleWithColor(col)
		text.Draw(dst, s, c.face, op)
	})
}

// Present makes the recorded frame the one replayed by Draw and starts a new
// recording.
func (c *Canvas) Present() {
	c.front, c.pending = c.pending, c.front[:0]
}

// Draw replays the last presented frame onto screen.
func (c *Canvas) Draw(screen *ebiten.Image) {
	for _, op := range c.front {
		op(screen)
	}
}

func (c *Canvas) fillPath(dst *ebiten.Image, pts []image.Point, col color.RGBA) {
	if c.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(col.R) / 255
		vs[i].ColorG = float32(col.G) / 255
		vs[i].ColorB = float32(col.B) / 255
		vs[i].ColorA = float32(col.A) / 255
	}
	dst.DrawTriangles(vs, is, c.white, &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd})
}
