// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	// The builtin gio stroke may draw horizontal and vertical lines with different
	// thickness, even if the same width is specified.
	"gioui.org/x/stroke"
)

// maxTextSize limits the constraints used to lay out labels.
const maxTextSize = 4096

// GioSurface records drawing operations into gio ops, in pixel units.
type GioSurface struct {
	ops         *op.Ops
	th          *material.Theme
	fillColor   color.NRGBA
	strokeColor color.NRGBA
	lineWidth   float32
}

// NewTextTheme returns a material theme which uses the embedded go fonts only.
func NewTextTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	return th
}

// NewGioSurface creates a surface which adds to ops. If th is nil, NewTextTheme is used.
func NewGioSurface(ops *op.Ops, th *material.Theme) *GioSurface {
	if th == nil {
		th = NewTextTheme()
	}
	return &GioSurface{ops: ops, th: th, lineWidth: 1}
}

func toF32(p Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func (g *GioSurface) SetFillColor(c color.NRGBA) {
	g.fillColor = c
}

func (g *GioSurface) SetStrokeColor(c color.NRGBA) {
	g.strokeColor = c
}

func (g *GioSurface) SetLineWidth(w float64) {
	g.lineWidth = float32(w)
}

func (g *GioSurface) FillRect(x, y, w, h float64) {
	g.FillPolygon(RectPoints(x, y, w, h))
}

func (g *GioSurface) StrokeRect(x, y, w, h float64) {
	g.StrokePolyline(closed(RectPoints(x, y, w, h)))
}

func (g *GioSurface) StrokeLine(from, to Point) {
	g.StrokePolyline([]Point{from, to})
}

func (g *GioSurface) StrokePolyline(pts []Point) {
	if len(pts) < 2 {
		return
	}
	var path stroke.Path
	path.Segments = append(path.Segments, stroke.MoveTo(toF32(pts[0])))
	for _, p := range pts[1:] {
		path.Segments = append(path.Segments, stroke.LineTo(toF32(p)))
	}
	area := stroke.Stroke{Path: path, Width: g.lineWidth}.Op(g.ops)
	paint.FillShape(g.ops, g.strokeColor, area)
}

func (g *GioSurface) FillPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	var p clip.Path
	p.Begin(g.ops)
	p.MoveTo(toF32(pts[0]))
	for _, pt := range pts[1:] {
		p.LineTo(toF32(pt))
	}
	p.Close()
	paint.FillShape(g.ops, g.fillColor, clip.Outline{Path: p.End()}.Op())
}

func (g *GioSurface) FillSlice(center Point, radius, start, sweep float64) {
	g.FillPolygon(SlicePoints(center, radius, start, sweep))
}

func (g *GioSurface) StrokeSlice(center Point, radius, start, sweep float64) {
	g.StrokePolyline(closed(SlicePoints(center, radius, start, sweep)))
}

func (g *GioSurface) StrokeArc(center Point, radius, start, sweep float64) {
	g.StrokePolyline(ArcPoints(center, radius, start, sweep))
}

func (g *GioSurface) DrawText(at Point, size float64, s string) {
	gtx := layout.Context{
		Ops:         g.ops,
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Constraints{Max: image.Pt(maxTextSize, maxTextSize)},
	}
	macro := op.Record(g.ops)
	lbl := material.Label(g.th, unit.Sp(size), s)
	lbl.Color = g.fillColor
	lbl.Alignment = text.Start
	dims := lbl.Layout(gtx)
	call := macro.Stop()

	stack := op.Offset(image.Point{X: int(at.X), Y: int(at.Y) - (dims.Size.Y - dims.Baseline)}).Push(g.ops)
	call.Add(g.ops)
	stack.Pop()
}

func (g *GioSurface) Transparent(opacity float64, draw func() error) error {
	stack := paint.PushOpacity(g.ops, float32(opacity))
	defer stack.Pop()
	return draw()
}
