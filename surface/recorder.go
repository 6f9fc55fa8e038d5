// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import "image/color"

type OpKind string

const (
	OpFillRect       OpKind = "fill_rect"
	OpStrokeRect     OpKind = "stroke_rect"
	OpStrokeLine     OpKind = "stroke_line"
	OpStrokePolyline OpKind = "stroke_polyline"
	OpFillPolygon    OpKind = "fill_polygon"
	OpFillSlice      OpKind = "fill_slice"
	OpStrokeSlice    OpKind = "stroke_slice"
	OpStrokeArc      OpKind = "stroke_arc"
	OpText           OpKind = "text"
)

// Op is a single recorded drawing operation.
// Rectangles use X, Y, W and H. Slices and arcs use X and Y as center.
type Op struct {
	Kind    OpKind
	X, Y    float64
	W, H    float64
	Points  []Point
	Radius  float64
	Start   float64
	Sweep   float64
	Size    float64
	Text    string
	Color   color.NRGBA
	Width   float64
	Opacity float64
}

// Recorder is a Surface which only records what is drawn.
type Recorder struct {
	Ops         []Op
	fillColor   color.NRGBA
	strokeColor color.NRGBA
	lineWidth   float64
	opacity     float64
}

func NewRecorder() *Recorder {
	return &Recorder{lineWidth: 1, opacity: 1}
}

// Filter returns the recorded operations of the given kinds, in drawing order.
func (r *Recorder) Filter(kinds ...OpKind) []Op {
	var l []Op
	for _, o := range r.Ops {
		for _, k := range kinds {
			if o.Kind == k {
				l = append(l, o)
				break
			}
		}
	}
	return l
}

func (r *Recorder) Reset() {
	r.Ops = nil
}

func (r *Recorder) SetFillColor(c color.NRGBA) {
	r.fillColor = c
}

func (r *Recorder) SetStrokeColor(c color.NRGBA) {
	r.strokeColor = c
}

func (r *Recorder) SetLineWidth(w float64) {
	r.lineWidth = w
}

func (r *Recorder) fill(o Op) {
	o.Color = r.fillColor
	o.Opacity = r.opacity
	r.Ops = append(r.Ops, o)
}

func (r *Recorder) stroke(o Op) {
	o.Color = r.strokeColor
	o.Width = r.lineWidth
	o.Opacity = r.opacity
	r.Ops = append(r.Ops, o)
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.fill(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.stroke(Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) StrokeLine(from, to Point) {
	r.stroke(Op{Kind: OpStrokeLine, Points: []Point{from, to}})
}

func (r *Recorder) StrokePolyline(pts []Point) {
	r.stroke(Op{Kind: OpStrokePolyline, Points: append([]Point(nil), pts...)})
}

func (r *Recorder) FillPolygon(pts []Point) {
	r.fill(Op{Kind: OpFillPolygon, Points: append([]Point(nil), pts...)})
}

func (r *Recorder) FillSlice(center Point, radius, start, sweep float64) {
	r.fill(Op{Kind: OpFillSlice, X: center.X, Y: center.Y, Radius: radius, Start: start, Sweep: sweep})
}

func (r *Recorder) StrokeSlice(center Point, radius, start, sweep float64) {
	r.stroke(Op{Kind: OpStrokeSlice, X: center.X, Y: center.Y, Radius: radius, Start: start, Sweep: sweep})
}

func (r *Recorder) StrokeArc(center Point, radius, start, sweep float64) {
	r.stroke(Op{Kind: OpStrokeArc, X: center.X, Y: center.Y, Radius: radius, Start: start, Sweep: sweep})
}

func (r *Recorder) DrawText(at Point, size float64, s string) {
	r.fill(Op{Kind: OpText, X: at.X, Y: at.Y, Size: size, Text: s})
}

func (r *Recorder) Transparent(opacity float64, draw func() error) error {
	prev := r.opacity
	r.opacity *= opacity
	defer func() { r.opacity = prev }()
	return draw()
}
