// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"gioui.org/op"
	"github.com/stretchr/testify/assert"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func drawAll(s Surface) {
	s.SetFillColor(red)
	s.SetStrokeColor(red)
	s.SetLineWidth(2)
	s.FillRect(1, 1, 10, 10)
	s.StrokeRect(1, 1, 10, 10)
	s.StrokeLine(Pt(0, 0), Pt(20, 20))
	s.StrokePolyline([]Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}})
	s.FillPolygon([]Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}})
	s.FillSlice(Pt(30, 30), 10, 0, 90)
	s.StrokeSlice(Pt(30, 30), 10, 0, 360)
	s.StrokeArc(Pt(30, 30), 10, 90, 45)
	s.DrawText(Pt(5, 40), 12, "abc")
}

func TestPolarPoint(t *testing.T) {
	p := PolarPoint(Pt(10, 10), 5, 90)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)
	p = PolarPoint(Pt(10, 10), 5, 0)
	assert.InDelta(t, 15, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)
}

func TestSlicePoints(t *testing.T) {
	pts := SlicePoints(Pt(0, 0), 1, 0, 90)
	assert.Equal(t, Pt(0, 0), pts[0])
	last := pts[len(pts)-1]
	assert.InDelta(t, 0, last.X, 1e-9)
	assert.InDelta(t, -1, last.Y, 1e-9)

	circle := SlicePoints(Pt(0, 0), 1, 0, 360)
	for _, p := range circle {
		assert.InDelta(t, 1, math.Hypot(p.X, p.Y), 1e-9)
	}
}

func TestRecorderTracksState(t *testing.T) {
	r := NewRecorder()
	drawAll(r)
	rects := r.Filter(OpFillRect)
	assert.Len(t, rects, 1)
	assert.Equal(t, red, rects[0].Color)
	assert.Equal(t, 1.0, rects[0].Opacity)
	assert.Equal(t, 2.0, r.Filter(OpStrokeLine)[0].Width)
	assert.Len(t, r.Filter(OpFillSlice, OpStrokeSlice), 2)
	assert.Equal(t, "abc", r.Filter(OpText)[0].Text)
}

func TestRecorderTransparentNests(t *testing.T) {
	r := NewRecorder()
	err := r.Transparent(0.5, func() error {
		return r.Transparent(0.5, func() error {
			r.FillRect(0, 0, 1, 1)
			return nil
		})
	})
	assert.NoError(t, err)
	r.FillRect(0, 0, 1, 1)
	assert.Equal(t, 0.25, r.Ops[0].Opacity)
	assert.Equal(t, 1.0, r.Ops[1].Opacity)

	failed := errors.New("failed")
	assert.Equal(t, failed, r.Transparent(0.3, func() error { return failed }))
	r.FillRect(0, 0, 1, 1)
	assert.Equal(t, 1.0, r.Ops[2].Opacity)
}

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(40, 40, white)
	r.SetFillColor(red)
	r.FillRect(10, 10, 20, 20)

	c := r.Image.RGBAAt(20, 20)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, r.Image.RGBAAt(5, 5))
}

func TestRasterTransparentBlends(t *testing.T) {
	r := NewRaster(20, 20, white)
	r.SetFillColor(red)
	_ = r.Transparent(0.5, func() error {
		r.FillRect(0, 0, 20, 20)
		return nil
	})
	c := r.Image.RGBAAt(10, 10)
	assert.Equal(t, uint8(255), c.R)
	assert.InDelta(t, 128, int(c.G), 2)
}

func TestRasterDrawsEverything(t *testing.T) {
	r := NewRaster(50, 50, white)
	assert.NotPanics(t, func() { drawAll(r) })
}

func TestGioSurfaceDrawsEverything(t *testing.T) {
	var ops op.Ops
	g := NewGioSurface(&ops, nil)
	assert.NotPanics(t, func() {
		drawAll(g)
		_ = g.Transparent(0.5, func() error {
			g.FillRect(0, 0, 1, 1)
			return nil
		})
	})
}

func TestMarksDisabledDrawsNothing(t *testing.T) {
	r := NewRecorder()
	m := Marks{Surface: r}
	m.Text(Pt(1, 1), "x")
	m.Crop(0, 0, 10, 10)
	m.Centroid(Pt(5, 5))
	m.Axis(0, 0, 10, 10)
	m.Grid(0, 0, 10, 10, 5)
	assert.Empty(t, r.Ops)

	m.Enabled = true
	m.Crop(0, 0, 10, 10)
	assert.Len(t, r.Filter(OpStrokeLine), 8)
	m.Centroid(Pt(5, 5))
	assert.Len(t, r.Filter(OpStrokeArc), 1)
	m.Text(Pt(1, 1), "x")
	assert.Equal(t, "x", r.Filter(OpText)[0].Text)
}
