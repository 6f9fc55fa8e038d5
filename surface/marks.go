// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"image/color"
	"math"
)

const (
	markSize     = 5
	markTextSize = 8
)

// Marks draws diagnostic overlays which help when positioning layers.
// Every method is a no-op unless Enabled is set.
type Marks struct {
	Surface Surface
	Enabled bool
	Color   color.NRGBA
}

func (m Marks) prepare() bool {
	if !m.Enabled || m.Surface == nil {
		return false
	}
	m.Surface.SetStrokeColor(m.Color)
	m.Surface.SetFillColor(m.Color)
	m.Surface.SetLineWidth(0.5)
	return true
}

func (m Marks) cross(c Point) {
	m.Surface.StrokeLine(Pt(c.X-markSize, c.Y), Pt(c.X+markSize, c.Y))
	m.Surface.StrokeLine(Pt(c.X, c.Y-markSize), Pt(c.X, c.Y+markSize))
}

// Text marks a point and labels it.
func (m Marks) Text(at Point, s string) {
	if !m.prepare() {
		return
	}
	m.cross(at)
	m.Surface.DrawText(at.Add(Pt(markSize, -markSize)), markTextSize, s)
}

// Crop marks the corners of a rectangle.
func (m Marks) Crop(x, y, w, h float64) {
	if !m.prepare() {
		return
	}
	for _, c := range RectPoints(x, y, w, h) {
		m.cross(c)
	}
}

// Centroid marks the center of a shape.
func (m Marks) Centroid(c Point) {
	if !m.prepare() {
		return
	}
	m.cross(c)
	m.Surface.StrokeArc(c, markSize/2, 0, 360)
}

// Axis draws the left and bottom edge of a rectangle.
func (m Marks) Axis(x, y, w, h float64) {
	if !m.prepare() {
		return
	}
	m.Surface.StrokePolyline([]Point{{X: x, Y: y}, {X: x, Y: y + h}, {X: x + w, Y: y + h}})
}

// Grid draws lines at a fixed spacing inside a rectangle.
func (m Marks) Grid(x, y, w, h, step float64) {
	if step <= 0 || !m.prepare() {
		return
	}
	for i := 0.0; i <= math.Floor(w/step); i++ {
		m.Surface.StrokeLine(Pt(x+i*step, y), Pt(x+i*step, y+h))
	}
	for i := 0.0; i <= math.Floor(h/step); i++ {
		m.Surface.StrokeLine(Pt(x, y+i*step), Pt(x+w, y+i*step))
	}
}
