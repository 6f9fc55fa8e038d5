// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package surface contains the drawing targets layers render onto.
//
// The origin is the top left corner, y grows downwards. Angles are given in
// degrees, 0 points to the right (3 o'clock) and positive angles turn
// counterclockwise on the page.
package surface

import "image/color"

type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Surface is a stateful 2D drawing target.
// Fill operations and text use the fill color, stroke operations use the
// stroke color and line width.
type Surface interface {
	SetFillColor(c color.NRGBA)
	SetStrokeColor(c color.NRGBA)
	SetLineWidth(w float64)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	StrokeLine(from, to Point)
	StrokePolyline(pts []Point)
	FillPolygon(pts []Point)
	// FillSlice fills a pie slice. A sweep of 360 or more fills a full circle.
	FillSlice(center Point, radius, start, sweep float64)
	StrokeSlice(center Point, radius, start, sweep float64)
	// StrokeArc strokes the open arc only, without the radii.
	StrokeArc(center Point, radius, start, sweep float64)
	// DrawText draws text with its baseline starting at the given point.
	DrawText(at Point, size float64, s string)
	// Transparent runs draw with all drawing operations faded by opacity in [0, 1].
	// Calls may be nested, opacities multiply.
	Transparent(opacity float64, draw func() error) error
}
