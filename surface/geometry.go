// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import "math"

const arcStepDegrees = 5

// PolarPoint returns the point at distance r from c in direction deg.
func PolarPoint(c Point, r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: c.X + r*math.Cos(rad), Y: c.Y - r*math.Sin(rad)}
}

// ArcPoints flattens an arc into a polyline.
func ArcPoints(c Point, r, start, sweep float64) []Point {
	if sweep > 360 {
		sweep = 360
	} else if sweep < -360 {
		sweep = -360
	}
	n := int(math.Ceil(math.Abs(sweep) / arcStepDegrees))
	if n < 2 {
		n = 2
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, PolarPoint(c, r, start+sweep*float64(i)/float64(n)))
	}
	return pts
}

// SlicePoints returns the closed outline of a pie slice.
// Full circles are returned without the center point.
func SlicePoints(c Point, r, start, sweep float64) []Point {
	arc := ArcPoints(c, r, start, sweep)
	if math.Abs(sweep) >= 360 {
		return arc
	}
	return append([]Point{c}, arc...)
}

func RectPoints(x, y, w, h float64) []Point {
	return []Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}

// closed appends the first point, so that a polyline is closed.
func closed(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := make([]Point, len(pts), len(pts)+1)
	copy(out, pts)
	return append(out, pts[0])
}

// segmentQuad returns the outline of a straight line segment of the given width.
func segmentQuad(a, b Point, width float64) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	return []Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
}
