// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"image/color"

	"github.com/mystichacker/prawn-charts/surface"
)

const (
	MarkerCircle  = "circle"
	MarkerSquare  = "square"
	MarkerDiamond = "diamond"
	MarkerNone    = "none"
)

func drawMarker(s surface.Surface, kind string, at surface.Point, size float64, c color.NRGBA) {
	s.SetFillColor(c)
	switch kind {
	case MarkerSquare:
		s.FillRect(at.X-size, at.Y-size, 2*size, 2*size)
	case MarkerDiamond:
		s.FillPolygon([]surface.Point{
			{X: at.X, Y: at.Y - size},
			{X: at.X + size, Y: at.Y},
			{X: at.X, Y: at.Y + size},
			{X: at.X - size, Y: at.Y},
		})
	case MarkerNone:
	default:
		s.FillSlice(at, size, 0, 360)
	}
}
