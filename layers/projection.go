// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import "github.com/mystichacker/prawn-charts/series"

type projection struct {
	mX float64
	mY float64
	bX float64
	bY float64
}

func newProjection(f *Frame) (proj projection) {
	// Projection f(v)=m*v+b
	// Every key gets an equally sized slot, points are in the middle of the slot.
	slots := f.MaxKey - f.MinKey + 1
	if slots <= 0 {
		slots = 1
	}
	proj.mX = f.Width / slots
	proj.bX = -proj.mX*f.MinKey + proj.mX/2
	// Y values are increasing from bottom to top.
	// A degenerate value domain puts all points onto the bottom line.
	if span := f.MaxValue - f.MinValue; span > 0 {
		proj.mY = -f.Height / span
	}
	proj.bY = f.Height - proj.mY*f.MinValue
	return
}

func (proj projection) getXpos(k float64) float64 {
	return proj.mX*k + proj.bX
}

func (proj projection) getYpos(v float64) float64 {
	return proj.mY*v + proj.bY
}

// projectSeries maps all valid points. Gaps produce no coordinate.
func projectSeries(f *Frame, s *series.PointSeries) []Coord {
	proj := newProjection(f)
	var coords []Coord
	s.Each(func(i int, p series.Point) {
		if p.Valid {
			coords = append(coords, Coord{Index: i, X: proj.getXpos(p.Key), Y: proj.getYpos(p.Value)})
		}
	})
	return coords
}
