// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"math"

	"github.com/mystichacker/prawn-charts/surface"
)

// AreaLayer fills the area between the line of the series and the zero line.
type AreaLayer struct {
	Base
}

func NewAreaLayer(spec Spec) (Layer, error) {
	return &AreaLayer{Base: NewBase(TypeArea, spec)}, nil
}

func (l *AreaLayer) Render(s surface.Surface, opts RenderOptions) error {
	return RenderStages(l, s, opts)
}

func (l *AreaLayer) GenerateCoordinates(f *Frame) ([]Coord, error) {
	return smoothedCoordinates(f, l.points), nil
}

func (l *AreaLayer) Draw(s surface.Surface, f *Frame, coords []Coord) error {
	if len(coords) == 0 {
		return nil
	}
	// The zero line, clamped into the frame.
	baseline := newProjection(f).getYpos(math.Max(f.MinValue, math.Min(0, f.MaxValue)))
	pts := make([]surface.Point, 0, len(coords)+2)
	pts = append(pts, surface.Pt(coords[0].X, baseline))
	pts = append(pts, coordPoints(coords)...)
	pts = append(pts, surface.Pt(coords[len(coords)-1].X, baseline))

	c := frameColor(f)
	err := f.fade(s, func() error {
		s.SetFillColor(c)
		s.FillPolygon(pts)
		return nil
	})
	if err != nil {
		return err
	}
	if outline, ok := f.Outline(); ok {
		s.SetStrokeColor(outline)
		s.SetLineWidth(f.StrokeWidth())
		s.StrokePolyline(coordPoints(coords))
	}
	return nil
}
