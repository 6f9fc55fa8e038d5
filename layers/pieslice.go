// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"math"

	"github.com/mystichacker/prawn-charts/surface"
)

const (
	degreesPerPercent    = 3.6
	defaultDiameter      = 80
	defaultShadowOpacity = 0.35
)

// PieSliceLayer draws a part of a pie. Its angles follow from the scaler and
// the percentage used by previous slices, both set by the parent PieLayer.
type PieSliceLayer struct {
	Base
}

func NewPieSliceLayer(spec Spec) (Layer, error) {
	return &PieSliceLayer{Base: NewBase(TypePieSlice, spec)}, nil
}

func (l *PieSliceLayer) Render(s surface.Surface, opts RenderOptions) error {
	return RenderStages(l, s, opts)
}

type sliceGeometry struct {
	center surface.Point
	radius float64
	start  float64
	sweep  float64
}

func (l *PieSliceLayer) geometry(f *Frame) sliceGeometry {
	var g sliceGeometry
	g.start = f.Hints.Float(HintOffsetAngle, 0) + f.Options.PercentUsed*degreesPerPercent
	g.sweep = f.Options.Scaler * l.SumValues() * degreesPerPercent
	g.radius = math.Min(f.Width, f.Height) / 2 * f.Hints.Float(HintDiameter, defaultDiameter) / 100
	g.center = surface.Pt(
		f.RelativeWidth(f.Hints.Float(HintCenterX, 50)),
		f.RelativeHeight(f.Hints.Float(HintCenterY, 50)),
	)
	// Exploded slices move outwards along their bisector.
	if explode := f.Explode(); explode > 0 {
		g.center = surface.PolarPoint(g.center, f.Relative(explode), g.start+g.sweep/2)
	}
	return g
}

// GenerateCoordinates returns the center of the slice.
func (l *PieSliceLayer) GenerateCoordinates(f *Frame) ([]Coord, error) {
	g := l.geometry(f)
	return []Coord{{X: g.center.X, Y: g.center.Y}}, nil
}

func (l *PieSliceLayer) Draw(s surface.Surface, f *Frame, coords []Coord) error {
	g := l.geometry(f)
	if g.sweep == 0 || g.radius <= 0 {
		return nil
	}
	if f.Hints.Bool(HintShadow) {
		offset := surface.Pt(f.Hints.Float(HintShadowX, 1), f.Hints.Float(HintShadowY, 1))
		err := s.Transparent(f.Hints.Float(HintShadowOpacity, defaultShadowOpacity), func() error {
			s.SetFillColor(f.Hints.Color(HintShadowColor, f.Theme.Marker))
			s.FillSlice(g.center.Add(offset), g.radius, g.start, g.sweep)
			return nil
		})
		if err != nil {
			return err
		}
	}
	c := frameColor(f)
	err := f.fade(s, func() error {
		s.SetFillColor(c)
		s.FillSlice(g.center, g.radius, g.start, g.sweep)
		return nil
	})
	if err != nil {
		return err
	}
	if f.Hints.Has(HintStroke) {
		s.SetStrokeColor(f.Hints.Color(HintStroke, c))
		s.SetLineWidth(f.StrokeWidth())
		s.StrokeSlice(g.center, g.radius, g.start, g.sweep)
	}
	f.Marks(s).Centroid(surface.PolarPoint(g.center, g.radius/2, g.start+g.sweep/2))
	return nil
}
