// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"image/color"

	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/surface"
)

const shadowOpacity = 0.35

type LineLayer struct {
	Base
}

func NewLineLayer(spec Spec) (Layer, error) {
	return &LineLayer{Base: NewBase(TypeLine, spec)}, nil
}

func (l *LineLayer) Render(s surface.Surface, opts RenderOptions) error {
	return RenderStages(l, s, opts)
}

func (l *LineLayer) GenerateCoordinates(f *Frame) ([]Coord, error) {
	return smoothedCoordinates(f, l.points), nil
}

// smoothedCoordinates applies the smooth hint before projecting the series.
func smoothedCoordinates(f *Frame, points *series.PointSeries) []Coord {
	if periods := int(f.Hints.Float(HintSmooth, 0)); periods > 1 {
		points = points.Smooth(periods)
	}
	return projectSeries(f, points)
}

// frameColor returns the resolved color of the frame, or the next palette color.
func frameColor(f *Frame) color.NRGBA {
	if c, ok := f.Color(); ok {
		return c
	}
	return f.Theme.NextColor()
}

func (l *LineLayer) Draw(s surface.Surface, f *Frame, coords []Coord) error {
	if len(coords) == 0 {
		return nil
	}
	c := frameColor(f)
	width := f.StrokeWidth()
	pts := coordPoints(coords)

	if f.Hints.Bool(HintShadow) {
		shadow := make([]surface.Point, len(pts))
		for i, p := range pts {
			shadow[i] = p.Add(surface.Pt(1, 1))
		}
		err := s.Transparent(shadowOpacity, func() error {
			s.SetStrokeColor(f.Theme.Marker)
			s.SetLineWidth(width)
			s.StrokePolyline(shadow)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return f.fade(s, func() error {
		s.SetStrokeColor(c)
		s.SetLineWidth(width)
		s.StrokePolyline(pts)
		if f.Hints.Bool(HintDots) || f.Options.PointMarkers {
			marker := f.Hints.String(HintMarker, MarkerCircle)
			for _, p := range pts {
				drawMarker(s, marker, p, f.MarkerSize(), c)
			}
		}
		return nil
	})
}
