// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/mystichacker/prawn-charts/charterr"
	"github.com/mystichacker/prawn-charts/surface"
)

const (
	averageOpacity = 0.5
	averageWidth   = 5
)

// AverageLayer draws the mean of its relevant siblings as a thick translucent line.
// It is never relevant itself, otherwise it would take part in the aggregates
// it is computed from.
type AverageLayer struct {
	Base
	source LayerSource
}

func NewAverageLayer(spec Spec) (Layer, error) {
	if spec.Source == nil {
		return nil, charterr.New(charterr.ErrCodeInvalidArgument, "average layer %q has no sibling layers", spec.Title)
	}
	spec.Irrelevant = true
	return &AverageLayer{Base: NewBase(TypeAverage, spec), source: spec.Source}, nil
}

func (l *AverageLayer) Render(s surface.Surface, opts RenderOptions) error {
	return RenderStages(l, s, opts)
}

func (l *AverageLayer) relevantSiblings() []Layer {
	var siblings []Layer
	for _, layer := range l.source.Layers() {
		if layer.RelevantData() {
			siblings = append(siblings, layer)
		}
	}
	return siblings
}

// GenerateCoordinates averages the siblings index by index. The first relevant
// sibling provides the keys. All relevant siblings need the same number of points.
// Gaps are left out of the mean, an index without any value is skipped.
func (l *AverageLayer) GenerateCoordinates(f *Frame) ([]Coord, error) {
	siblings := l.relevantSiblings()
	if len(siblings) == 0 {
		return nil, nil
	}
	template := siblings[0].Points()
	for _, sibling := range siblings[1:] {
		if n := sibling.Points().Len(); n != template.Len() {
			return nil, charterr.New(charterr.ErrCodeInvalidData,
				"cannot average %q with %d points and %q with %d points",
				siblings[0].Title(), template.Len(), sibling.Title(), n)
		}
	}
	proj := newProjection(f)
	var coords []Coord
	values := make([]float64, 0, len(siblings))
	for i := 0; i < template.Len(); i++ {
		values = values[:0]
		for _, sibling := range siblings {
			if p := sibling.Points().At(i); p.Valid {
				values = append(values, p.Value)
			}
		}
		if len(values) == 0 {
			continue
		}
		coords = append(coords, Coord{
			Index: i,
			X:     proj.getXpos(template.At(i).Key),
			Y:     proj.getYpos(stats.Mean(values)),
		})
	}
	return coords, nil
}

func (l *AverageLayer) Draw(s surface.Surface, f *Frame, coords []Coord) error {
	if len(coords) < 2 {
		return nil
	}
	outline, ok := f.Outline()
	if !ok {
		outline = f.Theme.NextOutline()
	}
	return s.Transparent(averageOpacity, func() error {
		s.SetStrokeColor(outline)
		s.SetLineWidth(f.Hints.Float(HintStrokeWidth, averageWidth))
		s.StrokePolyline(coordPoints(coords))
		return nil
	})
}
