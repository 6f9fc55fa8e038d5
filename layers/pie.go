// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/surface"
)

// PieLayer holds pie slices. Slices are created from the points of the spec,
// unless the spec populates the pie itself.
type PieLayer struct {
	composite
}

func NewPieLayer(spec Spec) (Layer, error) {
	c, err := newComposite(TypePie, spec, TypePieSlice)
	if err != nil {
		return nil, err
	}
	p := &PieLayer{composite: c}
	if spec.Populate != nil {
		if err := p.populate(spec); err != nil {
			return nil, err
		}
	} else if err := p.addSlices(spec); err != nil {
		return nil, err
	}
	// Slices own the data.
	p.points = series.New()
	return p, nil
}

// addSlices creates one slice per point. Slice titles are taken from the spec
// titles, else from the point labels.
func (p *PieLayer) addSlices(spec Spec) error {
	for i := 0; i < spec.Points.Len(); i++ {
		pt := spec.Points.At(i)
		title := pt.Label
		if i < len(spec.Titles) {
			title = spec.Titles[i]
		}
		_, err := p.AddSpec(Spec{
			Type:   TypePieSlice,
			Title:  title,
			Points: series.New(series.Point{Value: pt.Value, Valid: pt.Valid}),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Render hands out consecutive parts of 100 percent to the slices.
func (p *PieLayer) Render(s surface.Surface, opts RenderOptions) error {
	opts = withTheme(opts)
	p.SetupFrame(opts)
	scaler := 0.0
	if total := p.SumValues(); total != 0 {
		scaler = 100 / total
	}
	opts.Theme.ResetColor()
	percentUsed := 0.0
	for _, child := range p.layers {
		childOpts := opts
		childOpts.Hints = opts.Hints.Merge(p.hints)
		childOpts.Scaler = scaler
		childOpts.PercentUsed = percentUsed
		percentUsed += scaler * child.SumValues()
		childOpts.Color = childColor(child, opts.Theme)
		if err := renderChild(child, s, childOpts); err != nil {
			return err
		}
	}
	return nil
}
