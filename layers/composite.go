// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"fmt"
	"math"

	"github.com/mystichacker/prawn-charts/charterr"
	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/surface"
	"github.com/mystichacker/prawn-charts/theme"
)

// composite is shared by the layers which own child layers instead of points.
type composite struct {
	Base
	Container
}

func newComposite(typ Type, spec Spec, defaultType Type) (composite, error) {
	if spec.Points.Len() > 0 && spec.Populate != nil {
		return composite{}, charterr.New(charterr.ErrCodeInvalidArgument, "%s layers cannot accept points and children at once", typ)
	}
	c := composite{Base: NewBase(typ, spec)}
	c.DefaultType = defaultType
	return c, nil
}

func (c *composite) populate(spec Spec) error {
	if spec.Populate == nil {
		return nil
	}
	return spec.Populate(&c.Container)
}

func (c *composite) SetPoints(*series.PointSeries) error {
	return charterr.New(charterr.ErrCodeInvalidArgument, "%s layers cannot accept points, only child layers", c.typ)
}

func (c *composite) childValue(get func(Layer) (float64, bool), pick func(a, b float64) float64) (float64, bool) {
	if !c.relevant {
		return 0, false
	}
	return foldPresent(c.layers, get, pick)
}

func (c *composite) TopValue() (float64, bool) {
	return c.childValue(Layer.TopValue, math.Max)
}

func (c *composite) BottomValue() (float64, bool) {
	return c.childValue(Layer.BottomValue, math.Min)
}

func (c *composite) TopKey() (float64, bool) {
	return c.childValue(Layer.TopKey, math.Max)
}

func (c *composite) BottomKey() (float64, bool) {
	return c.childValue(Layer.BottomKey, math.Min)
}

func (c *composite) SumValues() float64 {
	values := make([]float64, len(c.layers))
	for i, layer := range c.layers {
		values[i] = layer.SumValues()
	}
	return series.Sum(values)
}

// LegendData returns the entries of all children.
func (c *composite) LegendData() []LegendEntry {
	if !c.relevant {
		return nil
	}
	return collectLegend(c.layers)
}

// childColor resolves the color passed to a child: its preferred color, else
// the color of its previous render, else the next palette color.
func childColor(child Layer, th *theme.Theme) theme.ColorSpec {
	if c := child.PreferredColor(); c.IsSet() {
		return c
	}
	if c, ok := child.Color(); ok {
		return theme.Single(c)
	}
	return theme.Single(th.NextColor())
}

func renderChild(child Layer, s surface.Surface, opts RenderOptions) error {
	if err := child.Render(s, opts); err != nil {
		return fmt.Errorf("layer %q: %w", child.Title(), err)
	}
	return nil
}

func withTheme(opts RenderOptions) RenderOptions {
	if opts.Theme == nil {
		opts.Theme = theme.NewDefaultTheme()
	}
	return opts
}
