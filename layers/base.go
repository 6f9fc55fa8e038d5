// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"image/color"

	"github.com/mystichacker/prawn-charts/charterr"
	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/surface"
	"github.com/mystichacker/prawn-charts/theme"
)

// Base implements everything of a Layer except drawing.
// Concrete layers embed Base, implement Draw and call RenderStages on
// themselves from Render. Base.Render reaches Base.Draw, which fails.
type Base struct {
	typ              Type
	title            string
	points           *series.PointSeries
	titles           []string
	relevant         bool
	preferredColor   theme.ColorSpec
	preferredOutline theme.ColorSpec
	hints            Hints

	// Record of the last render.
	color    color.NRGBA
	hasColor bool
}

func NewBase(typ Type, spec Spec) Base {
	points := spec.Points
	if points == nil {
		points = series.New()
	}
	return Base{
		typ:              typ,
		title:            spec.Title,
		points:           points,
		titles:           spec.Titles,
		relevant:         !spec.Irrelevant,
		preferredColor:   spec.Color,
		preferredOutline: spec.Outline,
		hints:            spec.Hints,
	}
}

func (b *Base) Type() Type {
	return b.typ
}

func (b *Base) Title() string {
	return b.title
}

func (b *Base) Titles() []string {
	return b.titles
}

func (b *Base) Points() *series.PointSeries {
	return b.points
}

func (b *Base) SetPoints(p *series.PointSeries) error {
	if p == nil {
		p = series.New()
	}
	b.points = p
	return nil
}

func (b *Base) RelevantData() bool {
	return b.relevant
}

func (b *Base) PreferredColor() theme.ColorSpec {
	return b.preferredColor
}

func (b *Base) PreferredOutline() theme.ColorSpec {
	return b.preferredOutline
}

func (b *Base) Color() (color.NRGBA, bool) {
	return b.color, b.hasColor
}

func (b *Base) Hints() Hints {
	return b.hints
}

func (b *Base) TopValue() (float64, bool) {
	if !b.relevant {
		return 0, false
	}
	_, max, ok := b.points.ValueBounds()
	return max, ok
}

func (b *Base) BottomValue() (float64, bool) {
	if !b.relevant {
		return 0, false
	}
	min, _, ok := b.points.ValueBounds()
	return min, ok
}

func (b *Base) TopKey() (float64, bool) {
	if !b.relevant {
		return 0, false
	}
	_, max, ok := b.points.KeyBounds()
	return max, ok
}

func (b *Base) BottomKey() (float64, bool) {
	if !b.relevant {
		return 0, false
	}
	min, _, ok := b.points.KeyBounds()
	return min, ok
}

func (b *Base) SumValues() float64 {
	return b.points.Sum()
}

// LegendData returns an entry only after the layer has been rendered with a color.
func (b *Base) LegendData() []LegendEntry {
	if !b.relevant || !b.hasColor {
		return nil
	}
	return []LegendEntry{{Title: b.title, Color: b.color, Priority: PriorityNormal}}
}

func (b *Base) Render(s surface.Surface, opts RenderOptions) error {
	return RenderStages(b, s, opts)
}

// SetupFrame resolves the state of a render: the preferred colors win over
// the caller supplied ones.
func (b *Base) SetupFrame(opts RenderOptions) *Frame {
	f := &Frame{
		Options:    opts,
		Theme:      opts.Theme,
		Hints:      opts.Hints.Merge(b.hints),
		Colors:     b.preferredColor,
		Outlines:   b.preferredOutline,
		Width:      opts.Width,
		Height:     opts.Height,
		MinValue:   opts.MinValue,
		MaxValue:   opts.MaxValue,
		MinKey:     opts.MinKey,
		MaxKey:     opts.MaxKey,
		Opacity:    opts.Opacity,
		Complexity: opts.Complexity,
	}
	if f.Theme == nil {
		f.Theme = theme.NewDefaultTheme()
	}
	if !f.Colors.IsSet() {
		f.Colors = opts.Color
	}
	if !f.Outlines.IsSet() {
		f.Outlines = opts.Outline
	}
	if f.Opacity <= 0 {
		f.Opacity = 1
	}
	b.color, b.hasColor = f.Color()
	return f
}

func (b *Base) GenerateCoordinates(f *Frame) ([]Coord, error) {
	return projectSeries(f, b.points), nil
}

func (b *Base) Draw(s surface.Surface, f *Frame, coords []Coord) error {
	return charterr.New(charterr.ErrCodeNotImplemented, "layer type %q does not implement Draw", b.typ)
}
