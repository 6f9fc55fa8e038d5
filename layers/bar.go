// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"fmt"
	"image/color"

	"github.com/mystichacker/prawn-charts/surface"
	"github.com/mystichacker/prawn-charts/theme"
)

// BarLayer draws one horizontal bar per point, starting at the zero line.
// Bars are stacked from top to bottom in series order.
type BarLayer struct {
	Base
}

func NewBarLayer(spec Spec) (Layer, error) {
	return &BarLayer{Base: NewBase(TypeBar, spec)}, nil
}

func (l *BarLayer) Render(s surface.Surface, opts RenderOptions) error {
	return RenderStages(l, s, opts)
}

// GenerateCoordinates computes the bar slots. X is the outer end of the bar,
// Y the upper edge. Within a multi layer, the slot is split between the children.
func (l *BarLayer) GenerateCoordinates(f *Frame) ([]Coord, error) {
	n := l.points.Len()
	if n == 0 {
		return nil, nil
	}
	slot := f.Height / float64(n)
	gap := f.Relative(f.Explode())
	band := slot - gap
	if band < 0 {
		band = 0
	}
	offset := 0.0
	if count := f.Options.Count; count > 1 {
		band /= float64(count)
		offset = band * float64(f.Options.Position)
	}
	f.Band = band

	span := f.MaxValue - f.MinValue
	var coords []Coord
	for i := 0; i < n; i++ {
		p := l.points.At(i)
		if !p.Valid {
			continue
		}
		x := 0.0
		if span > 0 {
			x = f.Width * (p.Value - f.MinValue) / span
		}
		coords = append(coords, Coord{Index: i, X: x, Y: slot*float64(i) + gap/2 + offset})
	}
	return coords, nil
}

// barScale maps values onto bar lengths. Positive and negative values use
// separate factors, so that all bars end at the shared zero line.
type barScale struct {
	zeroX    float64
	posScale float64
	negScale float64
}

func newBarScale(f *Frame) barScale {
	var sc barScale
	span := f.MaxValue - f.MinValue
	if span <= 0 {
		return sc
	}
	maxV, minV := f.MaxValue, f.MinValue
	if maxV < 0 {
		maxV = 0
	}
	if minV > 0 {
		minV = 0
	}
	// Width of the positive and negative area.
	posWidth := maxV * f.Width / span
	negWidth := minV * f.Width / span
	sc.zeroX = -negWidth
	if maxV > 0 {
		sc.posScale = posWidth / maxV
	}
	if minV < 0 {
		sc.negScale = negWidth / minV
	}
	return sc
}

func (sc barScale) length(v float64) float64 {
	if v > 0 {
		return v * sc.posScale
	}
	return v * sc.negScale
}

func (l *BarLayer) Draw(s surface.Surface, f *Frame, coords []Coord) error {
	// The palette cursor restarts on every draw, so that renders are repeatable.
	palette := f.Theme.Clone()
	palette.ResetColor()
	palette.ResetOutline()
	var border color.NRGBA
	drawBorder := f.Hints.Bool(HintBorder)
	if drawBorder {
		if c, ok := f.Outline(); ok {
			border = c
		} else {
			border = palette.NextOutline()
		}
	}
	marks := f.Marks(s)
	sc := newBarScale(f)

	colors := make([]color.NRGBA, len(coords))
	err := f.fade(s, func() error {
		for i, c := range coords {
			colors[i] = l.pointColor(palette, c.Index)
			v := l.points.At(c.Index).Value
			x, w := sc.zeroX, sc.length(v)
			if w < 0 {
				x, w = x+w, -w
			}
			s.SetFillColor(colors[i])
			s.FillRect(x, c.Y, w, f.Band)
			if drawBorder {
				s.SetStrokeColor(border)
				s.StrokeRect(x, c.Y, w, f.Band)
			}
			marks.Crop(x, c.Y, w, f.Band)
			marks.Centroid(surface.Pt(x+w/2, c.Y+f.Band/2))
			marks.Text(surface.Pt(x, c.Y), fmt.Sprintf("bar %d", c.Index))
		}
		return nil
	})
	if err != nil {
		return err
	}

	marker := f.Hints.String(HintMarker, "")
	if marker == "" && f.Options.PointMarkers {
		marker = MarkerCircle
	}
	if marker == "" || marker == MarkerNone {
		return nil
	}
	size := f.MarkerSize()
	for i, c := range coords {
		v := l.points.At(c.Index).Value
		drawMarker(s, marker, surface.Pt(sc.zeroX+sc.length(v), c.Y+f.Band/2), size, colors[i])
	}
	return nil
}

// pointColor prefers the preferred colors of the layer, indexed by point,
// over the palette. The caller color only names the layer in legends.
func (l *BarLayer) pointColor(palette *theme.Theme, i int) color.NRGBA {
	if l.preferredColor.IsSet() {
		return l.preferredColor.At(i)
	}
	return palette.NextColor()
}

// LegendData returns one entry per bar title, if titles are set.
func (l *BarLayer) LegendData() []LegendEntry {
	if len(l.titles) == 0 {
		return l.Base.LegendData()
	}
	if !l.relevant || !l.hasColor {
		return nil
	}
	entries := make([]LegendEntry, len(l.titles))
	for i, title := range l.titles {
		c := l.color
		if l.preferredColor.IsSet() {
			c = l.preferredColor.At(i)
		}
		entries[i] = LegendEntry{Title: title, Color: c, Priority: PriorityNormal}
	}
	return entries
}
