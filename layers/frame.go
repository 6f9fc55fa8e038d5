// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"image/color"

	"github.com/mystichacker/prawn-charts/surface"
	"github.com/mystichacker/prawn-charts/theme"
)

// Frame is the state of a single render. It is created from scratch by
// SetupFrame and is never reused for another render.
type Frame struct {
	Options  RenderOptions
	Theme    *theme.Theme
	Hints    Hints
	Colors   theme.ColorSpec
	Outlines theme.ColorSpec

	Width    float64
	Height   float64
	MinValue float64
	MaxValue float64
	MinKey   float64
	MaxKey   float64

	Opacity    float64
	Complexity float64

	// Bar thickness, set by coordinate generation of bar layers.
	Band float64
}

func (f *Frame) Color() (color.NRGBA, bool) {
	return f.Colors.First()
}

func (f *Frame) Outline() (color.NRGBA, bool) {
	return f.Outlines.First()
}

// Relative converts a percentage into pixels, relative to the height.
func (f *Frame) Relative(pct float64) float64 {
	return f.RelativeHeight(pct)
}

func (f *Frame) RelativeWidth(pct float64) float64 {
	return f.Width * pct / 100
}

func (f *Frame) RelativeHeight(pct float64) float64 {
	return f.Height * pct / 100
}

// Explode returns the explode hint of the layer, falling back to the render option.
func (f *Frame) Explode() float64 {
	return f.Hints.Float(HintExplode, f.Options.Explode)
}

// StrokeWidth returns the line width in pixels.
func (f *Frame) StrokeWidth() float64 {
	w := f.Hints.Float(HintStrokeWidth, 1)
	if f.Hints.Bool(HintRelativeStroke) {
		return f.Relative(w)
	}
	return w
}

// MarkerSize returns the marker size in pixels.
func (f *Frame) MarkerSize() float64 {
	size := f.Hints.Float(HintMarkerSize, 2)
	if f.Hints.Bool(HintRelative) {
		return f.Relative(size)
	}
	return size
}

func (f *Frame) Marks(s surface.Surface) surface.Marks {
	return surface.Marks{Surface: s, Enabled: f.Options.Diagnostics, Color: f.Theme.Marker}
}

// fade runs draw at the frame opacity.
func (f *Frame) fade(s surface.Surface, draw func() error) error {
	if f.Opacity >= 1 {
		return draw()
	}
	return s.Transparent(f.Opacity, draw)
}
