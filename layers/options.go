// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import "github.com/mystichacker/prawn-charts/theme"

// RenderOptions are passed down the layer tree on every render.
// Composite layers derive a copy per child.
type RenderOptions struct {
	Width  float64
	Height float64

	MinValue float64
	MaxValue float64
	MinKey   float64
	MaxKey   float64

	// If nil, a default theme is used.
	Theme *theme.Theme
	// Zero means fully opaque.
	Opacity    float64
	Complexity float64
	// Spacing between bars and offset of pie slices, in percent of the height.
	// A layer hint overrides it.
	Explode      float64
	Diagnostics  bool
	PointMarkers bool

	// Caller supplied colors, used if the layer has no preferred color.
	Color   theme.ColorSpec
	Outline theme.ColorSpec

	// Set by MultiLayer: number of children sharing a slot and position of the child.
	Count    int
	Position int

	// Set by PieLayer.
	Scaler      float64
	PercentUsed float64

	// Hints inherited from a composite parent. Layer hints take precedence.
	Hints Hints
}
