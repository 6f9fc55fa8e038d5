// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/theme"
)

// Spec describes a layer to be created by a registered constructor.
type Spec struct {
	Type   Type
	Title  string
	Points *series.PointSeries
	// Per point titles, used by pie layers to name slices and by bar legends.
	Titles  []string
	Color   theme.ColorSpec
	Outline theme.ColorSpec
	Hints   Hints
	// Excludes the layer from the aggregates of its container.
	Irrelevant bool
	// Siblings of derived layers. Set by the container if missing.
	Source LayerSource
	// Adds children to composite layers.
	Populate func(c *Container) error
}

// Option modifies a Spec, see Container.Add.
type Option func(s *Spec)

func WithColor(c theme.ColorSpec) Option {
	return func(s *Spec) {
		s.Color = c
	}
}

func WithOutline(c theme.ColorSpec) Option {
	return func(s *Spec) {
		s.Outline = c
	}
}

func WithTitles(titles ...string) Option {
	return func(s *Spec) {
		s.Titles = titles
	}
}

func WithHints(h Hints) Option {
	return func(s *Spec) {
		s.Hints = s.Hints.Merge(h)
	}
}

func WithSource(src LayerSource) Option {
	return func(s *Spec) {
		s.Source = src
	}
}

func WithPopulate(f func(c *Container) error) Option {
	return func(s *Spec) {
		s.Populate = f
	}
}

func Irrelevant() Option {
	return func(s *Spec) {
		s.Irrelevant = true
	}
}
