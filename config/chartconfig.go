// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"github.com/barkimedes/go-deepcopy"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// ChartConfig describes a chart and its layers.
type ChartConfig struct {
	Version      int           `yaml:"version,omitempty"`
	Title        string        `yaml:"title,omitempty"`
	Theme        ThemeConfig   `yaml:"theme,omitempty"`
	DefaultType  string        `yaml:"default_type,omitempty"`
	Size         SizeConfig    `yaml:"size,omitempty"`
	Marks        bool          `yaml:"marks,omitempty"`
	PointMarkers bool          `yaml:"point_markers,omitempty"`
	Layers       []LayerConfig `yaml:"layers,omitempty"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Returns a valid empty chart configuration.
func NewChartConfig() ChartConfig {
	c := ChartConfig{}
	c.Sanitize()
	return c
}

func (c *ChartConfig) Sanitize() {
	c.Version = configVersion
	c.Theme.sanitize()
	if c.Size.Width <= 0 {
		c.Size.Width = DefaultWidth
	}
	if c.Size.Height <= 0 {
		c.Size.Height = DefaultHeight
	}
}

func (c *ChartConfig) DeepCopy() ChartConfig {
	d, err := deepcopy.Anything(c)
	if err != nil {
		panic(err)
	}
	return *d.(*ChartConfig)
}

// Equal reports whether two configurations describe the same chart.
// Nil and empty lists are treated alike.
func Equal(a, b ChartConfig) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}
