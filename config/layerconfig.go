// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"

	"github.com/mystichacker/prawn-charts/series"
)

// LayerConfig describes a single layer. Composite layers list their children.
type LayerConfig struct {
	Type  string `yaml:"type,omitempty"`
	Title string `yaml:"title,omitempty"`
	// Null entries are gaps.
	Points []*float64 `yaml:"points,omitempty"`
	// Optional explicit keys, one per point. Keys default to the point index.
	Keys       []float64         `yaml:"keys,omitempty"`
	Titles     []string          `yaml:"titles,omitempty"`
	Color      []string          `yaml:"color,omitempty"`
	Outline    []string          `yaml:"outline,omitempty"`
	Hints      map[string]string `yaml:"hints,omitempty"`
	Irrelevant bool              `yaml:"irrelevant,omitempty"`
	Children   []LayerConfig     `yaml:"children,omitempty"`
}

func (l *LayerConfig) Series() (*series.PointSeries, error) {
	if len(l.Keys) == 0 {
		return series.FromNullable(l.Points), nil
	}
	if len(l.Keys) != len(l.Points) {
		return nil, fmt.Errorf("layer %q has %d keys for %d points", l.Title, len(l.Keys), len(l.Points))
	}
	s := series.New()
	for i, v := range l.Points {
		p := series.Point{Key: l.Keys[i]}
		if v != nil {
			p.Value, p.Valid = *v, true
		}
		s.Append(p)
	}
	return s, nil
}
