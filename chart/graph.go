// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package chart contains the root of a layer tree.
package chart

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"

	"github.com/mystichacker/prawn-charts/config"
	"github.com/mystichacker/prawn-charts/layers"
	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/surface"
	"github.com/mystichacker/prawn-charts/theme"
)

// Number of grid cells along the shorter side when marks are drawn.
const gridDivisions = 10

// Graph is the top level layer container of a chart.
// Like the layers it holds, a Graph is not safe for concurrent use.
type Graph struct {
	layers.Container
	Title          string
	Theme          *theme.Theme
	ValueFormatter func(float64) string
	KeyFormatter   func(float64) string
	PointMarkers   bool
	// Draw diagnostic marks.
	Marks bool
	// Size used by RenderDefault.
	Width  float64
	Height float64

	logger    *log.Logger
	config    config.ChartConfig
	hasConfig bool
	domain    Domain
}

func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func New() *Graph {
	return &Graph{
		Theme:          theme.NewDefaultTheme(),
		ValueFormatter: FormatNumber,
		KeyFormatter:   FormatNumber,
		Width:          config.DefaultWidth,
		Height:         config.DefaultHeight,
		logger:         log.Default(),
	}
}

// NewFromConfig creates a graph and builds its layers from c.
func NewFromConfig(c config.ChartConfig, logger *log.Logger) (*Graph, error) {
	g := New()
	if logger != nil {
		g.SetLogger(logger)
	}
	if _, err := g.Apply(c); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// Apply rebuilds the graph from c. Nothing is changed if c equals the
// configuration applied before, in this case false is returned.
// On error, the previous layers are kept.
func (g *Graph) Apply(c config.ChartConfig) (bool, error) {
	c.Sanitize()
	if g.hasConfig && config.Equal(g.config, c) {
		return false, nil
	}
	th, err := c.Theme.Resolve()
	if err != nil {
		return false, err
	}
	prev := g.Container
	g.Container = layers.Container{DefaultType: layers.Type(c.DefaultType)}
	for i := range c.Layers {
		if err := g.addLayerConfig(&g.Container, &c.Layers[i]); err != nil {
			g.Container = prev
			return false, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	g.Title = c.Title
	g.Theme = th
	g.Marks = c.Marks
	g.PointMarkers = c.PointMarkers
	g.Width, g.Height = c.Size.Width, c.Size.Height
	g.config = c.DeepCopy()
	g.hasConfig = true
	return true, nil
}

func (g *Graph) addLayerConfig(c *layers.Container, lc *config.LayerConfig) error {
	points, err := lc.Series()
	if err != nil {
		return err
	}
	color, err := theme.ParseColorSpec(lc.Color)
	if err != nil {
		return err
	}
	outline, err := theme.ParseColorSpec(lc.Outline)
	if err != nil {
		return err
	}
	spec := layers.Spec{
		Type:       layers.Type(lc.Type),
		Title:      lc.Title,
		Points:     points,
		Titles:     lc.Titles,
		Color:      color,
		Outline:    outline,
		Hints:      layers.ParseHints(lc.Hints, g.logger),
		Irrelevant: lc.Irrelevant,
	}
	if len(lc.Children) > 0 {
		children := lc.Children
		spec.Populate = func(child *layers.Container) error {
			for i := range children {
				if err := g.addLayerConfig(child, &children[i]); err != nil {
					return err
				}
			}
			return nil
		}
	}
	_, err = c.AddSpec(spec)
	return err
}

// Domain is the data window which is mapped onto the surface.
type Domain struct {
	MinValue float64
	MaxValue float64
	MinKey   float64
	MaxKey   float64
}

func (g *Graph) computeDomain() Domain {
	d := Domain{
		MinValue: g.BottomValue(layers.Padded),
		MaxValue: g.TopValue(layers.Padded),
		MinKey:   g.BottomKey(layers.Unpadded),
		MaxKey:   g.TopKey(layers.Unpadded),
	}
	if d.MaxValue-d.MinValue < series.NearZero {
		g.logger.Warnf("Value domain [%v, %v] is empty, widening it by 1.", d.MinValue, d.MaxValue)
		d.MaxValue = d.MinValue + 1
	}
	return d
}

// Domain returns the domain of the last render.
func (g *Graph) Domain() Domain {
	return g.domain
}

// Render draws all layers in insertion order onto s.
func (g *Graph) Render(s surface.Surface, width, height float64) error {
	d := g.computeDomain()
	g.Theme.ResetColor()
	g.Theme.ResetOutline()
	opts := layers.RenderOptions{
		Width:        width,
		Height:       height,
		MinValue:     d.MinValue,
		MaxValue:     d.MaxValue,
		MinKey:       d.MinKey,
		MaxKey:       d.MaxKey,
		Theme:        g.Theme,
		Diagnostics:  g.Marks,
		PointMarkers: g.PointMarkers,
	}
	marks := surface.Marks{Surface: s, Enabled: g.Marks, Color: g.Theme.Marker}
	marks.Crop(0, 0, width, height)
	marks.Axis(0, 0, width, height)
	marks.Grid(0, 0, width, height, math.Min(width, height)/gridDivisions)

	for _, l := range g.Layers() {
		g.logger.Debug("Rendering layer", "type", l.Type(), "title", l.Title(), "points", l.Points().Len())
		layerOpts := opts
		if c := l.PreferredColor(); c.IsSet() {
			layerOpts.Color = c
		} else {
			layerOpts.Color = theme.Single(g.Theme.NextColor())
		}
		if err := l.Render(s, layerOpts); err != nil {
			return fmt.Errorf("layer %q: %w", l.Title(), err)
		}
	}
	g.domain = d
	return nil
}

// RenderDefault renders at the configured size.
func (g *Graph) RenderDefault(s surface.Surface) error {
	return g.Render(s, g.Width, g.Height)
}

// Legend collects the legend entries of all layers. Layers appear only
// after they have been rendered.
func (g *Graph) Legend() []layers.LegendEntry {
	var entries []layers.LegendEntry
	for _, l := range g.Layers() {
		entries = append(entries, l.LegendData()...)
	}
	return entries
}

// ValueLabels returns n evenly spaced labels of the last rendered value domain,
// from the bottom to the top.
func (g *Graph) ValueLabels(n int) []string {
	if n < 2 {
		return nil
	}
	labels := make([]string, n)
	step := (g.domain.MaxValue - g.domain.MinValue) / float64(n-1)
	for i := range labels {
		labels[i] = g.ValueFormatter(g.domain.MinValue + step*float64(i))
	}
	return labels
}

// KeyLabels returns one label per distinct key of the relevant layers, within
// the last rendered key domain, in ascending order.
func (g *Graph) KeyLabels() []string {
	set := make(map[float64]bool)
	collectKeys(g.Layers(), g.domain, set)
	keys := maps.Keys(set)
	sort.Float64s(keys)
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = g.KeyFormatter(k)
	}
	return labels
}

func collectKeys(l []layers.Layer, d Domain, set map[float64]bool) {
	for _, layer := range l {
		if !layer.RelevantData() {
			continue
		}
		// Composite layers keep their data in child layers.
		if src, ok := layer.(layers.LayerSource); ok {
			collectKeys(src.Layers(), d, set)
		}
		for _, k := range layer.Points().Keys() {
			if k >= d.MinKey && k <= d.MaxKey {
				set[k] = true
			}
		}
	}
}
