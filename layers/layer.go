// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package layers contains the chart layer object model: data series layers,
// the containers which aggregate them, and the composite layers which
// distribute render options to their children.
//
// Layers are not safe for concurrent use. A render records the resolved color
// on the layer, which legends and composite parents read afterwards.
// Rendering disjoint layer trees concurrently is fine.
package layers

import (
	"image/color"

	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/surface"
	"github.com/mystichacker/prawn-charts/theme"
)

type Type string

const (
	TypeBar      Type = "bar"
	TypeLine     Type = "line"
	TypeArea     Type = "area"
	TypeAverage  Type = "average"
	TypeMulti    Type = "multi"
	TypePie      Type = "pie"
	TypePieSlice Type = "pie_slice"
)

type Layer interface {
	Type() Type
	Title() string
	Points() *series.PointSeries
	// SetPoints replaces the data of the layer. Composite layers reject this.
	SetPoints(p *series.PointSeries) error
	RelevantData() bool
	PreferredColor() theme.ColorSpec
	// Color returns the color resolved during the last render.
	Color() (color.NRGBA, bool)
	Hints() Hints
	// The aggregates return false if the layer has no data or is not relevant.
	TopValue() (float64, bool)
	BottomValue() (float64, bool)
	TopKey() (float64, bool)
	BottomKey() (float64, bool)
	SumValues() float64
	// LegendData returns nil if the layer should not appear in a legend.
	LegendData() []LegendEntry
	Render(s surface.Surface, opts RenderOptions) error
}

// Stages are the three steps of a render, see RenderStages.
type Stages interface {
	SetupFrame(opts RenderOptions) *Frame
	GenerateCoordinates(f *Frame) ([]Coord, error)
	Draw(s surface.Surface, f *Frame, coords []Coord) error
}

// RenderStages runs setup, coordinate generation and drawing, in this order.
func RenderStages(st Stages, s surface.Surface, opts RenderOptions) error {
	f := st.SetupFrame(opts)
	coords, err := st.GenerateCoordinates(f)
	if err != nil {
		return err
	}
	return st.Draw(s, f, coords)
}

// Coord is the pixel position of the point at Index of a series.
type Coord struct {
	Index int
	X     float64
	Y     float64
}

func (c Coord) Point() surface.Point {
	return surface.Pt(c.X, c.Y)
}

func coordPoints(coords []Coord) []surface.Point {
	pts := make([]surface.Point, len(coords))
	for i, c := range coords {
		pts[i] = c.Point()
	}
	return pts
}

// LayerSource provides the sibling layers of a derived layer.
type LayerSource interface {
	Layers() []Layer
}
