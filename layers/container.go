// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"math"

	"github.com/mystichacker/prawn-charts/charterr"
	"github.com/mystichacker/prawn-charts/series"
)

type Padding int

const (
	Unpadded Padding = iota
	// Padded extends the value range by 15% without crossing zero.
	Padded
)

const paddingRatio = 0.15

// Container owns an ordered list of layers. The order is the render order.
type Container struct {
	// Used by Add if no type is given.
	DefaultType Type
	layers      []Layer
}

func (c *Container) Layers() []Layer {
	return c.layers
}

func (c *Container) Len() int {
	return len(c.layers)
}

// AddLayer attaches an already constructed layer.
func (c *Container) AddLayer(l Layer) Layer {
	c.layers = append(c.layers, l)
	return l
}

// Add creates a layer from positional arguments and attaches it.
// A Layer as the only argument is attached directly. Otherwise the arguments
// are, each of them optional but in this order: a Type, a title string, the
// points ([]float64, []*float64, map[string]float64 or *series.PointSeries),
// followed by any number of Hints, map[string]string or Option values.
func (c *Container) Add(args ...any) (Layer, error) {
	if len(args) > 0 {
		if l, ok := args[0].(Layer); ok {
			if len(args) > 1 {
				return nil, charterr.New(charterr.ErrCodeInvalidArgument, "a layer must be added without further arguments")
			}
			return c.AddLayer(l), nil
		}
	}
	var spec Spec
	i := 0
	if i < len(args) {
		if t, ok := args[i].(Type); ok {
			spec.Type = t
			i++
		}
	}
	if i < len(args) {
		if title, ok := args[i].(string); ok {
			spec.Title = title
			i++
		}
	}
	if i < len(args) {
		if points, ok := toSeries(args[i]); ok {
			spec.Points = points
			i++
		}
	}
	for ; i < len(args); i++ {
		switch v := args[i].(type) {
		case Hints:
			spec.Hints = spec.Hints.Merge(v)
		case map[string]string:
			spec.Hints = spec.Hints.Merge(Hints(v))
		case Option:
			v(&spec)
		default:
			return nil, charterr.New(charterr.ErrCodeInvalidArgument, "unsupported argument %d of type %T", i, args[i])
		}
	}
	return c.AddSpec(spec)
}

func toSeries(v any) (*series.PointSeries, bool) {
	switch p := v.(type) {
	case []float64:
		return series.FromValues(p), true
	case []*float64:
		return series.FromNullable(p), true
	case map[string]float64:
		return series.FromMap(p), true
	case *series.PointSeries:
		return p, true
	}
	return nil, false
}

// AddSpec creates a layer through the registry and attaches it.
func (c *Container) AddSpec(spec Spec) (Layer, error) {
	if spec.Type == "" {
		spec.Type = c.DefaultType
	}
	if spec.Type == "" {
		return nil, charterr.New(charterr.ErrCodeInvalidArgument, "no layer type given and no default type set")
	}
	if spec.Source == nil {
		spec.Source = c
	}
	l, err := Create(spec)
	if err != nil {
		return nil, err
	}
	return c.AddLayer(l), nil
}

// fold combines the values of all layers which have one, starting at seed.
func fold(l []Layer, seed float64, get func(Layer) (float64, bool), pick func(a, b float64) float64) float64 {
	v := seed
	for _, layer := range l {
		if x, ok := get(layer); ok {
			v = pick(v, x)
		}
	}
	return v
}

// foldPresent is like fold, but starts at the first value found.
func foldPresent(l []Layer, get func(Layer) (float64, bool), pick func(a, b float64) float64) (float64, bool) {
	var v float64
	found := false
	for _, layer := range l {
		if x, ok := get(layer); ok {
			if found {
				v = pick(v, x)
			} else {
				v, found = x, true
			}
		}
	}
	return v, found
}

// TopValue returns the highest value of all relevant layers, but at least 0.
func (c *Container) TopValue(p Padding) float64 {
	top := fold(c.layers, 0, Layer.TopValue, math.Max)
	if p != Padded {
		return top
	}
	padded := top + (top-c.BottomValue(Unpadded))*paddingRatio
	// Padding alone must not turn a non-positive maximum positive.
	if top <= 0 && padded > 0 {
		return 0
	}
	return padded
}

// BottomValue returns the lowest value of all relevant layers, but at most 0.
func (c *Container) BottomValue(p Padding) float64 {
	bottom := fold(c.layers, 0, Layer.BottomValue, math.Min)
	if p != Padded {
		return bottom
	}
	padded := bottom - (c.TopValue(Unpadded)-bottom)*paddingRatio
	if bottom >= 0 && padded < 0 {
		return 0
	}
	return padded
}

// TopKey returns the highest key of all relevant layers, or 1 if there is none.
// Keys are never padded, the argument only mirrors TopValue.
func (c *Container) TopKey(_ Padding) float64 {
	if k, ok := foldPresent(c.layers, Layer.TopKey, math.Max); ok {
		return k
	}
	return 1
}

// BottomKey returns the lowest key of all relevant layers, or 0 if there is none.
func (c *Container) BottomKey(_ Padding) float64 {
	if k, ok := foldPresent(c.layers, Layer.BottomKey, math.Min); ok {
		return k
	}
	return 0
}
