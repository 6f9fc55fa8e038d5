// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package series contains the data points rendered by chart layers.
package series

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/cinar/indicator"
	"golang.org/x/exp/maps"

	"github.com/mystichacker/prawn-charts/charterr"
)

// Point is a single data point. Points which are not Valid represent a gap in the series.
type Point struct {
	Key   float64
	Label string
	Value float64
	Valid bool
}

// PointSeries is an ordered sequence of points.
// The read-only queries (Len, Each, Values, Keys, the bounds, Sum and Smooth)
// treat a nil *PointSeries as an empty series. At, Append and Replace need a
// series created by New or one of the From functions.
type PointSeries struct {
	points []Point
}

func New(points ...Point) *PointSeries {
	return &PointSeries{points: append([]Point(nil), points...)}
}

// FromValues creates a series keyed by index.
func FromValues(values []float64) *PointSeries {
	s := &PointSeries{points: make([]Point, len(values))}
	for i, v := range values {
		s.points[i] = Point{Key: float64(i), Value: v, Valid: true}
	}
	return s
}

// FromNullable creates a series keyed by index, nil entries become gaps.
func FromNullable(values []*float64) *PointSeries {
	s := &PointSeries{points: make([]Point, len(values))}
	for i, v := range values {
		s.points[i] = Point{Key: float64(i)}
		if v != nil {
			s.points[i].Value = *v
			s.points[i].Valid = true
		}
	}
	return s
}

// FromMap creates a labelled series. Labels are sorted so that the order is stable.
func FromMap(m map[string]float64) *PointSeries {
	labels := maps.Keys(m)
	sort.Strings(labels)
	s := &PointSeries{points: make([]Point, len(labels))}
	for i, label := range labels {
		s.points[i] = Point{Key: float64(i), Label: label, Value: m[label], Valid: true}
	}
	return s
}

// FromPairs creates a series with explicit keys.
func FromPairs(keys, values []float64) (*PointSeries, error) {
	if len(keys) != len(values) {
		return nil, charterr.New(charterr.ErrCodeInvalidArgument, "%d keys for %d values", len(keys), len(values))
	}
	s := &PointSeries{points: make([]Point, len(keys))}
	for i := range keys {
		s.points[i] = Point{Key: keys[i], Value: values[i], Valid: true}
	}
	return s, nil
}

func (s *PointSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

func (s *PointSeries) At(i int) Point {
	return s.points[i]
}

func (s *PointSeries) Append(p Point) {
	s.points = append(s.points, p)
}

// Replace swaps all points of the series.
func (s *PointSeries) Replace(points []Point) {
	s.points = append(s.points[:0], points...)
}

func (s *PointSeries) Each(fn func(i int, p Point)) {
	if s == nil {
		return
	}
	for i, p := range s.points {
		fn(i, p)
	}
}

// Values returns the values of all valid points.
func (s *PointSeries) Values() []float64 {
	var values []float64
	s.Each(func(_ int, p Point) {
		if p.Valid {
			values = append(values, p.Value)
		}
	})
	return values
}

// Keys returns the keys of all valid points.
func (s *PointSeries) Keys() []float64 {
	var keys []float64
	s.Each(func(_ int, p Point) {
		if p.Valid {
			keys = append(keys, p.Key)
		}
	})
	return keys
}

// ValueBounds returns the smallest and largest valid value.
// ok is false if there is no valid point.
func (s *PointSeries) ValueBounds() (min, max float64, ok bool) {
	values := s.Values()
	if len(values) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(values)
	return min, max, true
}

// KeyBounds returns the smallest and largest key of the valid points.
func (s *PointSeries) KeyBounds() (min, max float64, ok bool) {
	keys := s.Keys()
	if len(keys) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(keys)
	return min, max, true
}

func (s *PointSeries) Sum() float64 {
	return Sum(s.Values())
}

// Smooth returns a copy of the series where each valid value is replaced by the
// simple moving average over the given number of valid values. Gaps are kept.
func (s *PointSeries) Smooth(periods int) *PointSeries {
	out := &PointSeries{points: make([]Point, s.Len())}
	if s.Len() == 0 {
		return out
	}
	copy(out.points, s.points)
	if periods <= 1 {
		return out
	}
	sma := indicator.Sma(periods, s.Values())
	j := 0
	for i := range out.points {
		if out.points[i].Valid {
			out.points[i].Value = sma[j]
			j++
		}
	}
	return out
}
