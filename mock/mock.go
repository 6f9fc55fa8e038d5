// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/mystichacker/prawn-charts/config"
)

// NewLogger returns a debug level logger and a scanner reading its output line by line.
func NewLogger(t *testing.T) (*log.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	return log.NewWithOptions(w, log.Options{Level: log.DebugLevel}), bufio.NewScanner(r)
}

func value(v float64) *float64 {
	return &v
}

func values(l ...float64) []*float64 {
	p := make([]*float64, len(l))
	for i := range l {
		p[i] = value(l[i])
	}
	return p
}

// NewChartConfig returns a chart with two bar series and their average.
func NewChartConfig() config.ChartConfig {
	c := config.ChartConfig{
		Title:       "Quarterly sales",
		DefaultType: "bar",
		Layers: []config.LayerConfig{
			{Title: "North", Points: values(2, 4, 6)},
			{Title: "South", Points: values(4, 6, 8)},
			{Type: "average", Title: "Average"},
		},
	}
	c.Sanitize()
	return c
}

// NewPieConfig returns a chart with a single pie of three slices.
func NewPieConfig() config.ChartConfig {
	c := config.ChartConfig{
		Title: "Snack preference",
		Layers: []config.LayerConfig{
			{
				Type:   "pie",
				Hints:  map[string]string{"diameter": "60"},
				Points: values(90, 60, 30),
				Titles: []string{"Apples", "Oranges", "Tacos"},
			},
		},
	}
	c.Sanitize()
	return c
}
