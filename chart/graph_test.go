// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package chart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mystichacker/prawn-charts/charterr"
	"github.com/mystichacker/prawn-charts/config"
	"github.com/mystichacker/prawn-charts/layers"
	"github.com/mystichacker/prawn-charts/mock"
	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/surface"
	"github.com/mystichacker/prawn-charts/theme"
)

func TestRenderFromConfig(t *testing.T) {
	logger, scanner := mock.NewLogger(t)
	g, err := NewFromConfig(mock.NewChartConfig(), logger)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly sales", g.Title)
	require.Equal(t, 3, g.Len())
	assert.Empty(t, g.Legend())

	r := surface.NewRecorder()
	require.NoError(t, g.RenderDefault(r))

	d := g.Domain()
	assert.InDelta(t, 0.0, d.MinValue, 1e-9)
	assert.InDelta(t, 9.2, d.MaxValue, 1e-9)
	assert.Equal(t, 0.0, d.MinKey)
	assert.Equal(t, 2.0, d.MaxKey)

	legend := g.Legend()
	require.Len(t, legend, 2)
	th := theme.NewDefaultTheme()
	assert.Equal(t, layers.LegendEntry{Title: "North", Color: th.Colors[0], Priority: layers.PriorityNormal}, legend[0])
	assert.Equal(t, layers.LegendEntry{Title: "South", Color: th.Colors[1], Priority: layers.PriorityNormal}, legend[1])

	assert.Len(t, r.Filter(surface.OpFillRect), 6)
	assert.Len(t, r.Filter(surface.OpStrokePolyline), 1)

	for _, title := range []string{"North", "South", "Average"} {
		require.True(t, scanner.Scan())
		assert.Contains(t, scanner.Text(), "Rendering layer")
		assert.Contains(t, scanner.Text(), title)
	}
}

func TestApplyDetectsChanges(t *testing.T) {
	g, err := NewFromConfig(mock.NewChartConfig(), nil)
	require.NoError(t, err)

	changed, err := g.Apply(mock.NewChartConfig())
	require.NoError(t, err)
	assert.False(t, changed)

	c := mock.NewChartConfig()
	c.Title = "Yearly sales"
	c.Layers = c.Layers[:1]
	changed, err = g.Apply(c)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Yearly sales", g.Title)
	assert.Equal(t, 1, g.Len())
}

func TestApplyKeepsLayersOnError(t *testing.T) {
	g, err := NewFromConfig(mock.NewChartConfig(), nil)
	require.NoError(t, err)

	c := mock.NewChartConfig()
	c.Layers = append(c.Layers, config.LayerConfig{Type: "candlestick", Title: "Broken"})
	_, err = g.Apply(c)
	require.Error(t, err)
	assert.True(t, charterr.Is(err, charterr.ErrCodeInvalidArgument))
	assert.Contains(t, err.Error(), "layer 3")
	assert.Equal(t, 3, g.Len())

	// The average still sees the restored siblings.
	require.NoError(t, g.Render(surface.NewRecorder(), 300, 100))
}

func TestApplyRejectsInvalidColors(t *testing.T) {
	c := mock.NewChartConfig()
	c.Layers[0].Color = []string{"not a color"}
	_, err := NewFromConfig(c, nil)
	assert.Error(t, err)

	c = mock.NewChartConfig()
	c.Theme.Name = "sepia"
	_, err = NewFromConfig(c, nil)
	assert.Error(t, err)
}

func TestRenderNamesFailingLayer(t *testing.T) {
	c := mock.NewChartConfig()
	c.Layers[1].Points = c.Layers[1].Points[:2]
	g, err := NewFromConfig(c, nil)
	require.NoError(t, err)

	err = g.Render(surface.NewRecorder(), 300, 100)
	require.Error(t, err)
	assert.True(t, charterr.Is(err, charterr.ErrCodeInvalidData))
	assert.Contains(t, err.Error(), `layer "Average"`)
}

func TestEmptyDomainIsWidened(t *testing.T) {
	logger, scanner := mock.NewLogger(t)
	g := New()
	g.SetLogger(logger)

	require.NoError(t, g.Render(surface.NewRecorder(), 100, 100))
	assert.Equal(t, Domain{MinValue: 0, MaxValue: 1, MinKey: 0, MaxKey: 1}, g.Domain())
	require.True(t, scanner.Scan())
	assert.Contains(t, scanner.Text(), "widening")
}

func TestPieLegend(t *testing.T) {
	g, err := NewFromConfig(mock.NewPieConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, g.Render(surface.NewRecorder(), 200, 100))

	legend := g.Legend()
	require.Len(t, legend, 3)
	assert.Equal(t, "Apples", legend[0].Title)
	assert.Equal(t, "Oranges", legend[1].Title)
	assert.Equal(t, "Tacos", legend[2].Title)
}

func TestChildLayersFromConfig(t *testing.T) {
	c := config.NewChartConfig()
	c.Layers = []config.LayerConfig{{
		Type:  "multi",
		Title: "Regions",
		Children: []config.LayerConfig{
			{Title: "North", Points: []*float64{value(1), value(2)}},
			{Title: "South", Points: []*float64{value(3), nil}, Color: []string{"red"}},
		},
	}}
	g, err := NewFromConfig(c, nil)
	require.NoError(t, err)
	r := surface.NewRecorder()
	require.NoError(t, g.Render(r, 100, 100))

	assert.Len(t, r.Filter(surface.OpFillRect), 3)
	legend := g.Legend()
	require.Len(t, legend, 2)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, legend[1].Color)
	assert.InDelta(t, 3.45, g.Domain().MaxValue, 1e-9)
}

func TestLabels(t *testing.T) {
	g, err := NewFromConfig(mock.NewChartConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, g.Render(surface.NewRecorder(), 300, 100))
	labels := g.ValueLabels(3)
	require.Len(t, labels, 3)
	assert.Equal(t, "0", labels[0])
	assert.Equal(t, "9.2", labels[2])
	assert.Equal(t, []string{"0", "1", "2"}, g.KeyLabels())
	assert.Nil(t, g.ValueLabels(1))
}

func TestRasterRender(t *testing.T) {
	g, err := NewFromConfig(mock.NewChartConfig(), nil)
	require.NoError(t, err)

	th := theme.NewDefaultTheme()
	r := surface.NewRaster(400, 300, th.Background)
	require.NoError(t, g.RenderDefault(r))

	// Both bar layers restart the palette, the first bar of South covers North.
	first := th.Colors[0]
	assert.Equal(t, color.RGBA{R: first.R, G: first.G, B: first.B, A: 255}, r.Image.RGBAAt(10, 50))
	second := th.Colors[1]
	assert.Equal(t, color.RGBA{R: second.R, G: second.G, B: second.B, A: 255}, r.Image.RGBAAt(10, 150))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, r.Image.RGBAAt(390, 50))
}

func TestDiagnosticMarks(t *testing.T) {
	c := mock.NewChartConfig()
	c.Marks = true
	g, err := NewFromConfig(c, nil)
	require.NoError(t, err)

	r := surface.NewRecorder()
	require.NoError(t, g.Render(r, 300, 100))
	assert.NotEmpty(t, r.Filter(surface.OpText))
	assert.NotEmpty(t, r.Filter(surface.OpStrokeLine))
}

func TestBarsTakeNextPaletteColor(t *testing.T) {
	g := New()
	_, err := g.Add(layers.TypeBar, "Sales", []float64{1, 2, 3})
	require.NoError(t, err)
	r := surface.NewRecorder()
	require.NoError(t, g.Render(r, 90, 30))

	rects := r.Filter(surface.OpFillRect)
	require.Len(t, rects, 3)
	for i, o := range rects {
		assert.Equal(t, g.Theme.Colors[i], o.Color, "bar %d", i)
	}
	require.Len(t, g.Legend(), 1)
	assert.Equal(t, g.Theme.Colors[0], g.Legend()[0].Color)
}

func TestKeyLabelsOfSparseKeys(t *testing.T) {
	g := New()
	pts, err := series.FromPairs([]float64{0, 5e6}, []float64{1, 2})
	require.NoError(t, err)
	_, err = g.Add(layers.TypeLine, pts)
	require.NoError(t, err)
	_, err = g.Add(layers.TypeLine, series.New(series.Point{Key: 5e6, Value: 3, Valid: true}, series.Point{Key: 7}))
	require.NoError(t, err)
	_, err = g.Add(layers.TypeLine, series.New(series.Point{Key: 9e6, Value: 3, Valid: true}), layers.Irrelevant())
	require.NoError(t, err)

	require.NoError(t, g.Render(surface.NewRecorder(), 100, 100))
	assert.Equal(t, []string{"0", "5000000"}, g.KeyLabels())
}

func TestKeyLabelsOfChildLayers(t *testing.T) {
	g, err := NewFromConfig(mock.NewPieConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, g.Render(surface.NewRecorder(), 200, 100))
	assert.Equal(t, []string{"0"}, g.KeyLabels())

	assert.Empty(t, New().KeyLabels())
}

func TestDiagnosticGrid(t *testing.T) {
	g := New()
	g.Marks = true
	r := surface.NewRecorder()
	require.NoError(t, g.Render(r, 100, 100))

	// Crop marks at four corners, then a grid of 11 by 11 lines.
	assert.Len(t, r.Filter(surface.OpStrokeLine), 8+22)
	assert.Len(t, r.Filter(surface.OpStrokePolyline), 1)
}

func value(v float64) *float64 {
	return &v
}
