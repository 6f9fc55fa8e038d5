// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mystichacker/prawn-charts/surface"
	"github.com/mystichacker/prawn-charts/theme"
)

func barOptions() RenderOptions {
	return RenderOptions{Width: 80, Height: 30, MinValue: -4, MaxValue: 4, MinKey: 0, MaxKey: 2}
}

func TestBarRectangles(t *testing.T) {
	var c Container
	bar, err := c.Add(TypeBar, "Bars", []float64{-2, 0, 4})
	require.NoError(t, err)

	r := surface.NewRecorder()
	require.NoError(t, bar.Render(r, barOptions()))

	rects := r.Filter(surface.OpFillRect)
	require.Len(t, rects, 3)
	expected := []struct{ x, y, w float64 }{
		{x: 20, y: 0, w: 20},
		{x: 40, y: 10, w: 0},
		{x: 40, y: 20, w: 40},
	}
	for i, e := range expected {
		assert.InDelta(t, e.x, rects[i].X, 1e-9, "bar %d", i)
		assert.InDelta(t, e.y, rects[i].Y, 1e-9, "bar %d", i)
		assert.InDelta(t, e.w, rects[i].W, 1e-9, "bar %d", i)
		assert.InDelta(t, 10.0, rects[i].H, 1e-9, "bar %d", i)
	}
	assert.Empty(t, r.Filter(surface.OpStrokeRect, surface.OpFillSlice, surface.OpText))
}

func TestBarColorsAreRepeatable(t *testing.T) {
	th := theme.NewDefaultTheme()
	var c Container
	bar, err := c.Add(TypeBar, []float64{1, 2, 3})
	require.NoError(t, err)

	opts := barOptions()
	opts.Theme = th
	render := func() []color.NRGBA {
		r := surface.NewRecorder()
		require.NoError(t, bar.Render(r, opts))
		var l []color.NRGBA
		for _, o := range r.Filter(surface.OpFillRect) {
			l = append(l, o.Color)
		}
		return l
	}
	first := render()
	assert.Equal(t, th.Colors[:3], first)
	// Another consumer of the theme must not change the bar colors.
	th.NextColor()
	assert.Equal(t, first, render())
}

func TestBarPreferredColorsByPoint(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	var c Container
	bar, err := c.Add(TypeBar, []float64{1, 2, 3}, WithColor(theme.ColorSpec{red, blue}))
	require.NoError(t, err)

	opts := barOptions()
	opts.Color = theme.Single(color.NRGBA{G: 255, A: 255})
	r := surface.NewRecorder()
	require.NoError(t, bar.Render(r, opts))

	rects := r.Filter(surface.OpFillRect)
	require.Len(t, rects, 3)
	assert.Equal(t, red, rects[0].Color)
	assert.Equal(t, blue, rects[1].Color)
	assert.Equal(t, red, rects[2].Color)
}

func TestBarCallerColorOnlyNamesLayer(t *testing.T) {
	green := color.NRGBA{G: 255, A: 255}
	var c Container
	bar, err := c.Add(TypeBar, "Sales", []float64{1, 2, 3})
	require.NoError(t, err)

	opts := barOptions()
	opts.Color = theme.Single(green)
	r := surface.NewRecorder()
	require.NoError(t, bar.Render(r, opts))

	// Each bar takes the next palette color.
	rects := r.Filter(surface.OpFillRect)
	require.Len(t, rects, 3)
	palette := theme.NewDefaultTheme().Colors
	for i, o := range rects {
		assert.Equal(t, palette[i], o.Color, "bar %d", i)
	}
	col, ok := bar.Color()
	assert.True(t, ok)
	assert.Equal(t, green, col)
	assert.Equal(t, []LegendEntry{{Title: "Sales", Color: green, Priority: PriorityNormal}}, bar.LegendData())
}

func TestBarBandWithinMulti(t *testing.T) {
	var c Container
	bar, err := c.Add(TypeBar, []float64{1, 2, 3})
	require.NoError(t, err)

	opts := barOptions()
	opts.Count = 2
	opts.Position = 1
	r := surface.NewRecorder()
	require.NoError(t, bar.Render(r, opts))

	rects := r.Filter(surface.OpFillRect)
	require.Len(t, rects, 3)
	for i, o := range rects {
		assert.InDelta(t, 5.0, o.H, 1e-9)
		assert.InDelta(t, float64(i)*10+5, o.Y, 1e-9)
	}
}

func TestBarExplodeLeavesGap(t *testing.T) {
	var c Container
	bar, err := c.Add(TypeBar, []float64{1, 2, 3}, Hints{HintExplode: "10"})
	require.NoError(t, err)

	r := surface.NewRecorder()
	require.NoError(t, bar.Render(r, barOptions()))

	rects := r.Filter(surface.OpFillRect)
	require.Len(t, rects, 3)
	// 10% of the height is 3 pixels, split above and below the bar.
	for i, o := range rects {
		assert.InDelta(t, 7.0, o.H, 1e-9)
		assert.InDelta(t, float64(i)*10+1.5, o.Y, 1e-9)
	}
}

func TestBarBorderAndMarkers(t *testing.T) {
	outline := color.NRGBA{R: 9, G: 9, B: 9, A: 255}
	var c Container
	bar, err := c.Add(TypeBar, []float64{-2, 4},
		Hints{HintBorder: "true", HintMarker: MarkerSquare},
		WithOutline(theme.Single(outline)))
	require.NoError(t, err)

	opts := barOptions()
	opts.Height = 20
	r := surface.NewRecorder()
	require.NoError(t, bar.Render(r, opts))

	borders := r.Filter(surface.OpStrokeRect)
	require.Len(t, borders, 2)
	for _, o := range borders {
		assert.Equal(t, outline, o.Color)
	}
	// Square markers are drawn after the bars, at their outer end.
	rects := r.Filter(surface.OpFillRect)
	require.Len(t, rects, 4)
	assert.InDelta(t, 20.0-2, rects[2].X, 1e-9)
	assert.InDelta(t, 5.0-2, rects[2].Y, 1e-9)
	assert.InDelta(t, 80.0-2, rects[3].X, 1e-9)
	assert.InDelta(t, 15.0-2, rects[3].Y, 1e-9)
}

func TestBarPointMarkersOption(t *testing.T) {
	var c Container
	bar, err := c.Add(TypeBar, []float64{1, 2})
	require.NoError(t, err)

	opts := barOptions()
	opts.PointMarkers = true
	r := surface.NewRecorder()
	require.NoError(t, bar.Render(r, opts))
	assert.Len(t, r.Filter(surface.OpFillSlice), 2)
}

func TestBarDiagnostics(t *testing.T) {
	var c Container
	bar, err := c.Add(TypeBar, []float64{1, 2})
	require.NoError(t, err)

	opts := barOptions()
	opts.Diagnostics = true
	r := surface.NewRecorder()
	require.NoError(t, bar.Render(r, opts))
	texts := r.Filter(surface.OpText)
	require.Len(t, texts, 2)
	assert.Equal(t, "bar 0", texts[0].Text)
	assert.NotEmpty(t, r.Filter(surface.OpStrokeLine))
}

func TestBarLegendPerTitle(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	var c Container
	bar, err := c.Add(TypeBar, []float64{1, 2},
		WithTitles("Left", "Right"),
		WithColor(theme.ColorSpec{red, blue}))
	require.NoError(t, err)
	assert.Empty(t, bar.LegendData())

	require.NoError(t, bar.Render(surface.NewRecorder(), barOptions()))
	assert.Equal(t, []LegendEntry{
		{Title: "Left", Color: red, Priority: PriorityNormal},
		{Title: "Right", Color: blue, Priority: PriorityNormal},
	}, bar.LegendData())
}
