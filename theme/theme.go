// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package theme provides the color palettes which layers draw with.
package theme

import (
	"image/color"
	"sort"

	"golang.org/x/exp/maps"
)

const DefaultName = "default"

// Theme is a palette with a fill color cursor and an outline color cursor.
// The cursors are advanced while rendering, therefore a Theme must not be
// shared between concurrent renders. Use Clone to get an independent copy.
type Theme struct {
	Name       string
	Background color.NRGBA
	Marker     color.NRGBA
	Text       color.NRGBA
	Colors     []color.NRGBA
	Outlines   []color.NRGBA

	colorIndex   int
	outlineIndex int
}

var themeRegistry = map[string]func() *Theme{
	DefaultName: NewDefaultTheme,
	"dark":      NewDarkTheme,
	"light":     NewLightTheme,
}

func NewDefaultTheme() *Theme {
	return &Theme{
		Name:       DefaultName,
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Marker:     color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Text:       color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Colors: []color.NRGBA{
			{R: 31, G: 119, B: 180, A: 255},
			{R: 255, G: 127, B: 14, A: 255},
			{R: 44, G: 160, B: 44, A: 255},
			{R: 214, G: 39, B: 40, A: 255},
			{R: 148, G: 103, B: 189, A: 255},
			{R: 140, G: 86, B: 75, A: 255},
		},
		Outlines: []color.NRGBA{
			{R: 0, G: 0, B: 0, A: 255},
			{R: 60, G: 60, B: 60, A: 255},
		},
	}
}

func NewDarkTheme() *Theme {
	return &Theme{
		Name:       "dark",
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		Marker:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Text:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Colors: []color.NRGBA{
			{R: 0, G: 255, B: 0, A: 255},
			{R: 255, G: 0, B: 0, A: 255},
			{R: 100, G: 255, B: 100, A: 255},
			{R: 74, G: 74, B: 207, A: 255},
		},
		Outlines: []color.NRGBA{
			{R: 255, G: 255, B: 255, A: 255},
			{R: 100, G: 100, B: 100, A: 255},
		},
	}
}

func NewLightTheme() *Theme {
	return &Theme{
		Name:       "light",
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Marker:     color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Text:       color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Colors: []color.NRGBA{
			{R: 0, G: 180, B: 0, A: 255},
			{R: 220, G: 0, B: 0, A: 255},
			{R: 174, G: 174, B: 207, A: 255},
			{R: 150, G: 150, B: 150, A: 255},
		},
		Outlines: []color.NRGBA{
			{R: 0, G: 0, B: 0, A: 255},
			{R: 230, G: 230, B: 230, A: 255},
		},
	}
}

// ByName creates a new instance of a builtin theme.
func ByName(name string) (*Theme, bool) {
	f, ok := themeRegistry[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names returns the sorted list of builtin theme names.
func Names() []string {
	l := maps.Keys(themeRegistry)
	sort.Strings(l)
	return l
}

// NextColor returns the color at the cursor and advances the cursor, wrapping around.
func (th *Theme) NextColor() color.NRGBA {
	if len(th.Colors) == 0 {
		return th.Marker
	}
	c := th.Colors[th.colorIndex%len(th.Colors)]
	th.colorIndex = (th.colorIndex + 1) % len(th.Colors)
	return c
}

func (th *Theme) ResetColor() {
	th.colorIndex = 0
}

func (th *Theme) NextOutline() color.NRGBA {
	if len(th.Outlines) == 0 {
		return th.Marker
	}
	c := th.Outlines[th.outlineIndex%len(th.Outlines)]
	th.outlineIndex = (th.outlineIndex + 1) % len(th.Outlines)
	return c
}

func (th *Theme) ResetOutline() {
	th.outlineIndex = 0
}

// Clone returns a copy which shares no state with th, cursors included.
func (th *Theme) Clone() *Theme {
	c := *th
	c.Colors = append([]color.NRGBA(nil), th.Colors...)
	c.Outlines = append([]color.NRGBA(nil), th.Outlines...)
	return &c
}
