// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorSpec is either unset (empty), a single color, or a list of colors
// which is indexed cyclically.
type ColorSpec []color.NRGBA

func Single(c color.NRGBA) ColorSpec {
	return ColorSpec{c}
}

func (s ColorSpec) IsSet() bool {
	return len(s) > 0
}

// At returns the color for index i, wrapping around. It must not be called on an unset spec.
func (s ColorSpec) At(i int) color.NRGBA {
	return s[i%len(s)]
}

// First returns the first color, ok is false if the spec is unset.
func (s ColorSpec) First() (c color.NRGBA, ok bool) {
	if len(s) == 0 {
		return c, false
	}
	return s[0], true
}

// ParseColor accepts "#rrggbb", "#rrggbbaa", "rrggbb" or an SVG color name.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := strings.TrimPrefix(name, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func ParseColorSpec(l []string) (ColorSpec, error) {
	if len(l) == 0 {
		return nil, nil
	}
	spec := make(ColorSpec, len(l))
	for i, s := range l {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		spec[i] = c
	}
	return spec, nil
}

// FormatColor is the inverse of ParseColor for hex notation.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Transparent returns c with its alpha scaled by opacity.
func Transparent(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
