// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"image/color"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/maps"

	"github.com/mystichacker/prawn-charts/theme"
)

const (
	HintStrokeWidth    = "stroke_width"
	HintRelativeStroke = "relative_stroke"
	HintDots           = "dots"
	HintShadow         = "shadow"
	HintStyle          = "style"
	HintExplode        = "explode"
	HintBorder         = "border"
	HintMarker         = "marker"
	HintMarkerSize     = "marker_size"
	HintRelative       = "relative"
	HintSmooth         = "smooth"
	HintDiameter       = "diameter"
	HintCenterX        = "center_x"
	HintCenterY        = "center_y"
	HintOffsetAngle    = "offset_angle"
	HintShadowX        = "shadow_x"
	HintShadowY        = "shadow_y"
	HintShadowColor    = "shadow_color"
	HintShadowOpacity  = "shadow_opacity"
	HintStroke         = "stroke"
)

var knownHints = map[string]bool{
	HintStrokeWidth: true, HintRelativeStroke: true, HintDots: true, HintShadow: true,
	HintStyle: true, HintExplode: true, HintBorder: true, HintMarker: true,
	HintMarkerSize: true, HintRelative: true, HintSmooth: true, HintDiameter: true,
	HintCenterX: true, HintCenterY: true, HintOffsetAngle: true, HintShadowX: true,
	HintShadowY: true, HintShadowColor: true, HintShadowOpacity: true, HintStroke: true,
}

// Hints are render hints of a layer, stored as text so that they can be
// taken from configuration files unchanged. Invalid values read as the default.
type Hints map[string]string

// ParseHints copies the known hints of m. Unknown keys are logged and ignored.
func ParseHints(m map[string]string, logger *log.Logger) Hints {
	if len(m) == 0 {
		return nil
	}
	keys := maps.Keys(m)
	sort.Strings(keys)
	h := make(Hints, len(m))
	for _, key := range keys {
		if !knownHints[key] {
			if logger != nil {
				logger.Warnf("Unknown hint %s was ignored.", key)
			}
			continue
		}
		h[key] = m[key]
	}
	return h
}

func (h Hints) Has(key string) bool {
	_, ok := h[key]
	return ok
}

func (h Hints) String(key, def string) string {
	if v, ok := h[key]; ok {
		return v
	}
	return def
}

func (h Hints) Float(key string, def float64) float64 {
	v, ok := h[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func (h Hints) Bool(key string) bool {
	b, _ := strconv.ParseBool(h[key])
	return b
}

func (h Hints) Color(key string, def color.NRGBA) color.NRGBA {
	v, ok := h[key]
	if !ok {
		return def
	}
	c, err := theme.ParseColor(v)
	if err != nil {
		return def
	}
	return c
}

// Merge returns a new set of hints where the entries of over replace those of h.
func (h Hints) Merge(over Hints) Hints {
	if len(h) == 0 && len(over) == 0 {
		return nil
	}
	m := make(Hints, len(h)+len(over))
	for k, v := range h {
		m[k] = v
	}
	for k, v := range over {
		m[k] = v
	}
	return m
}
