// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"

	"github.com/mystichacker/prawn-charts/theme"
)

// ThemeConfig selects a builtin theme and optionally replaces its palettes.
type ThemeConfig struct {
	Name     string   `yaml:"name,omitempty"`
	Colors   []string `yaml:"colors,omitempty"`
	Outlines []string `yaml:"outlines,omitempty"`
}

func (t *ThemeConfig) sanitize() {
	if len(t.Name) == 0 {
		t.Name = theme.DefaultName
	}
}

// Resolve creates a new theme instance.
func (t *ThemeConfig) Resolve() (*theme.Theme, error) {
	th, ok := theme.ByName(t.Name)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", t.Name)
	}
	colors, err := theme.ParseColorSpec(t.Colors)
	if err != nil {
		return nil, fmt.Errorf("theme colors: %w", err)
	}
	if colors.IsSet() {
		th.Colors = colors
	}
	outlines, err := theme.ParseColorSpec(t.Outlines)
	if err != nil {
		return nil, fmt.Errorf("theme outlines: %w", err)
	}
	if outlines.IsSet() {
		th.Outlines = outlines
	}
	return th, nil
}
