// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const configVersion = 1

// Decode reads a chart configuration and sanitizes it.
func Decode(r io.Reader) (ChartConfig, error) {
	var c ChartConfig
	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil && err != io.EOF {
		return ChartConfig{}, fmt.Errorf("failed to parse chart configuration: %w", err)
	}
	// Avoid misinterpreting settings of a newer release.
	if c.Version > configVersion {
		return ChartConfig{}, fmt.Errorf("invalid chart configuration version %d instead of %d, probably from a newer release", c.Version, configVersion)
	}
	c.Sanitize()
	return c, nil
}

func Encode(w io.Writer, c ChartConfig) error {
	c.Sanitize()
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&c); err != nil {
		return fmt.Errorf("error generating chart configuration: %w", err)
	}
	return enc.Close()
}
