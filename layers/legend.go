// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import "image/color"

type Priority string

const PriorityNormal Priority = "normal"

type LegendEntry struct {
	Title    string
	Color    color.NRGBA
	Priority Priority
}

// collectLegend concatenates the legend entries of all layers.
func collectLegend(l []Layer) []LegendEntry {
	var entries []LegendEntry
	for _, layer := range l {
		entries = append(entries, layer.LegendData()...)
	}
	return entries
}
