// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"github.com/mystichacker/prawn-charts/series"
	"github.com/mystichacker/prawn-charts/surface"
)

// probeLayer records the options of every render.
type probeLayer struct {
	Base
	opts []RenderOptions
}

func newProbe(title string, values ...float64) *probeLayer {
	return &probeLayer{Base: NewBase("probe", Spec{Title: title, Points: series.FromValues(values)})}
}

func (p *probeLayer) Render(s surface.Surface, opts RenderOptions) error {
	p.opts = append(p.opts, opts)
	p.SetupFrame(opts)
	return nil
}

// frameOptions maps values 0..10 onto a 30x100 surface with keys 0..2.
func frameOptions() RenderOptions {
	return RenderOptions{Width: 30, Height: 100, MinValue: 0, MaxValue: 10, MinKey: 0, MaxKey: 2}
}
