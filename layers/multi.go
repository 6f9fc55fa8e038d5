// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import "github.com/mystichacker/prawn-charts/surface"

// MultiLayer draws its children side by side, e.g. grouped bars which share
// a category. Each child learns the number of children and its position.
type MultiLayer struct {
	composite
}

func NewMultiLayer(spec Spec) (Layer, error) {
	c, err := newComposite(TypeMulti, spec, TypeBar)
	if err != nil {
		return nil, err
	}
	m := &MultiLayer{composite: c}
	if spec.Points.Len() > 0 {
		return nil, m.SetPoints(spec.Points)
	}
	if err := m.populate(spec); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MultiLayer) Render(s surface.Surface, opts RenderOptions) error {
	opts = withTheme(opts)
	m.SetupFrame(opts)
	for i, child := range m.layers {
		childOpts := opts
		childOpts.Count = len(m.layers)
		childOpts.Position = i
		childOpts.Color = childColor(child, opts.Theme)
		if err := renderChild(child, s, childOpts); err != nil {
			return err
		}
	}
	return nil
}
