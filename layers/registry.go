// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package layers

import (
	"github.com/zhangyunhao116/skipmap"

	"github.com/mystichacker/prawn-charts/charterr"
)

const DefaultType = TypeLine

type Constructor func(spec Spec) (Layer, error)

var layerRegistry = skipmap.NewString[Constructor]()

func init() {
	Register(TypeBar, NewBarLayer)
	Register(TypeLine, NewLineLayer)
	Register(TypeArea, NewAreaLayer)
	Register(TypeAverage, NewAverageLayer)
	Register(TypeMulti, NewMultiLayer)
	Register(TypePie, NewPieLayer)
	Register(TypePieSlice, NewPieSliceLayer)
}

// Register adds or replaces the constructor of a layer type.
// A layer type which embeds Base must define its own Render calling
// RenderStages on itself, otherwise the promoted Base.Render reaches
// Base.Draw and every render fails with NOT_IMPLEMENTED.
func Register(t Type, ctor Constructor) {
	layerRegistry.Store(string(t), ctor)
}

func Create(spec Spec) (Layer, error) {
	ctor, ok := layerRegistry.Load(string(spec.Type))
	if !ok {
		return nil, charterr.New(charterr.ErrCodeInvalidArgument, "unknown layer type %q", spec.Type)
	}
	return ctor(spec)
}

// Types returns the registered layer types, sorted.
func Types() []Type {
	l := make([]Type, 0, layerRegistry.Len())
	layerRegistry.Range(func(key string, _ Constructor) bool {
		l = append(l, Type(key))
		return true
	})
	return l
}

func IsRegistered(t Type) bool {
	_, ok := layerRegistry.Load(string(t))
	return ok
}
