// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import "cogentcore.org/metabrush/math32"

// Symmetry is the set of mirror planes applied to every placement.
type Symmetry struct {
	X bool `toml:"x" default:"false"`
	Y bool `toml:"y" default:"false"`
	Z bool `toml:"z" default:"false"`

	// Origin is the origin of the mirror frame: each enabled plane
	// passes through it, perpendicular to its axis.
	Origin math32.Vector3 `toml:"origin"`
}

// Axes returns the enabled mirror axes.
func (sy Symmetry) Axes() Axes {
	var a Axes
	if sy.X {
		a |= AxisX
	}
	if sy.Y {
		a |= AxisY
	}
	if sy.Z {
		a |= AxisZ
	}
	return a
}

// Count returns the number of elements that [Symmetry.Expand]
// returns per element: 2 to the power of the number of enabled axes.
func (sy Symmetry) Count() int {
	return 1 << sy.Axes().Count()
}

// Combinations returns every combination of the enabled axes,
// starting with the empty set for the original. Each enabled axis
// doubles the list, in X, Y, Z order.
func (sy Symmetry) Combinations() []Axes {
	combos := make([]Axes, 1, sy.Count())
	for _, ax := range []Axes{AxisX, AxisY, AxisZ} {
		if !sy.Axes().Has(ax) {
			continue
		}
		for _, c := range combos {
			combos = append(combos, c|ax)
		}
	}
	return combos
}

// Expand returns the element followed by one mirrored copy per
// combination of enabled axes. Identifiers are left for the caller.
func (sy Symmetry) Expand(el Element) []Element {
	combos := sy.Combinations()
	els := make([]Element, len(combos))
	for i, c := range combos {
		els[i] = sy.Mirror(el, c)
	}
	return els
}

// Mirror returns a copy of the element reflected across the planes
// of the given axes through [Symmetry.Origin]. The normal is reflected
// as a direction.
func (sy Symmetry) Mirror(el Element, axes Axes) Element {
	if axes == 0 {
		return el
	}
	rel := el.Placement.Pos.Sub(sy.Origin)
	nrm := el.Placement.Normal
	for d, ax := range []Axes{AxisX, AxisY, AxisZ} {
		if !axes.Has(ax) {
			continue
		}
		dim := math32.Dims(d)
		rel.SetDim(dim, -rel.Dim(dim))
		nrm.SetDim(dim, -nrm.Dim(dim))
	}
	el.Placement.Pos = sy.Origin.Add(rel)
	el.Placement.Normal = nrm
	el.Mirror = axes
	return el
}
