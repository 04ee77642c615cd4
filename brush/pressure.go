// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import "math"

// Curves are the pressure response curves.
type Curves int32 //enums:enum

const (
	// Linear maps pressure directly.
	Linear Curves = iota

	// Smooth eases in and out of the range ends (smoothstep).
	Smooth

	// Power raises pressure to [PressureCurve.Exponent]:
	// below 1 is softer, above 1 is sharper.
	Power
)

// PressureCurve maps pen pressure to a radius multiplier in the
// range [Min, Max]. The mapping is monotonic non-decreasing in
// pressure for every curve.
type PressureCurve struct {
	Kind Curves

	// Min is the multiplier at zero pressure.
	Min float32

	// Max is the multiplier at full pressure.
	Max float32

	// Exponent is the gamma of the [Power] curve.
	Exponent float32
}

// Map returns the radius multiplier for pressure p, which is clamped to [0, 1].
func (pc PressureCurve) Map(p float32) float32 {
	x := float64(ClampPressure(p))
	var t float64
	switch pc.Kind {
	case Smooth:
		t = x * x * (3 - 2*x)
	case Power:
		e := float64(pc.Exponent)
		if e <= 0 {
			e = 1
		}
		t = math.Pow(x, e)
	default:
		t = x
	}
	lo, hi := float64(pc.Min), float64(pc.Max)
	if hi < lo {
		lo, hi = hi, lo
	}
	return float32(lo + (hi-lo)*t)
}
