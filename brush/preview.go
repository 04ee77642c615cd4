// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import "cogentcore.org/metabrush/math32"

// Preview marker constants.
const (
	// PreviewSegments is the number of segments in the marker circle.
	PreviewSegments = 48

	// PreviewMinPixels and PreviewMaxPixels bound the marker radius.
	PreviewMinPixels = 12
	PreviewMaxPixels = 120
)

// PreviewColor is the marker color.
var PreviewColor = math32.Vec4(1, 1, 1, 0.7)

// Marker is the brush size indicator drawn under the pointer.
type Marker struct {

	// Center is the pointer position in screen pixels.
	Center math32.Vector2

	// Radius is the world radius an element placed here would have.
	Radius float32

	// PixelRadius is the radius of the drawn circle.
	PixelRadius float32

	// Placement is where an element placed here would go.
	Placement Placement

	// Points is the closed circle outline.
	Points []math32.Vector2
}

// Preview computes the brush marker on each redraw. It only reads the
// resolver and the scene: it never creates elements or touches the
// undo history.
type Preview struct {
	Resolver *Resolver
	Curve    PressureCurve
	BaseSize float32
}

// PixelRadius returns the marker radius in pixels for a world radius.
func PixelRadius(radius float32) float32 {
	return math32.Clamp(20+15*radius, PreviewMinPixels, PreviewMaxPixels)
}

// Marker returns the marker for the given pointer sample, and false
// if the sample does not resolve to a placement, in which case no
// marker should be drawn.
func (pv *Preview) Marker(view View, smp InputSample, prev *Placement) (Marker, bool) {
	pl, err := pv.Resolver.Resolve(view, smp.Pos, prev)
	if err != nil {
		return Marker{}, false
	}
	r := pv.BaseSize * pv.Curve.Map(smp.Pressure)
	mk := Marker{Center: smp.Pos, Radius: r, PixelRadius: PixelRadius(r), Placement: pl}
	mk.Points = make([]math32.Vector2, PreviewSegments)
	for i := range mk.Points {
		a := 2 * math32.Pi * float32(i) / PreviewSegments
		mk.Points[i] = smp.Pos.Add(math32.Vec2(math32.Cos(a), math32.Sin(a)).MulScalar(mk.PixelRadius))
	}
	return mk, true
}

// Draw draws the marker on the overlay, and returns false if there
// was no marker to draw.
func (pv *Preview) Draw(ov Overlay, view View, smp InputSample, prev *Placement) bool {
	mk, ok := pv.Marker(view, smp, prev)
	if !ok || ov == nil {
		return false
	}
	ov.DrawLineLoop(mk.Points, PreviewColor)
	return true
}
