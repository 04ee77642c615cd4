// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/metabrush/math32"
)

type testOverlay struct {
	loops  [][]math32.Vector2
	colors []math32.Vector4
}

func (ov *testOverlay) DrawLineLoop(pts []math32.Vector2, color math32.Vector4) {
	ov.loops = append(ov.loops, pts)
	ov.colors = append(ov.colors, color)
}

func TestPixelRadius(t *testing.T) {
	assert.Equal(t, float32(12), PixelRadius(-1))
	assert.Equal(t, float32(35), PixelRadius(1))
	assert.Equal(t, float32(120), PixelRadius(100))
}

func TestPreviewMarker(t *testing.T) {
	sc := newTestScene()
	pv := &Preview{
		Resolver: &Resolver{Mode: SnapRaycast, Scene: sc},
		Curve:    PressureCurve{Kind: Linear, Min: 0.25, Max: 1},
		BaseSize: 2,
	}
	view := newTestView()
	mk, ok := pv.Marker(view, at(10, 10, 0), nil)
	require.True(t, ok)
	assert.Equal(t, float32(2), mk.Radius)
	assert.Equal(t, float32(50), mk.PixelRadius)
	assert.Equal(t, math32.Vec3(10, 10, 0), mk.Placement.Pos)
	require.Len(t, mk.Points, PreviewSegments)
	for _, p := range mk.Points {
		assert.InDelta(t, 50, p.DistanceTo(mk.Center), 1e-3)
	}

	ov := &testOverlay{}
	assert.True(t, pv.Draw(ov, view, at(10, 10, 0), nil))
	assert.False(t, pv.Draw(ov, view, at(-10, 10, 0), nil), "no marker off the surface")
	require.Len(t, ov.loops, 1)
	assert.Equal(t, PreviewColor, ov.colors[0])
	assert.Empty(t, sc.prims, "preview never places elements")
}
