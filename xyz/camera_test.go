// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/metabrush/math32"
)

func assertVec(t *testing.T, want, got math32.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, 0, want.DistanceTo(got), 1e-5, msgAndArgs...)
}

func TestCameraCenterRay(t *testing.T) {
	var cm Camera
	cm.Defaults()
	assertVec(t, math32.Vec3(0, 0, -1), cm.Forward())
	assert.Equal(t, math32.Vec3(0, 0, 10), cm.ViewVector())

	ray, err := cm.Ray(math32.Vec2(400, 300))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0, 0, 10), ray.Origin)
	assertVec(t, math32.Vec3(0, 0, -1), ray.Dir)

	// top left of the screen is up and to the left in the world
	ray, err = cm.Ray(math32.Vec2(0, 0))
	require.NoError(t, err)
	assert.Less(t, ray.Dir.X, float32(0))
	assert.Greater(t, ray.Dir.Y, float32(0))
}

func TestCameraOrtho(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.Ortho = true
	cm.Height = 6
	cm.Size = math32.Vec2(200, 100)

	ray, err := cm.Ray(math32.Vec2(200, 0))
	require.NoError(t, err)
	assertVec(t, math32.Vec3(0, 0, -1), ray.Dir)
	assertVec(t, math32.Vec3(6, 3, 10), ray.Origin)
}

func TestCameraProject(t *testing.T) {
	for _, ortho := range []bool{false, true} {
		var cm Camera
		cm.Defaults()
		cm.Ortho = ortho
		cm.Pos = math32.Vec3(4, 3, 12)
		cm.LookAt(math32.Vec3(1, 0, 0), math32.Vector3{})

		pt := math32.Vec3(1.5, -0.5, 0.25)
		scr, ok := cm.Project(pt)
		require.True(t, ok)
		ray, err := cm.Ray(scr)
		require.NoError(t, err)
		// the ray through the projection passes through the point
		tp := pt.Sub(ray.Origin).Dot(ray.Dir)
		assert.InDelta(t, 0, ray.At(tp).DistanceTo(pt), 1e-3, "ortho %v", ortho)
	}
	var cm Camera
	cm.Defaults()
	_, ok := cm.Project(math32.Vec3(0, 0, 20))
	assert.False(t, ok, "behind the camera")
}

func TestCameraDegenerate(t *testing.T) {
	cases := map[string]func(cm *Camera){
		"at target":   func(cm *Camera) { cm.Target = cm.Pos },
		"parallel up": func(cm *Camera) { cm.UpDir = math32.Vec3(0, 0, 1) },
		"no size":     func(cm *Camera) { cm.Size = math32.Vector2{} },
		"no fov":      func(cm *Camera) { cm.FOV = 0 },
		"no height":   func(cm *Camera) { cm.Ortho = true; cm.Height = 0 },
	}
	for name, f := range cases {
		var cm Camera
		cm.Defaults()
		f(&cm)
		_, err := cm.Ray(math32.Vec2(1, 1))
		assert.ErrorIs(t, err, ErrDegenerateCamera, name)
	}
	var cm Camera
	cm.Defaults()
	cm.Target = cm.Pos
	assert.Equal(t, math32.Vector3{}, cm.Forward())
}
