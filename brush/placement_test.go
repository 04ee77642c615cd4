// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/metabrush/math32"
)

func TestResolveViewDepth(t *testing.T) {
	rs := &Resolver{Mode: ViewDepth, Depth: 10}
	view := newTestView()
	pl, err := rs.Resolve(view, math32.Vec2(3, 4), nil)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(3, 4, 90), pl.Pos)
	assert.Equal(t, math32.Vec3(0, 0, -1), pl.Normal)
	assert.Equal(t, ViewDepth, pl.Mode)

	prev := &Placement{Pos: math32.Vec3(0, 0, 50)}
	pl, err = rs.Resolve(view, math32.Vec2(3, 4), prev)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(3, 4, 90), pl.Pos, "previous ignored without FollowDepth")

	rs.FollowDepth = true
	pl, err = rs.Resolve(view, math32.Vec2(3, 4), prev)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(3, 4, 50), pl.Pos)

	pl, err = rs.Resolve(view, math32.Vec2(3, 4), nil)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(3, 4, 90), pl.Pos, "first sample of a stroke uses Depth")
}

func TestResolveCursorDepth(t *testing.T) {
	rs := &Resolver{Mode: CursorDepth, Cursor: math32.Vec3(7, 7, 5)}
	view := newTestView()
	pl, err := rs.Resolve(view, math32.Vec2(3, 4), nil)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(3, 4, 5), pl.Pos)

	rs.Cursor = math32.Vec3(0, 0, 200)
	_, err = rs.Resolve(view, math32.Vec2(3, 4), nil)
	assert.ErrorIs(t, err, ErrDegenerateView, "cursor behind the view")

	rs.Cursor = math32.Vec3(0, 0, 5)
	view.forward = math32.Vector3{}
	_, err = rs.Resolve(view, math32.Vec2(3, 4), nil)
	assert.ErrorIs(t, err, ErrDegenerateView, "zero view vector")
}

func TestResolveSnap(t *testing.T) {
	sc := newTestScene()
	rs := &Resolver{Mode: SnapRaycast, Scene: sc}
	view := newTestView()
	pl, err := rs.Resolve(view, math32.Vec2(5, 2), nil)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(5, 2, 0), pl.Pos)
	assert.Equal(t, math32.Vec3(0, 0, 1), pl.Normal)

	_, err = rs.Resolve(view, math32.Vec2(-5, 2), nil)
	assert.ErrorIs(t, err, ErrNoIntersection)
	assert.Empty(t, sc.prims, "resolving never writes to the scene")
}

func TestResolveDegenerate(t *testing.T) {
	for _, mode := range ModesValues() {
		rs := &Resolver{Mode: mode, Depth: 10, Scene: newTestScene()}
		_, err := rs.Resolve(nil, math32.Vec2(1, 1), nil)
		assert.ErrorIs(t, err, ErrDegenerateView, mode.String())

		view := newTestView()
		view.err = errors.New("no region")
		_, err = rs.Resolve(view, math32.Vec2(1, 1), nil)
		assert.ErrorIs(t, err, ErrDegenerateView, mode.String())
	}
}
