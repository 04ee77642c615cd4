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

func newTestBuilder(cfg *Config) (*StrokeBuilder, *IDSource) {
	rs := &Resolver{Mode: cfg.Mode, Depth: cfg.ViewDepth, FollowDepth: cfg.FollowDepth, Scene: newTestScene()}
	ids := &IDSource{}
	return NewStrokeBuilder(cfg, rs, ids, 1), ids
}

func TestStrokeWorldSpacing(t *testing.T) {
	cfg := testConfig(CursorDepth)
	cfg.Spacing = 0.1
	sb, _ := newTestBuilder(cfg)
	view := newTestView()

	for i, x := range []float32{0, 0.05, 1, 1.02, 1.2} {
		_, _, err := sb.Place(view, at(x, 0, i), nil)
		require.NoError(t, err)
	}
	st := sb.Stroke()
	require.Len(t, st.Groups, 3)
	for i := 1; i < len(st.Groups); i++ {
		d := st.Groups[i].Elements[0].Pos().DistanceTo(st.Groups[i-1].Elements[0].Pos())
		assert.GreaterOrEqual(t, d, cfg.Spacing)
	}
	assert.Equal(t, math32.Vec3(1.2, 0, 0), st.Groups[2].Elements[0].Pos())
}

func TestStrokeScreenSpacing(t *testing.T) {
	cfg := testConfig(ViewDepth)
	cfg.Spacing = 5
	cfg.SpacingSpace = Screen
	sb, _ := newTestBuilder(cfg)
	view := newTestView()

	placed := 0
	for i, x := range []float32{0, 3, 6, 9, 11} {
		_, ok, err := sb.Place(view, at(x, 0, i), nil)
		require.NoError(t, err)
		if ok {
			placed++
		}
	}
	assert.Equal(t, 3, placed)
	assert.Equal(t, math32.Vec3(11, 0, 90), sb.Last().Pos)
}

func TestStrokeInterval(t *testing.T) {
	cfg := testConfig(ViewDepth)
	cfg.Interval = 0.1
	sb, _ := newTestBuilder(cfg)
	view := newTestView()

	_, ok, err := sb.Place(view, at(0, 0, 0), nil)
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = sb.Place(view, at(10, 0, 50), nil)
	require.NoError(t, err)
	assert.False(t, ok, "too soon")
	_, ok, err = sb.Place(view, at(20, 0, 150), nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, sb.Stroke().Groups, 2)
}

func TestStrokeRadius(t *testing.T) {
	cfg := testConfig(ViewDepth)
	cfg.BaseSize = 2
	cfg.Stiffness = 3
	sb, _ := newTestBuilder(cfg)
	g, ok, err := sb.Place(newTestView(), NewSample(math32.Vec2(1, 1), 0.5, t0), nil)
	require.NoError(t, err)
	require.True(t, ok)
	el := g.Elements[0]
	assert.InDelta(t, 1.25, el.Radius, 1e-6)
	assert.Equal(t, float32(3), el.Stiffness)
	assert.Equal(t, sb.Stroke().ID, el.Stroke)
	assert.Equal(t, ObjectID(1), el.Object)
}

func TestStrokeMirrorGroups(t *testing.T) {
	cfg := testConfig(CursorDepth)
	cfg.Mirror = Symmetry{X: true, Y: true}
	sb, _ := newTestBuilder(cfg)
	view := newTestView()

	var committed []Group
	commit := func(g Group) error {
		committed = append(committed, g)
		return nil
	}
	_, _, err := sb.Place(view, at(3, 4, 0), commit)
	require.NoError(t, err)
	_, _, err = sb.Place(view, at(6, 4, 1), commit)
	require.NoError(t, err)

	st := sb.Stroke()
	require.Len(t, st.Groups, 2)
	assert.Equal(t, st.Groups, committed)
	assert.Equal(t, 8, st.Len())
	assert.Equal(t, []ElementID{1, 2, 3, 4, 5, 6, 7, 8}, st.IDs(), "unique in placement order")
	assert.ElementsMatch(t, []math32.Vector3{
		math32.Vec3(3, 4, 0), math32.Vec3(-3, 4, 0), math32.Vec3(3, -4, 0), math32.Vec3(-3, -4, 0),
	}, positionsOf(st.Groups[0].Elements))
}

func TestStrokeDedupe(t *testing.T) {
	cfg := testConfig(CursorDepth)
	cfg.Mirror = Symmetry{X: true}
	sb, _ := newTestBuilder(cfg)
	g, _, err := sb.Place(newTestView(), at(0, 3, 0), nil)
	require.NoError(t, err)
	assert.Len(t, g.Elements, 1, "copy on the mirror plane collapses")

	cfg.Dedupe = false
	sb, _ = newTestBuilder(cfg)
	g, _, err = sb.Place(newTestView(), at(0, 3, 0), nil)
	require.NoError(t, err)
	assert.Len(t, g.Elements, 2)
}

func TestStrokeClosed(t *testing.T) {
	sb, ids := newTestBuilder(testConfig(ViewDepth))
	view := newTestView()
	_, _, err := sb.Place(view, at(0, 0, 0), nil)
	require.NoError(t, err)
	st := sb.Finish()
	assert.True(t, st.Closed())
	assert.Same(t, st, sb.Finish())

	_, ok, err := sb.Place(view, at(50, 0, 1), nil)
	assert.ErrorIs(t, err, ErrStrokeClosed)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, ElementID(2), ids.NextElement(), "no identifiers consumed")
}

func TestStrokeSnapMiss(t *testing.T) {
	sb, _ := newTestBuilder(testConfig(SnapRaycast))
	view := newTestView()
	_, ok, err := sb.Place(view, at(-5, 0, 0), nil)
	assert.ErrorIs(t, err, ErrNoIntersection)
	assert.False(t, ok)
	assert.Zero(t, sb.Stroke().Len())
	assert.Nil(t, sb.Last())

	g, ok, err := sb.Place(view, at(5, 0, 1), nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec3(0, 0, 1), g.Elements[0].Placement.Normal)
}

func TestStrokeCommitFailure(t *testing.T) {
	sb, _ := newTestBuilder(testConfig(ViewDepth))
	fail := errors.New("scene is read only")
	_, ok, err := sb.Place(newTestView(), at(0, 0, 0), func(g Group) error { return fail })
	assert.ErrorIs(t, err, fail)
	assert.False(t, ok)
	assert.Zero(t, sb.Stroke().Len())
	assert.Nil(t, sb.Last())
}
