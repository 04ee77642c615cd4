// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/metabrush/brush"
	"cogentcore.org/metabrush/math32"
	"cogentcore.org/metabrush/xyz"
)

const testScript = `
events:
  - kind: mode-on
  - {kind: move, x: 400, y: 300}
  - kind: redraw
  - {kind: press, x: 400, y: 300, pressure: 0.5}
  - {kind: move, x: 500, y: 300, t: 0.1, pressure: 0.5}
  - {kind: move, x: 600, y: 300, t: 0.2, shift: true}
  - {kind: release, x: 600, y: 300, t: 0.3}
  - {kind: view, cursor: {x: 0, y: 0, z: 1}}
  - {kind: press, x: 400, y: 100, t: 1}
  - {kind: press, button: right}
  - kind: undo
  - kind: mode-off
`

func TestReplay(t *testing.T) {
	sp, err := readScript(strings.NewReader(testScript))
	require.NoError(t, err)
	require.Len(t, sp.Events, 12)

	sc := xyz.NewScene("test")
	sc.Camera.Ortho = true
	cfg := brush.NewConfig()
	rp := newReplay(sc, cfg)
	for _, ev := range sp.Events {
		require.NoError(t, rp.apply(ev))
	}
	rp.finish()

	st := rp.session.Stats()
	assert.Equal(t, 1, st.Strokes, "right click finishes the second stroke, undo drops it")
	assert.Equal(t, 3, st.Live, "second stroke undone")
	assert.Equal(t, 1, st.History)
	assert.Equal(t, 1, rp.overlay.loops)
	assert.Len(t, rp.overlay.last, brush.PreviewSegments)
	assert.Equal(t, "Undid stroke (1 elements)", rp.session.Status())
	assert.Equal(t, []string{"Undid stroke (1 elements)"}, rp.statuses)
	assert.Equal(t, 1, sc.Objects.Len())
	assert.False(t, rp.session.Active())
	assert.Equal(t, math32.Vec3(0, 0, 1), rp.session.Cursor)
}

func TestReadScript(t *testing.T) {
	_, err := readScript(strings.NewReader("events:\n  - kind: jump\n"))
	assert.ErrorContains(t, err, `unknown kind "jump"`)
	_, err = readScript(strings.NewReader("events:\n  - kind: move\n    z: 1\n"))
	assert.Error(t, err, "unknown field")

	sp, err := readScript(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sp.Events)
}

func TestReplaySample(t *testing.T) {
	rp := newReplay(xyz.NewScene("test"), nil)
	p := float32(3)
	smp := rp.sample(event{X: 1, Y: 2, T: 1.5, Pressure: &p, Ctrl: true})
	assert.Equal(t, math32.Vec2(1, 2), smp.Pos)
	assert.Equal(t, float32(1), smp.Pressure, "clamped")
	assert.True(t, smp.Mods.Has(brush.Control))
	assert.False(t, smp.Mods.Has(brush.Shift))
	assert.Equal(t, rp.start.Add(1500*time.Millisecond), smp.Time)

	smp = rp.sample(event{})
	assert.Equal(t, brush.DefaultPressure, smp.Pressure)
}
