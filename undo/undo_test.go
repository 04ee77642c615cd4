// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scene is a minimal arena of live ids.
type scene map[int]bool

func (sc scene) add(ids ...int) []int {
	for _, id := range ids {
		sc[id] = true
	}
	return ids
}

func (sc scene) remove(ids []int) error {
	for _, id := range ids {
		if !sc[id] {
			return errors.New("missing")
		}
		delete(sc, id)
	}
	return nil
}

func TestUndoLIFO(t *testing.T) {
	sc := scene{}
	um := New(Stroke, sc.remove)

	um.RecordStroke("S1", sc.add(1, 2, 3))
	um.RecordStroke("S2", sc.add(4, 5))
	assert.Equal(t, 2, um.Len())

	e, err := um.Undo()
	require.NoError(t, err)
	assert.Equal(t, "S2", e.Action)
	assert.Equal(t, scene{1: true, 2: true, 3: true}, sc)

	e, err = um.Undo()
	require.NoError(t, err)
	assert.Equal(t, "S1", e.Action)
	assert.Empty(t, sc)

	_, err = um.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.False(t, um.IsUndoAvail())
}

func TestUndoMixedGranularity(t *testing.T) {
	sc := scene{}
	um := New(Element, sc.remove)
	um.RecordGroup("g1", sc.add(1, 2, 3, 4))
	um.RecordStroke("s", sc.add(5, 6))
	um.RecordGroup("g2", sc.add(7, 8))

	for um.IsUndoAvail() {
		_, err := um.Undo()
		require.NoError(t, err)
	}
	assert.Empty(t, sc, "replaying every entry in reverse restores the empty scene")
}

func TestUndoRecordCopiesAndSkipsEmpty(t *testing.T) {
	um := New[int](Stroke, nil)
	assert.Nil(t, um.RecordStroke("empty", nil))
	assert.Equal(t, 0, um.Len())

	ids := []int{1, 2}
	e := um.RecordGroup("g", ids)
	ids[0] = 99
	assert.Equal(t, []int{1, 2}, e.IDs)
	assert.Equal(t, Element, e.Granularity)
	assert.Same(t, e, um.Peek())

	got, err := um.Undo()
	assert.NoError(t, err)
	assert.Same(t, e, got)
	assert.Nil(t, um.Peek())
}

func TestUndoRemoveError(t *testing.T) {
	sc := scene{}
	um := New(Stroke, sc.remove)
	um.RecordStroke("ghost", []int{42})
	um.RecordStroke("real", sc.add(1))

	_, err := um.Undo()
	assert.NoError(t, err)
	_, err = um.Undo()
	assert.ErrorContains(t, err, "ghost")
	assert.Equal(t, 0, um.Len(), "failed entries are still popped")
}

func TestGranularitiesText(t *testing.T) {
	var g Granularities
	assert.NoError(t, g.UnmarshalText([]byte("element")))
	assert.Equal(t, Element, g)
	b, err := Stroke.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Stroke", string(b))
	assert.Error(t, g.UnmarshalText([]byte("word")))
	assert.Len(t, GranularitiesValues(), int(GranularitiesN))
}
