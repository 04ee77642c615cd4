// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	om.Add("b", 2)
	om.Add("c", 3)
	om.Add("d", 4)
	om.Add("b", 20)

	assert.Equal(t, 4, om.Len())
	assert.Equal(t, []string{"a", "b", "c", "d"}, om.Keys())
	assert.Equal(t, []int{1, 20, 3, 4}, om.Values())

	v, ok := om.ValueByKeyTry("b")
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	assert.True(t, om.DeleteKey("b"))
	assert.False(t, om.DeleteKey("b"))
	assert.False(t, om.Has("b"))
	idx, ok := om.IndexByKeyTry("c")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestDeleteKeys(t *testing.T) {
	var om Map[int, string]
	for i, s := range []string{"a", "b", "c", "d", "e"} {
		om.Add(i, s)
	}
	assert.Equal(t, 2, om.DeleteKeys(3, 1, 9))
	assert.Equal(t, []string{"a", "c", "e"}, om.Values())
	for i, k := range om.Keys() {
		idx, ok := om.IndexByKeyTry(k)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, 0, om.DeleteKeys())

	var nilmap *Map[int, int]
	assert.Equal(t, 0, nilmap.Len())
}
