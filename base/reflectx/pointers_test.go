// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonPointerValue(t *testing.T) {
	s := &settings{}
	pp := &s
	rv := NonPointerValue(reflect.ValueOf(pp))
	assert.Equal(t, reflect.Struct, rv.Kind())
	assert.True(t, rv.CanSet())
	require.NoError(t, SetFromDefaultTags(pp))
	assert.Equal(t, "brush", s.Name)

	var n *settings
	assert.False(t, NonPointerValue(reflect.ValueOf(n)).IsValid())
	assert.Error(t, SetFromDefaultTags(n))
}

func TestPointerValue(t *testing.T) {
	s := &settings{}
	fv := reflect.ValueOf(s).Elem().FieldByName("Level")
	require.True(t, fv.CanAddr())
	pv := PointerValue(fv)
	assert.Equal(t, reflect.TypeFor[*level](), pv.Type())
	assert.Same(t, &s.Level, pv.Interface())

	require.NoError(t, SetFromString(fv, "four"))
	assert.Equal(t, level(4), s.Level)

	v := reflect.ValueOf(level(2))
	assert.False(t, v.CanAddr())
	cp := PointerValue(v)
	_, ok := cp.Interface().(encoding.TextUnmarshaler)
	assert.True(t, ok)
	assert.Equal(t, level(2), cp.Elem().Interface(), "unaddressable values are copied")

	pv = reflect.ValueOf(&s.Size)
	assert.True(t, PointerValue(pv).Equal(pv))
}
