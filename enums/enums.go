// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces and helpers for enum types,
// used by the enum methods declared in each enumgen.go file.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error
}

// String returns the string representation of the given
// enum value with the given map.
func String[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message. Matching is case-insensitive.
func SetString[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	for k, val := range valueMap {
		if strings.EqualFold(k, s) {
			*i = val
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type %s", s, typeName)
}

// UnmarshalText loads the enum from the given text.
// It is used in generated UnmarshalText methods so that
// configuration files fail loudly on unknown names.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("enums.UnmarshalText: %s: %w", typeName, err)
	}
	return nil
}
