// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// SetFromDefaultTags sets the fields of the given struct pointer
// from the values of their `default:` struct tags, descending into
// struct fields that have no tag of their own. Fields that implement
// [encoding.TextUnmarshaler], such as enums, are set from their text.
func SetFromDefaultTags(v any) error {
	rv := NonPointerValue(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct || !rv.CanSet() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a pointer to a struct, not %T", v)
	}
	return setFromDefaultTags(rv)
}

func setFromDefaultTags(rv reflect.Value) error {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		def, ok := sf.Tag.Lookup("default")
		if !ok {
			if fv.Kind() == reflect.Struct {
				if err := setFromDefaultTags(fv); err != nil {
					return err
				}
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			return fmt.Errorf("reflectx.SetFromDefaultTags: field %s.%s: %w", typ.Name(), sf.Name, err)
		}
	}
	return nil
}

// SetFromString sets the settable value from its string representation.
func SetFromString(fv reflect.Value, s string) error {
	if tu, ok := PointerValue(fv).Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetUint(n)
	default:
		return fmt.Errorf("unsupported kind %v", fv.Kind())
	}
	return nil
}
