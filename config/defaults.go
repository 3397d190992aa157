// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/tint/base/errors"
)

var textUnmarshaler = reflect.TypeFor[encoding.TextUnmarshaler]()

// Defaults sets the values of the given config object
// from `default:` struct field tag values, recursing into
// struct fields without a tag. Errors are automatically
// logged in addition to being returned.
func Defaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.Log(fmt.Errorf("config.Defaults: need a non-nil pointer, not %T", cfg))
	}
	return errors.Log(setFromDefaultTags(v.Elem()))
}

func setFromDefaultTags(val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if f.Type.Kind() == reflect.Struct {
				if err := setFromDefaultTags(fv); err != nil {
					return err
				}
			}
			continue
		}
		if err := setString(fv, def); err != nil {
			return fmt.Errorf("config.Defaults: field %s of %s from %q: %w", f.Name, typ.Name(), def, err)
		}
	}
	return nil
}

// setString sets the value from its string representation.
func setString(v reflect.Value, s string) error {
	if v.CanAddr() && v.Addr().Type().Implements(textUnmarshaler) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
