// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags. Nested structs without a
// default tag are set recursively. Slice fields take a comma-separated list.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() == reflect.Pointer && ov.IsNil() {
		return nil
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, not %v", val.Type())
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if NonPointerType(f.Type).Kind() == reflect.Struct && (!ok || def == "") {
			if fv.Kind() == reflect.Pointer && fv.IsNil() {
				continue
			}
			if err := SetFromDefaultTags(PointerValue(fv).Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s in %s: %w", f.Name, typ.Name(), err))
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// SetFromString sets the given settable value from its string representation,
// for the basic kinds and slices of them.
func SetFromString(v reflect.Value, s string) error {
	if !v.CanSet() {
		return fmt.Errorf("value of type %v is not settable", v.Type())
	}
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
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
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	case reflect.Slice:
		if s == "" {
			v.Set(reflect.MakeSlice(v.Type(), 0, 0))
			return nil
		}
		parts := strings.Split(s, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetFromString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
