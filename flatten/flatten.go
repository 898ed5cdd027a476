// Copyright (c) 2019 Nguyễn Quốc Đính
// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Nguyễn Quốc Đính, Jonas Plum
//
// This code was adapted from
// https://github.com/nqd/flat/blob/master/flat.go

// Package flatten provides functions to flatten and unflatten Go maps.
package flatten

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/imdario/mergo"
)

// Flatten returns a map one level deep regardless of how nested the original
// map was. Nested keys are joined with ".".
func Flatten(nested map[string]interface{}) (map[string]interface{}, error) {
	flat := map[string]interface{}{}
	err := flattenValue(flat, "", nested)
	return flat, err
}

func flattenValue(flat map[string]interface{}, prefix string, nested interface{}) error {
	if nested == nil {
		return nil
	}

	value := reflect.ValueOf(nested)
	switch value.Type().Kind() {
	case reflect.Map:
		for _, k := range value.MapKeys() {
			key := fmt.Sprint(k.Interface())
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flattenValue(flat, key, value.MapIndex(k).Interface()); err != nil {
				return err
			}
		}
	case reflect.Slice:
		for i := 0; i < value.Len(); i++ {
			key := strconv.Itoa(i)
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flattenValue(flat, key, value.Index(i).Interface()); err != nil {
				return err
			}
		}
	default:
		flat[prefix] = nested
	}
	return nil
}

// Unflatten expands a flattened map into a nested map. Keys are split at ".",
// consecutive integer keys turn back into lists.
func Unflatten(flat map[string]interface{}) (map[string]interface{}, error) {
	nested := map[string]interface{}{}

	for key, value := range flat {
		branch := nest(key, value).(map[string]interface{})
		if err := mergo.Merge(&nested, branch); err != nil {
			return nil, err
		}
	}

	walk(reflect.ValueOf(nested))

	return nested, nil
}

func nest(key string, value interface{}) interface{} {
	nested := value
	parts := strings.Split(key, ".")
	for i := len(parts) - 1; i >= 0; i-- {
		nested = map[string]interface{}{parts[i]: nested}
	}
	return nested
}

// walk recursively replaces maps with integer keys 0..n-1 by lists.
func walk(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Array, reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			element := v.Index(i)
			element.Set(walk(element))
		}
		return v
	case reflect.Map:
		mapKeys := v.MapKeys()

		isList := true
		list := make([]interface{}, len(mapKeys))
		for _, k := range mapKeys {
			j, err := strconv.Atoi(k.String())
			if err != nil || j > len(mapKeys)-1 || list[j] != nil {
				isList = false
				break
			}
			list[j] = v.MapIndex(k).Interface()
		}

		for _, k := range v.MapKeys() {
			v.SetMapIndex(k, walk(v.MapIndex(k)))
		}
		if isList {
			return reflect.ValueOf(list)
		}
		return v
	default:
		return v
	}
}
