// seehuhn.de/go/arclink - callout link geometry for radial charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package arclink

import (
	"fmt"
	"reflect"
	"strings"
)

// Accessor extracts a string value, for example the label text, from a
// data item.
type Accessor[T any] interface {
	Value(d T) string
}

// AccessorFunc adapts an ordinary function to the [Accessor] interface.
type AccessorFunc[T any] func(d T) string

// Value implements the [Accessor] interface.
func (f AccessorFunc[T]) Value(d T) string {
	return f(d)
}

// FieldAccessor reads a (possibly nested) struct field of a data item.
// Non-string field values are formatted using [fmt.Sprint].
type FieldAccessor[T any] struct {
	path  string
	index [][]int
}

// NewFieldAccessor returns an accessor for the dotted field path,
// for example "Label" or "Meta.Title".  Each path element matches either
// an exported field name or the name given in the field's json tag.
//
// The path is checked against the type T once, so that Value cannot fail
// later on.
func NewFieldAccessor[T any](path string) (*FieldAccessor[T], error) {
	if path == "" {
		return nil, fmt.Errorf("field path: empty")
	}
	t := reflect.TypeFor[T]()
	acc := &FieldAccessor[T]{path: path}
	for _, name := range strings.Split(path, ".") {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("field path %q: %s is not a struct", path, t)
		}
		f, ok := lookupField(t, name)
		if !ok {
			return nil, fmt.Errorf("field path %q: %s has no exported field %q", path, t, name)
		}
		acc.index = append(acc.index, f.Index)
		t = f.Type
	}
	return acc, nil
}

func lookupField(t reflect.Type, name string) (reflect.StructField, bool) {
	if name == "" {
		return reflect.StructField{}, false
	}
	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return f, true
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// Value implements the [Accessor] interface.
// A nil pointer along the path gives the empty string.
func (a *FieldAccessor[T]) Value(d T) string {
	v := reflect.ValueOf(&d).Elem()
	for _, idx := range a.index {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return ""
			}
			v = v.Elem()
		}
		var err error
		v, err = v.FieldByIndexErr(idx)
		if err != nil {
			// nil embedded pointer
			return ""
		}
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.String {
		return v.String()
	}
	return fmt.Sprint(v.Interface())
}

// String returns the field path.
func (a *FieldAccessor[T]) String() string {
	return a.path
}
