/*
 * Copyright 2026 The Yorkie Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package codec

import (
	"time"

	"github.com/yorkie-team/docmodel/pkg/document/schema"
)

// Values are the decoded fields of a document, checked against its schema.
// Getters return the zero value for absent fields.
type Values struct {
	desc   *schema.Descriptor
	id     string
	values map[string]any
}

// Schema returns the descriptor the values were decoded with.
func (v *Values) Schema() *schema.Descriptor {
	return v.desc
}

// ID returns the identifier of the document. It is empty for nested values.
func (v *Values) ID() string {
	return v.id
}

// Has returns whether the given field holds a value.
func (v *Values) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

// Any returns the value of the given field in its canonical form.
func (v *Values) Any(name string) any {
	return v.values[name]
}

// String returns the value of a string field.
func (v *Values) String(name string) string {
	s, _ := v.values[name].(string)
	return s
}

// StringPtr returns the value of a string field, or nil if it is absent.
func (v *Values) StringPtr(name string) *string {
	return ptr[string](v.values[name])
}

// Int returns the value of an integer field.
func (v *Values) Int(name string) int64 {
	i, _ := v.values[name].(int64)
	return i
}

// IntPtr returns the value of an integer field, or nil if it is absent.
func (v *Values) IntPtr(name string) *int64 {
	return ptr[int64](v.values[name])
}

// Float returns the value of a float field.
func (v *Values) Float(name string) float64 {
	f, _ := v.values[name].(float64)
	return f
}

// FloatPtr returns the value of a float field, or nil if it is absent.
func (v *Values) FloatPtr(name string) *float64 {
	return ptr[float64](v.values[name])
}

// Bool returns the value of a boolean field.
func (v *Values) Bool(name string) bool {
	b, _ := v.values[name].(bool)
	return b
}

// Time returns the value of a timestamp field.
func (v *Values) Time(name string) time.Time {
	t, _ := v.values[name].(time.Time)
	return t
}

// TimePtr returns the value of a timestamp field, or nil if it is absent.
func (v *Values) TimePtr(name string) *time.Time {
	return ptr[time.Time](v.values[name])
}

// Bytes returns the value of a bytes field.
func (v *Values) Bytes(name string) []byte {
	b, _ := v.values[name].([]byte)
	return b
}

// Array returns the elements of an array field.
func (v *Values) Array(name string) []any {
	a, _ := v.values[name].([]any)
	return a
}

// Strings returns the elements of an array of strings.
func (v *Values) Strings(name string) []string {
	return elements[string](v.Array(name))
}

// Ints returns the elements of an array of integers.
func (v *Values) Ints(name string) []int64 {
	return elements[int64](v.Array(name))
}

// Map returns the value of a map field.
func (v *Values) Map(name string) map[string]any {
	m, _ := v.values[name].(map[string]any)
	return m
}

// Nested returns the values of a nested document field, or nil if it is
// absent.
func (v *Values) Nested(name string) *Values {
	n, _ := v.values[name].(*Values)
	return n
}

// NestedArray returns the values of an array of nested documents.
func (v *Values) NestedArray(name string) []*Values {
	return elements[*Values](v.Array(name))
}

func ptr[T any](v any) *T {
	val, ok := v.(T)
	if !ok {
		return nil
	}
	return &val
}

func elements[T any](values []any) []T {
	if values == nil {
		return nil
	}

	typed := make([]T, 0, len(values))
	for _, v := range values {
		if e, ok := v.(T); ok {
			typed = append(typed, e)
		}
	}
	return typed
}
