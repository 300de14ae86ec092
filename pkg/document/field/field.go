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

// Package field provides the three-state field model used by create and update
// payloads: a field is absent, holds an explicit value, or holds a marker that
// the database resolves on write.
package field

import (
	"fmt"

	"github.com/yorkie-team/docmodel/pkg/document/sentinel"
)

// Kind is the runtime state of a field.
type Kind int

// Below are the states a field can be in.
const (
	// Absent fields are left out of the written document.
	Absent Kind = iota

	// Explicit fields are written verbatim.
	Explicit

	// Null fields are written as an explicit null, clearing the stored value.
	Null

	// Sentinel fields are translated to a database transform.
	Sentinel
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Explicit:
		return "explicit"
	case Null:
		return "null"
	case Sentinel:
		return "sentinel"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// State is the untyped view of a field consumed by the encoder.
type State interface {
	// Kind returns the state of the field.
	Kind() Kind

	// Interface returns the explicit value, or nil for other states.
	Interface() any

	// Marker returns the marker of a sentinel field.
	Marker() sentinel.Marker
}

// Value is a field of type T in one of the states of Kind. The zero Value is
// Absent.
type Value[T any] struct {
	kind   Kind
	value  T
	marker sentinel.Marker
}

// Set returns an explicit value.
func Set[T any](v T) Value[T] {
	return Value[T]{kind: Explicit, value: v}
}

// Of returns an explicit value of *v, or an absent value if v is nil.
func Of[T any](v *T) Value[T] {
	if v == nil {
		return Value[T]{}
	}
	return Set(*v)
}

// NullOf returns a value that clears the field.
func NullOf[T any]() Value[T] {
	return Value[T]{kind: Null}
}

// Mark returns a value holding the given marker.
func Mark[T any](m sentinel.Marker) Value[T] {
	return Value[T]{kind: Sentinel, marker: m}
}

// ServerTimestamp returns a value set to the server time on write.
func ServerTimestamp[T any]() Value[T] {
	return Mark[T](sentinel.ServerTimestamp())
}

// Delete returns a value that removes the field from the stored document.
func Delete[T any]() Value[T] {
	return Mark[T](sentinel.Delete())
}

// Increment returns a value that adds delta to the stored number.
func Increment[N sentinel.Number](delta N) Value[N] {
	return Mark[N](sentinel.Increment(delta))
}

// Maximum returns a value that keeps the greater of the stored number and v.
func Maximum[N sentinel.Number](v N) Value[N] {
	return Mark[N](sentinel.Maximum(v))
}

// Minimum returns a value that keeps the lesser of the stored number and v.
func Minimum[N sentinel.Number](v N) Value[N] {
	return Mark[N](sentinel.Minimum(v))
}

// Union returns a value that appends the given elements to the stored array
// unless they are already present.
func Union[E any](elements ...E) Value[[]E] {
	return Mark[[]E](sentinel.ArrayUnion(toAny(elements)...))
}

// Remove returns a value that removes the given elements from the stored
// array.
func Remove[E any](elements ...E) Value[[]E] {
	return Mark[[]E](sentinel.ArrayRemove(toAny(elements)...))
}

func toAny[E any](elements []E) []any {
	values := make([]any, len(elements))
	for i, e := range elements {
		values[i] = e
	}
	return values
}

// Kind returns the state of this value.
func (v Value[T]) Kind() Kind {
	return v.kind
}

// IsAbsent returns whether this value is left out of writes.
func (v Value[T]) IsAbsent() bool {
	return v.kind == Absent
}

// Get returns the explicit value. The second return value is false for other
// states.
func (v Value[T]) Get() (T, bool) {
	if v.kind != Explicit {
		var zero T
		return zero, false
	}
	return v.value, true
}

// Interface returns the explicit value as any, or nil for other states.
func (v Value[T]) Interface() any {
	if v.kind != Explicit {
		return nil
	}
	return v.value
}

// Marker returns the marker of a sentinel value.
func (v Value[T]) Marker() sentinel.Marker {
	return v.marker
}

// String returns a readable form of this value.
func (v Value[T]) String() string {
	switch v.kind {
	case Explicit:
		return fmt.Sprintf("%v", v.value)
	case Sentinel:
		return v.marker.String()
	default:
		return v.kind.String()
	}
}
