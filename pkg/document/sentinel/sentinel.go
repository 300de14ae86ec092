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

// Package sentinel provides markers that stand in for values computed or
// merged by the database on write.
package sentinel

import "fmt"

// Op is the operation of a marker.
type Op int

// Below are the operations that a marker can carry.
const (
	OpServerTimestamp Op = iota + 1
	OpIncrement
	OpMaximum
	OpMinimum
	OpArrayUnion
	OpArrayRemove
	OpDelete
)

var opNames = map[Op]string{
	OpServerTimestamp: "server_timestamp",
	OpIncrement:       "increment",
	OpMaximum:         "maximum",
	OpMinimum:         "minimum",
	OpArrayUnion:      "array_union",
	OpArrayRemove:     "array_remove",
	OpDelete:          "delete",
}

// String returns the name of the operation.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// IsNumeric returns whether the operation applies to numeric fields only.
func (o Op) IsNumeric() bool {
	return o == OpIncrement || o == OpMaximum || o == OpMinimum
}

// IsArray returns whether the operation applies to array fields only.
func (o Op) IsArray() bool {
	return o == OpArrayUnion || o == OpArrayRemove
}

// Number is the set of types usable as a numeric operand.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

// Marker is a tagged value resolved by the database at write time. The zero
// Marker is invalid.
type Marker struct {
	op       Op
	operand  any
	elements []any
}

// ServerTimestamp returns a marker that sets the field to the server time.
func ServerTimestamp() Marker {
	return Marker{op: OpServerTimestamp}
}

// Delete returns a marker that removes the field from the document.
func Delete() Marker {
	return Marker{op: OpDelete}
}

// Increment returns a marker that atomically adds delta to the field.
func Increment[N Number](delta N) Marker {
	return Marker{op: OpIncrement, operand: numeric(delta)}
}

// Maximum returns a marker that sets the field to the greater of its current
// value and v.
func Maximum[N Number](v N) Marker {
	return Marker{op: OpMaximum, operand: numeric(v)}
}

// Minimum returns a marker that sets the field to the lesser of its current
// value and v.
func Minimum[N Number](v N) Marker {
	return Marker{op: OpMinimum, operand: numeric(v)}
}

// ArrayUnion returns a marker that appends the given values to an array field,
// skipping the values that are already present.
func ArrayUnion(values ...any) Marker {
	return Marker{op: OpArrayUnion, elements: values}
}

// ArrayRemove returns a marker that removes all the given values from an array
// field.
func ArrayRemove(values ...any) Marker {
	return Marker{op: OpArrayRemove, elements: values}
}

// numeric converts v into int64 or float64.
func numeric[N Number](v N) any {
	half := N(1)
	half /= 2
	if half != 0 {
		return float64(v)
	}
	return int64(v)
}

// Op returns the operation of this marker.
func (m Marker) Op() Op {
	return m.op
}

// IsValid returns whether this marker carries an operation.
func (m Marker) IsValid() bool {
	return m.op != 0
}

// Operand returns the numeric operand of Increment, Maximum and Minimum as
// int64 or float64.
func (m Marker) Operand() any {
	return m.operand
}

// Elements returns the values of ArrayUnion and ArrayRemove.
func (m Marker) Elements() []any {
	return m.elements
}

// String returns a readable form of this marker.
func (m Marker) String() string {
	switch {
	case m.op.IsNumeric():
		return fmt.Sprintf("%s(%v)", m.op, m.operand)
	case m.op.IsArray():
		return fmt.Sprintf("%s(%v)", m.op, m.elements)
	default:
		return m.op.String()
	}
}
