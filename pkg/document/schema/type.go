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

package schema

import "fmt"

// Kind is the kind of a field type.
type Kind int

// Below are the kinds of field types.
const (
	KindAny Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindTimestamp
	KindBytes
	KindArray
	KindMap
	KindNested
)

var kindNames = map[Kind]string{
	KindAny:       "any",
	KindString:    "string",
	KindInt:       "int",
	KindFloat:     "float",
	KindBool:      "bool",
	KindTimestamp: "timestamp",
	KindBytes:     "bytes",
	KindArray:     "array",
	KindMap:       "map",
	KindNested:    "nested",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is the declared type of a field.
type Type struct {
	kind   Kind
	elem   *Type
	schema *Descriptor
}

// Any returns a type that accepts any value.
func Any() Type { return Type{kind: KindAny} }

// String returns the string type.
func String() Type { return Type{kind: KindString} }

// Int returns the integer type.
func Int() Type { return Type{kind: KindInt} }

// Float returns the floating point type. Integers are accepted as floats.
func Float() Type { return Type{kind: KindFloat} }

// Bool returns the boolean type.
func Bool() Type { return Type{kind: KindBool} }

// Timestamp returns the type of absolute instants.
func Timestamp() Type { return Type{kind: KindTimestamp} }

// Bytes returns the type of byte strings.
func Bytes() Type { return Type{kind: KindBytes} }

// Map returns the type of free-form maps. Maps are replaced as a whole on
// merge writes.
func Map() Type { return Type{kind: KindMap} }

// Array returns the type of sequences of elem.
func Array(elem Type) Type {
	return Type{kind: KindArray, elem: &elem}
}

// Nested returns the type of sub-documents described by d.
func Nested(d *Descriptor) Type {
	return Type{kind: KindNested, schema: d}
}

// Kind returns the kind of this type.
func (t Type) Kind() Kind {
	return t.kind
}

// Elem returns the element type of an array type.
func (t Type) Elem() (Type, bool) {
	if t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// Schema returns the descriptor of a nested type.
func (t Type) Schema() *Descriptor {
	return t.schema
}

// IsNumeric returns whether values of this type are numbers.
func (t Type) IsNumeric() bool {
	return t.kind == KindInt || t.kind == KindFloat
}

// String returns a readable form of this type.
func (t Type) String() string {
	switch t.kind {
	case KindArray:
		if t.elem == nil {
			return "array<?>"
		}
		return "array<" + t.elem.String() + ">"
	case KindNested:
		if t.schema == nil {
			return "nested<?>"
		}
		return "nested<" + t.schema.Name() + ">"
	default:
		return t.kind.String()
	}
}
