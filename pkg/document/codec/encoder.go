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

// Package codec translates payloads into raw documents and raw documents
// back into typed values, following a schema descriptor.
package codec

import (
	"fmt"
	"math"
	"time"

	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/field"
	"github.com/yorkie-team/docmodel/pkg/document/schema"
	"github.com/yorkie-team/docmodel/pkg/document/sentinel"
)

type mode int

const (
	modePlain mode = iota
	modeCreate
	modeUpdate
)

// EncodeCreate encodes a create payload. Defaults fill absent fields, the
// create time is set to the server time and the update time is cleared.
func EncodeCreate(d *schema.Descriptor, p Payload) (document.Raw, error) {
	return encoder{mode: modeCreate}.encode(d, p, "")
}

// EncodeUpdate encodes an update payload. Only present fields are written and
// the update time of the document and of every nested update is set to the
// server time.
func EncodeUpdate(d *schema.Descriptor, p Payload) (document.Raw, error) {
	return encoder{mode: modeUpdate}.encode(d, p, "")
}

// Encode encodes a full record as is. Absent fields are omitted.
func Encode(d *schema.Descriptor, p Payload) (document.Raw, error) {
	return encoder{mode: modePlain}.encode(d, p, "")
}

type encoder struct {
	mode mode
}

func (e encoder) encode(d *schema.Descriptor, p Payload, prefix string) (document.Raw, error) {
	if d == nil {
		return nil, encodeErrorf(prefix, "schema is nil")
	}
	if p == nil {
		return nil, encodeErrorf(prefix, "payload of %s is nil", d.Name())
	}

	raw := document.Raw{}
	for _, f := range d.Fields() {
		fieldPath := join(prefix, f.Name)

		switch f.Role {
		case schema.RoleID:
			continue
		case schema.RoleCreateTime:
			if e.mode == modeCreate {
				raw[f.Name] = document.ServerTimestamp{}
				continue
			}
			if e.mode == modeUpdate {
				continue
			}
		case schema.RoleUpdateTime:
			if e.mode == modeCreate {
				raw[f.Name] = nil
				continue
			}
			if e.mode == modeUpdate {
				raw[f.Name] = document.ServerTimestamp{}
				continue
			}
		}

		state := p.Field(f.Name)
		kind := field.Absent
		if state != nil {
			kind = state.Kind()
		}

		switch kind {
		case field.Absent:
			if e.mode != modeCreate {
				continue
			}
			if f.HasDefault() {
				value, err := e.value(f.Type, f.Default(), fieldPath)
				if err != nil {
					return nil, err
				}
				raw[f.Name] = value
				continue
			}
			if !f.Optional {
				return nil, encodeErrorf(fieldPath, "required field has no value")
			}
		case field.Null:
			if !f.Optional {
				return nil, encodeErrorf(fieldPath, "required field cannot be null")
			}
			raw[f.Name] = nil
		case field.Explicit:
			value, err := e.value(f.Type, state.Interface(), fieldPath)
			if err != nil {
				return nil, err
			}
			if value == nil && !f.Optional {
				return nil, encodeErrorf(fieldPath, "required field cannot be null")
			}
			raw[f.Name] = value
		case field.Sentinel:
			value, err := e.transform(f, state.Marker(), fieldPath)
			if err != nil {
				return nil, err
			}
			raw[f.Name] = value
		default:
			return nil, encodeErrorf(fieldPath, "unknown field state %d", kind)
		}
	}

	return raw, nil
}

// transform converts a marker into the wire transform after checking that the
// declared type of the field supports it.
func (e encoder) transform(f schema.Field, m sentinel.Marker, fieldPath string) (any, error) {
	t := f.Type
	switch op := m.Op(); {
	case op == sentinel.OpServerTimestamp:
		if t.Kind() != schema.KindTimestamp && t.Kind() != schema.KindAny {
			return nil, encodeErrorf(fieldPath, "%s requires a timestamp field, got %s", op, t)
		}
		return document.ServerTimestamp{}, nil
	case op.IsNumeric():
		if !t.IsNumeric() && t.Kind() != schema.KindAny {
			return nil, encodeErrorf(fieldPath, "%s requires a numeric field, got %s", op, t)
		}
		operand := m.Operand()
		if _, isFloat := operand.(float64); isFloat && t.Kind() == schema.KindInt {
			return nil, encodeErrorf(fieldPath, "%s of an int field requires an integer operand", op)
		}
		if t.Kind() == schema.KindFloat {
			operand = toFloat(operand)
		}
		switch op {
		case sentinel.OpIncrement:
			return document.Increment{By: operand}, nil
		case sentinel.OpMaximum:
			return document.Maximum{Value: operand}, nil
		default:
			return document.Minimum{Value: operand}, nil
		}
	case op.IsArray():
		if t.Kind() != schema.KindArray && t.Kind() != schema.KindAny {
			return nil, encodeErrorf(fieldPath, "%s requires an array field, got %s", op, t)
		}
		elemType := schema.Any()
		if elem, ok := t.Elem(); ok {
			elemType = elem
		}
		elements := make([]any, 0, len(m.Elements()))
		for i, elem := range m.Elements() {
			value, err := encoder{mode: modePlain}.value(elemType, elem, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			elements = append(elements, value)
		}
		if op == sentinel.OpArrayUnion {
			return document.ArrayUnion{Elements: elements}, nil
		}
		return document.ArrayRemove{Elements: elements}, nil
	case op == sentinel.OpDelete:
		if e.mode != modeUpdate {
			return nil, encodeErrorf(fieldPath, "%s is only allowed in updates", op)
		}
		if !f.Optional {
			return nil, encodeErrorf(fieldPath, "%s requires an optional field", op)
		}
		return document.DeleteField{}, nil
	default:
		return nil, encodeErrorf(fieldPath, "invalid marker")
	}
}

// value normalizes an explicit value into its wire form and checks it against
// the declared type.
func (e encoder) value(t schema.Type, v any, fieldPath string) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t.Kind() {
	case schema.KindString:
		switch val := v.(type) {
		case string:
			return val, nil
		case *string:
			return derefOrNil(val), nil
		}
	case schema.KindInt:
		if val, ok := v.(*int64); ok {
			return derefOrNil(val), nil
		}
		if i, ok, err := toInt(v); ok {
			if err != nil {
				return nil, encodeErrorf(fieldPath, "%v", err)
			}
			return i, nil
		}
	case schema.KindFloat:
		if val, ok := v.(*float64); ok {
			return derefOrNil(val), nil
		}
		if f := toFloat(v); f != nil {
			return f, nil
		}
	case schema.KindBool:
		switch val := v.(type) {
		case bool:
			return val, nil
		case *bool:
			return derefOrNil(val), nil
		}
	case schema.KindTimestamp:
		switch val := v.(type) {
		case time.Time:
			return val.UTC(), nil
		case *time.Time:
			if val == nil {
				return nil, nil
			}
			return val.UTC(), nil
		}
	case schema.KindBytes:
		if val, ok := v.([]byte); ok {
			return document.CopyValue(val), nil
		}
	case schema.KindMap:
		switch val := v.(type) {
		case map[string]any:
			return anyValue(val, fieldPath)
		case document.Raw:
			return anyValue(map[string]any(val), fieldPath)
		case map[string]string:
			m := make(map[string]any, len(val))
			for k, s := range val {
				m[k] = s
			}
			return m, nil
		}
	case schema.KindArray:
		elements, ok := toSlice(v)
		if !ok {
			return nil, encodeErrorf(fieldPath, "expected %s, got %T; convert with codec.Slice", t, v)
		}
		if elements == nil {
			return nil, nil
		}
		elemType, _ := t.Elem()
		values := make([]any, len(elements))
		for i, elem := range elements {
			value, err := e.element(elemType, elem, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	case schema.KindNested:
		nested, ok := v.(Payload)
		if !ok {
			return nil, encodeErrorf(fieldPath, "expected %s payload, got %T", t, v)
		}
		return e.encode(t.Schema(), nested, fieldPath)
	case schema.KindAny:
		return anyValue(v, fieldPath)
	}

	return nil, encodeErrorf(fieldPath, "expected %s, got %T", t, v)
}

// element encodes an array element. Arrays are written as a whole, so nested
// elements follow the create rules when the array is part of a create and the
// plain rules otherwise.
func (e encoder) element(t schema.Type, v any, fieldPath string) (any, error) {
	if e.mode == modeUpdate {
		return encoder{mode: modePlain}.value(t, v, fieldPath)
	}
	return e.value(t, v, fieldPath)
}

// anyValue normalizes a value of an untyped field.
func anyValue(v any, fieldPath string) (any, error) {
	switch val := v.(type) {
	case nil, string, bool, int64, float64, []byte:
		return document.CopyValue(val), nil
	case int, int8, int16, int32, uint8, uint16, uint32, float32:
		return document.Canonical(val), nil
	case uint, uint64:
		i, _, err := toInt(val)
		if err != nil {
			return nil, encodeErrorf(fieldPath, "%v", err)
		}
		return i, nil
	case time.Time:
		return val.UTC(), nil
	case document.Raw:
		return anyValue(map[string]any(val), fieldPath)
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, elem := range val {
			value, err := anyValue(elem, join(fieldPath, k))
			if err != nil {
				return nil, err
			}
			m[k] = value
		}
		return m, nil
	case document.Transform, Payload:
		return nil, encodeErrorf(fieldPath, "%T is not allowed in an untyped field", v)
	}

	if elements, ok := toSlice(v); ok {
		if elements == nil {
			return nil, nil
		}
		values := make([]any, len(elements))
		for i, elem := range elements {
			value, err := anyValue(elem, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}

	return nil, encodeErrorf(fieldPath, "unsupported type %T", v)
}

// toInt converts an integer of any width to int64. The second return value
// is false if v is not an integer.
func toInt(v any) (int64, bool, error) {
	switch val := v.(type) {
	case int:
		return int64(val), true, nil
	case int8:
		return int64(val), true, nil
	case int16:
		return int64(val), true, nil
	case int32:
		return int64(val), true, nil
	case int64:
		return val, true, nil
	case uint8:
		return int64(val), true, nil
	case uint16:
		return int64(val), true, nil
	case uint32:
		return int64(val), true, nil
	case uint:
		if uint64(val) > math.MaxInt64 {
			return 0, true, fmt.Errorf("%d overflows int64", val)
		}
		return int64(val), true, nil
	case uint64:
		if val > math.MaxInt64 {
			return 0, true, fmt.Errorf("%d overflows int64", val)
		}
		return int64(val), true, nil
	}
	return 0, false, nil
}

// toFloat converts a number to float64, or returns nil if v is not a number.
func toFloat(v any) any {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	}
	if i, ok, err := toInt(v); ok && err == nil {
		return float64(i)
	}
	return nil
}

// toSlice converts the common slice types into []any. The second return value
// is false if v is not a supported slice.
func toSlice(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []string:
		return Slice(val), true
	case []int:
		return Slice(val), true
	case []int64:
		return Slice(val), true
	case []float64:
		return Slice(val), true
	case []bool:
		return Slice(val), true
	case []time.Time:
		return Slice(val), true
	case [][]byte:
		return Slice(val), true
	case []map[string]any:
		return Slice(val), true
	case []Payload:
		return Slice(val), true
	}
	return nil, false
}

func derefOrNil[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
