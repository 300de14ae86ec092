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
	"fmt"
	"time"

	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/schema"
)

// Decode reconstructs the values of an existing document. Every declared
// field is checked against the schema: a missing required field or a value of
// the wrong shape is a DecodeError. Defaults are never substituted.
func Decode(d *schema.Descriptor, snap *document.Snapshot) (*Values, error) {
	if d == nil {
		return nil, decodeErrorf("", "schema is nil")
	}
	if snap == nil || !snap.Exists {
		return nil, decodeErrorf("", "document does not exist")
	}

	return DecodeRaw(d, snap.Data, snap.ID())
}

// DecodeRaw reconstructs the values of the given document data. id fills the
// identifier field, if the schema declares one.
func DecodeRaw(d *schema.Descriptor, data document.Raw, id string) (*Values, error) {
	return decodeFields(d, map[string]any(data), id, "")
}

func decodeFields(d *schema.Descriptor, data map[string]any, id, prefix string) (*Values, error) {
	values := &Values{
		desc:   d,
		id:     id,
		values: make(map[string]any, d.Len()),
	}

	for _, f := range d.Fields() {
		fieldPath := join(prefix, f.Name)
		if f.Role == schema.RoleID {
			values.values[f.Name] = id
			continue
		}

		stored, ok := data[f.Name]
		if !ok || stored == nil {
			if f.Optional || f.IsServerManaged() {
				continue
			}
			if !ok {
				return nil, decodeErrorf(fieldPath, "required field is missing")
			}
			return nil, decodeErrorf(fieldPath, "required field is null")
		}

		value, err := decodeValue(f.Type, stored, fieldPath)
		if err != nil {
			return nil, err
		}
		values.values[f.Name] = value
	}

	return values, nil
}

func decodeValue(t schema.Type, v any, fieldPath string) (any, error) {
	switch t.Kind() {
	case schema.KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case schema.KindInt:
		if i, ok, err := toInt(v); ok {
			if err != nil {
				return nil, decodeErrorf(fieldPath, "%v", err)
			}
			return i, nil
		}
	case schema.KindFloat:
		if f := toFloat(v); f != nil {
			return f, nil
		}
	case schema.KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case schema.KindTimestamp:
		if ts, ok := v.(time.Time); ok {
			return ts.UTC(), nil
		}
	case schema.KindBytes:
		if b, ok := v.([]byte); ok {
			return document.CopyValue(b), nil
		}
	case schema.KindMap:
		if m, ok := toMap(v); ok {
			return document.Canonical(m), nil
		}
	case schema.KindArray:
		elements, ok := v.([]any)
		if !ok {
			break
		}
		elemType, _ := t.Elem()
		values := make([]any, len(elements))
		for i, elem := range elements {
			elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
			if elem == nil {
				values[i] = nil
				continue
			}
			value, err := decodeValue(elemType, elem, elemPath)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	case schema.KindNested:
		if m, ok := toMap(v); ok {
			return decodeFields(t.Schema(), m, "", fieldPath)
		}
	case schema.KindAny:
		return document.Canonical(document.CopyValue(v)), nil
	}

	return nil, decodeErrorf(fieldPath, "expected %s, got %s", t, describe(v))
}

func toMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case document.Raw:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

func describe(v any) string {
	switch v.(type) {
	case map[string]any, document.Raw:
		return "map"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}
