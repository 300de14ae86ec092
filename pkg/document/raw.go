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

// Package document provides the raw shape of documents exchanged with the
// database: field mappings, snapshots and write transforms.
package document

import (
	"sort"
	"time"
)

// Raw is the field mapping of a document. Nested documents written by the
// encoder are Raw values too; merge writes descend into them while plain
// map[string]any values are replaced as a whole.
type Raw map[string]any

// Keys returns the sorted field names of this document.
func (r Raw) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DeepCopy returns a copy of this document. Nested documents, maps and slices
// are copied too.
func (r Raw) DeepCopy() Raw {
	if r == nil {
		return nil
	}

	copied := make(Raw, len(r))
	for k, v := range r {
		copied[k] = CopyValue(v)
	}
	return copied
}

// CopyValue returns a deep copy of the given document value.
func CopyValue(v any) any {
	switch val := v.(type) {
	case Raw:
		return val.DeepCopy()
	case map[string]any:
		copied := make(map[string]any, len(val))
		for k, e := range val {
			copied[k] = CopyValue(e)
		}
		return copied
	case []any:
		copied := make([]any, len(val))
		for i, e := range val {
			copied[i] = CopyValue(e)
		}
		return copied
	case []byte:
		copied := make([]byte, len(val))
		copy(copied, val)
		return copied
	case ArrayUnion:
		return ArrayUnion{Elements: CopyValue(val.Elements).([]any)}
	case ArrayRemove:
		return ArrayRemove{Elements: CopyValue(val.Elements).([]any)}
	default:
		return v
	}
}

// Canonical converts a stored value into its canonical read form: nested
// documents become map[string]any, integers become int64, floats become
// float64 and times are in UTC.
func Canonical(v any) any {
	switch val := v.(type) {
	case Raw:
		return Canonical(map[string]any(val))
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = Canonical(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = Canonical(e)
		}
		return out
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case float32:
		return float64(val)
	case time.Time:
		return val.UTC()
	default:
		return v
	}
}
