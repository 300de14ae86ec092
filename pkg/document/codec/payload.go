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

import "github.com/yorkie-team/docmodel/pkg/document/field"

// Payload is implemented by the create and update projections of a record,
// and optionally by the record itself. The encoder asks it for the state of
// every declared field; a nil State counts as absent.
type Payload interface {
	Field(name string) field.State
}

// Decodable is implemented by pointers to records reconstructed from decoded
// values.
type Decodable interface {
	DecodeValues(v *Values) error
}

// States is a Payload backed by a map, convenient for ad hoc writes.
type States map[string]field.State

// Field returns the state of the given field.
func (s States) Field(name string) field.State {
	return s[name]
}

// Unmarshal reconstructs a new record from the given values.
func Unmarshal[R any, PR interface {
	*R
	Decodable
}](v *Values) (*R, error) {
	r := PR(new(R))
	if err := r.DecodeValues(v); err != nil {
		return nil, err
	}
	return (*R)(r), nil
}

// Slice converts a typed slice into the []any form accepted for array fields.
func Slice[E any](elements []E) []any {
	if elements == nil {
		return nil
	}

	values := make([]any, len(elements))
	for i, e := range elements {
		values[i] = e
	}
	return values
}
