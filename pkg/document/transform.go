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

package document

// Transform is a value resolved by the database on write instead of being
// stored verbatim.
type Transform interface {
	TransformName() string
}

// ServerTimestamp sets the field to the time of the write.
type ServerTimestamp struct{}

// Increment adds By (int64 or float64) to the stored number. A missing or
// non-numeric stored value counts as zero.
type Increment struct {
	By any
}

// Maximum keeps the greater of the stored number and Value.
type Maximum struct {
	Value any
}

// Minimum keeps the lesser of the stored number and Value.
type Minimum struct {
	Value any
}

// ArrayUnion appends the elements that the stored array does not contain.
type ArrayUnion struct {
	Elements []any
}

// ArrayRemove removes every stored element equal to one of Elements.
type ArrayRemove struct {
	Elements []any
}

// DeleteField removes the field from the stored document.
type DeleteField struct{}

// TransformName returns the name of the transform.
func (ServerTimestamp) TransformName() string { return "server_timestamp" }

// TransformName returns the name of the transform.
func (Increment) TransformName() string { return "increment" }

// TransformName returns the name of the transform.
func (Maximum) TransformName() string { return "maximum" }

// TransformName returns the name of the transform.
func (Minimum) TransformName() string { return "minimum" }

// TransformName returns the name of the transform.
func (ArrayUnion) TransformName() string { return "array_union" }

// TransformName returns the name of the transform.
func (ArrayRemove) TransformName() string { return "array_remove" }

// TransformName returns the name of the transform.
func (DeleteField) TransformName() string { return "delete_field" }
