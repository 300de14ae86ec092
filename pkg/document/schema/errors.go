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

import (
	"fmt"

	"github.com/yorkie-team/docmodel/pkg/errors"
)

// ErrInvalidSchema is returned when a schema is misdeclared.
var ErrInvalidSchema = errors.InvalidArgument("invalid schema").WithCode("ErrInvalidSchema")

// SchemaError describes a misdeclared schema. It is raised when the schema is
// built or registered, never when it is used.
type SchemaError struct {
	Schema string
	Field  string
	Reason string
}

// Error returns the error message.
func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %q: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("schema %q: field %q: %s", e.Schema, e.Field, e.Reason)
}

// Unwrap returns ErrInvalidSchema.
func (e *SchemaError) Unwrap() error {
	return ErrInvalidSchema
}
