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

	"github.com/yorkie-team/docmodel/pkg/errors"
)

var (
	// ErrEncode is returned when a payload cannot be encoded into a document.
	ErrEncode = errors.InvalidArgument("encode").WithCode("ErrEncode")

	// ErrDecode is returned when a document cannot be decoded into a record.
	ErrDecode = errors.FailedPrecond("decode").WithCode("ErrDecode")
)

// EncodeError describes a payload that cannot be written, e.g. a marker used
// on a field whose type does not support it. It is raised before any I/O.
type EncodeError struct {
	Path   string
	Reason string
}

// Error returns the error message.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %s", displayPath(e.Path), e.Reason)
}

// Unwrap returns ErrEncode.
func (e *EncodeError) Unwrap() error {
	return ErrEncode
}

// DecodeError describes a stored document that does not match the schema: a
// required field is missing or a value has the wrong shape.
type DecodeError struct {
	Path   string
	Reason string
}

// Error returns the error message.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", displayPath(e.Path), e.Reason)
}

// Unwrap returns ErrDecode.
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

func encodeErrorf(fieldPath, format string, args ...any) error {
	return &EncodeError{Path: fieldPath, Reason: fmt.Sprintf(format, args...)}
}

func decodeErrorf(fieldPath, format string, args ...any) error {
	return &DecodeError{Path: fieldPath, Reason: fmt.Sprintf(format, args...)}
}

func displayPath(p string) string {
	if p == "" {
		return "document"
	}
	return "\"" + p + "\""
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
