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

// Package errors provides errors that carry a status, so that callers can
// tell a missing document from a conflict or a broken payload without
// knowing which backend produced them.
package errors

import "fmt"

// StatusCode is the class of an error.
type StatusCode int

const (
	// ErrCodeInvalidArgument indicates that the caller passed a payload or a
	// reference that can never succeed.
	ErrCodeInvalidArgument StatusCode = 3

	// ErrCodeNotFound indicates that the document does not exist.
	ErrCodeNotFound StatusCode = 5

	// ErrCodeAlreadyExists indicates that an exclusive create hit an existing
	// document.
	ErrCodeAlreadyExists StatusCode = 6

	// ErrCodeFailedPrecondition indicates that the stored data does not match
	// what the operation expects, e.g. a document violating its schema.
	ErrCodeFailedPrecondition StatusCode = 9

	// ErrCodeInternal indicates a failure of the database itself.
	ErrCodeInternal StatusCode = 13

	// ErrCodeUnavailable indicates that the database cannot be reached.
	ErrCodeUnavailable StatusCode = 14
)

// String returns the string representation of the error code.
func (c StatusCode) String() string {
	switch c {
	case 0:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeAlreadyExists:
		return "already_exists"
	case ErrCodeFailedPrecondition:
		return "failed_precondition"
	case ErrCodeInternal:
		return "internal"
	case ErrCodeUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("code_%d", int(c))
	}
}

// IsClientError returns true if the error code is caused by the caller.
func (c StatusCode) IsClientError() bool {
	switch c {
	case ErrCodeInvalidArgument, ErrCodeNotFound, ErrCodeAlreadyExists, ErrCodeFailedPrecondition:
		return true
	default:
		return false
	}
}

// IsServerError returns true if the error code is caused by the database.
func (c StatusCode) IsServerError() bool {
	switch c {
	case ErrCodeInternal, ErrCodeUnavailable:
		return true
	default:
		return false
	}
}
