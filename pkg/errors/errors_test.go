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

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code   StatusCode
		want   string
		client bool
	}{
		{0, "ok", false},
		{ErrCodeInvalidArgument, "invalid_argument", true},
		{ErrCodeNotFound, "not_found", true},
		{ErrCodeAlreadyExists, "already_exists", true},
		{ErrCodeFailedPrecondition, "failed_precondition", true},
		{ErrCodeInternal, "internal", false},
		{ErrCodeUnavailable, "unavailable", false},
		{StatusCode(999), "code_999", false},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
			assert.Equal(t, tt.client, tt.code.IsClientError())
		})
	}

	assert.True(t, ErrCodeInternal.IsServerError())
	assert.True(t, ErrCodeUnavailable.IsServerError())
	assert.False(t, ErrCodeNotFound.IsServerError())
}

func TestStatusError(t *testing.T) {
	errNotFound := NotFound("document not found").WithCode("ErrDocumentNotFound")

	t.Run("wrapped status test", func(t *testing.T) {
		err := fmt.Errorf("samples/s1: %w", errNotFound)
		assert.ErrorIs(t, err, errNotFound)
		assert.Equal(t, ErrCodeNotFound, StatusOf(err))
		assert.True(t, IsStatus(err, ErrCodeNotFound))
		assert.Equal(t, "ErrDocumentNotFound", CodeOf(err))
		assert.Equal(t, "samples/s1: document not found", err.Error())
	})

	t.Run("plain error test", func(t *testing.T) {
		assert.Equal(t, StatusCode(0), StatusOf(nil))
		assert.Equal(t, ErrCodeInternal, StatusOf(errors.New("boom")))
		assert.Equal(t, "", CodeOf(errors.New("boom")))
	})

	t.Run("constructors test", func(t *testing.T) {
		assert.Equal(t, ErrCodeAlreadyExists, AlreadyExists("x").Status())
		assert.Equal(t, ErrCodeInvalidArgument, InvalidArgument("x").Status())
		assert.Equal(t, ErrCodeFailedPrecondition, FailedPrecond("x").Status())
		assert.Equal(t, ErrCodeInternal, Internal("x").Status())
		assert.Equal(t, ErrCodeUnavailable, Unavailable("x").Status())
	})
}
