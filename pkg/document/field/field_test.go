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

package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yorkie-team/docmodel/pkg/document/field"
	"github.com/yorkie-team/docmodel/pkg/document/sentinel"
)

func TestValue(t *testing.T) {
	t.Run("zero value is absent test", func(t *testing.T) {
		var v field.Value[int64]
		assert.True(t, v.IsAbsent())
		assert.Equal(t, field.Absent, v.Kind())
		assert.Nil(t, v.Interface())

		_, ok := v.Get()
		assert.False(t, ok)
	})

	t.Run("explicit value test", func(t *testing.T) {
		v := field.Set("x")
		got, ok := v.Get()
		assert.True(t, ok)
		assert.Equal(t, "x", got)
		assert.Equal(t, "x", v.Interface())
		assert.Equal(t, field.Explicit, v.Kind())

		zero := field.Set(int64(0))
		assert.Equal(t, field.Explicit, zero.Kind())
		assert.Equal(t, int64(0), zero.Interface())
	})

	t.Run("explicit null differs from absent test", func(t *testing.T) {
		v := field.NullOf[string]()
		assert.Equal(t, field.Null, v.Kind())
		assert.False(t, v.IsAbsent())
		assert.Nil(t, v.Interface())
	})

	t.Run("pointer conversion test", func(t *testing.T) {
		s := "y"
		assert.Equal(t, field.Explicit, field.Of(&s).Kind())
		assert.Equal(t, field.Absent, field.Of[string](nil).Kind())
	})

	t.Run("sentinel values test", func(t *testing.T) {
		inc := field.Increment[int64](100)
		assert.Equal(t, field.Sentinel, inc.Kind())
		assert.Nil(t, inc.Interface())
		assert.Equal(t, sentinel.OpIncrement, inc.Marker().Op())
		assert.Equal(t, int64(100), inc.Marker().Operand())

		union := field.Union("a", "b")
		assert.Equal(t, sentinel.OpArrayUnion, union.Marker().Op())
		assert.Equal(t, []any{"a", "b"}, union.Marker().Elements())

		var _ field.Value[[]string] = union
		assert.Equal(t, sentinel.OpServerTimestamp, field.ServerTimestamp[int]().Marker().Op())
		assert.Equal(t, sentinel.OpDelete, field.Delete[string]().Marker().Op())
	})
}
