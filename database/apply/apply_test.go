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

package apply_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/apply"
	"github.com/yorkie-team/docmodel/pkg/document"
)

func TestWrite(t *testing.T) {
	now := time.Date(2022, 10, 1, 0, 0, 0, 0, time.UTC)
	existing := document.Raw{
		"name":  "old",
		"count": int64(1),
		"score": 1.5,
		"tags":  []any{"a", "b"},
		"nested": document.Raw{
			"first":  "x",
			"second": int64(2),
		},
		"plain": map[string]any{"k": "v"},
	}

	t.Run("set replaces the document test", func(t *testing.T) {
		doc, err := apply.Write(existing, document.Raw{
			"name":       "new",
			"created_at": document.ServerTimestamp{},
		}, database.ModeSet, now)
		assert.NoError(t, err)
		assert.Equal(t, document.Raw{"name": "new", "created_at": now}, doc)
	})

	t.Run("merge keeps other fields test", func(t *testing.T) {
		doc, err := apply.Write(existing, document.Raw{
			"name":   "new",
			"nested": document.Raw{"first": "y"},
			"plain":  map[string]any{"other": "w"},
		}, database.ModeUpdate, now)
		assert.NoError(t, err)
		assert.Equal(t, "new", doc["name"])
		assert.Equal(t, int64(1), doc["count"])
		assert.Equal(t, document.Raw{"first": "y", "second": int64(2)}, doc["nested"])
		assert.Equal(t, map[string]any{"other": "w"}, doc["plain"])

		// existing is left untouched
		assert.Equal(t, "old", existing["name"])
		assert.Equal(t, "x", existing["nested"].(document.Raw)["first"])
	})

	t.Run("merge into a missing document test", func(t *testing.T) {
		doc, err := apply.Write(nil, document.Raw{
			"nested": document.Raw{"first": document.ServerTimestamp{}},
		}, database.ModeMerge, now)
		assert.NoError(t, err)
		assert.Equal(t, document.Raw{"nested": document.Raw{"first": now}}, doc)
	})

	t.Run("numeric transforms test", func(t *testing.T) {
		doc, err := apply.Write(existing, document.Raw{
			"count":   document.Increment{By: int64(100)},
			"score":   document.Increment{By: int64(1)},
			"missing": document.Increment{By: 2.5},
			"name":    document.Increment{By: int64(3)},
		}, database.ModeUpdate, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(101), doc["count"])
		assert.Equal(t, 2.5, doc["score"])
		assert.Equal(t, 2.5, doc["missing"])
		assert.Equal(t, int64(3), doc["name"])

		doc, err = apply.Write(existing, document.Raw{
			"count": document.Maximum{Value: int64(5)},
			"score": document.Minimum{Value: int64(1)},
		}, database.ModeUpdate, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), doc["count"])
		assert.Equal(t, int64(1), doc["score"])

		doc, err = apply.Write(existing, document.Raw{
			"count": document.Minimum{Value: int64(5)},
			"score": document.Maximum{Value: int64(1)},
		}, database.ModeUpdate, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), doc["count"])
		assert.Equal(t, 1.5, doc["score"])
	})

	t.Run("array transforms test", func(t *testing.T) {
		doc, err := apply.Write(existing, document.Raw{
			"tags":  document.ArrayUnion{Elements: []any{"b", "c", "c"}},
			"other": document.ArrayUnion{Elements: []any{int64(1)}},
		}, database.ModeUpdate, now)
		assert.NoError(t, err)
		assert.Equal(t, []any{"a", "b", "c"}, doc["tags"])
		assert.Equal(t, []any{int64(1)}, doc["other"])

		doc, err = apply.Write(document.Raw{
			"tags": []any{"a", "b", "a", int32(1)},
		}, document.Raw{
			"tags": document.ArrayRemove{Elements: []any{"a", int64(1)}},
		}, database.ModeUpdate, now)
		assert.NoError(t, err)
		assert.Equal(t, []any{"b"}, doc["tags"])
	})

	t.Run("delete and null test", func(t *testing.T) {
		doc, err := apply.Write(existing, document.Raw{
			"name":   document.DeleteField{},
			"score":  nil,
			"nested": document.Raw{"second": document.DeleteField{}},
		}, database.ModeUpdate, now)
		assert.NoError(t, err)
		_, ok := doc["name"]
		assert.False(t, ok)
		v, ok := doc["score"]
		assert.True(t, ok)
		assert.Nil(t, v)
		assert.Equal(t, document.Raw{"first": "x"}, doc["nested"])
	})

	t.Run("equal test", func(t *testing.T) {
		assert.True(t, apply.Equal(int32(1), int64(1)))
		assert.True(t, apply.Equal(
			document.Raw{"a": []any{int32(1)}},
			map[string]any{"a": []any{int64(1)}},
		))
		assert.True(t, apply.Equal(now, now.In(time.FixedZone("KST", 9*60*60))))
		assert.False(t, apply.Equal("1", int64(1)))
	})
}
