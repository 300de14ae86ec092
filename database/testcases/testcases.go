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

// Package testcases contains testcases for database. It is used by database
// implementations to test their own implementations with the same testcases.
package testcases

import (
	"context"
	"sync"
	"testing"
	gotime "time"

	"github.com/stretchr/testify/assert"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// newRef returns the reference of a new document in the testcases collection.
func newRef(t *testing.T) path.DocumentRef {
	ref, err := path.Document("testcases", path.NewID())
	assert.NoError(t, err)
	return ref
}

// read reads the document and returns its data in canonical form.
func read(t *testing.T, db database.Database, ref path.DocumentRef) (*document.Snapshot, map[string]any) {
	snap, err := db.Read(context.Background(), ref)
	assert.NoError(t, err)
	if !snap.Exists {
		return snap, nil
	}
	return snap, document.Canonical(snap.Data).(map[string]any)
}

// RunWriteModesTest runs the write modes test for the given db.
func RunWriteModesTest(t *testing.T, db database.Database) {
	t.Run("read missing document test", func(t *testing.T) {
		ref := newRef(t)
		snap, err := db.Read(context.Background(), ref)
		assert.NoError(t, err)
		assert.False(t, snap.Exists)
		assert.Equal(t, ref.ID(), snap.ID())
		assert.False(t, snap.ReadTime.IsZero())
	})

	t.Run("create and update modes test", func(t *testing.T) {
		ctx := context.Background()
		ref := newRef(t)

		err := db.Write(ctx, ref, document.Raw{"a": int64(1)}, database.ModeUpdate)
		assert.ErrorIs(t, err, database.ErrDocumentNotFound)

		assert.NoError(t, db.Write(ctx, ref, document.Raw{"a": int64(1)}, database.ModeCreate))
		err = db.Write(ctx, ref, document.Raw{"a": int64(2)}, database.ModeCreate)
		assert.ErrorIs(t, err, database.ErrAlreadyExists)

		_, data := read(t, db, ref)
		assert.Equal(t, map[string]any{"a": int64(1)}, data)
	})

	t.Run("set and merge modes test", func(t *testing.T) {
		ctx := context.Background()
		ref := newRef(t)

		assert.NoError(t, db.Write(ctx, ref, document.Raw{"c": true}, database.ModeMerge))
		assert.NoError(t, db.Write(ctx, ref, document.Raw{"a": int64(1), "b": "x"}, database.ModeMerge))
		_, data := read(t, db, ref)
		assert.Equal(t, map[string]any{"a": int64(1), "b": "x", "c": true}, data)

		assert.NoError(t, db.Write(ctx, ref, document.Raw{"b": "y"}, database.ModeSet))
		_, data = read(t, db, ref)
		assert.Equal(t, map[string]any{"b": "y"}, data)

		assert.NoError(t, db.Write(ctx, ref, document.Raw{"c": 1.5, "d": nil}, database.ModeUpdate))
		_, data = read(t, db, ref)
		assert.Equal(t, map[string]any{"b": "y", "c": 1.5, "d": nil}, data)
	})

	t.Run("value types test", func(t *testing.T) {
		ctx := context.Background()
		ref := newRef(t)
		now := gotime.Date(2022, 10, 1, 12, 0, 0, 0, gotime.UTC)

		doc := document.Raw{
			"string": "x",
			"int":    int64(-3),
			"float":  0.25,
			"bool":   false,
			"time":   now,
			"bytes":  []byte("abc"),
			"list":   []any{"a", int64(1), []any{true}},
			"map":    map[string]any{"k": map[string]any{"v": "w"}},
		}
		assert.NoError(t, db.Write(ctx, ref, doc, database.ModeSet))

		_, data := read(t, db, ref)
		assert.Equal(t, document.Canonical(doc), data)
	})
}

// RunTransformsTest runs the transforms test for the given db.
func RunTransformsTest(t *testing.T, db database.Database) {
	t.Run("transforms test", func(t *testing.T) {
		ctx := context.Background()
		ref := newRef(t)

		assert.NoError(t, db.Write(ctx, ref, document.Raw{
			"count": int64(1),
			"score": 1.5,
			"tags":  []any{"a", "b"},
			"name":  "n",
		}, database.ModeCreate))

		assert.NoError(t, db.Write(ctx, ref, document.Raw{
			"count":   document.Increment{By: int64(100)},
			"score":   document.Increment{By: int64(1)},
			"missing": document.Increment{By: int64(5)},
			"tags":    document.ArrayUnion{Elements: []any{"b", "c"}},
			"ts":      document.ServerTimestamp{},
			"name":    document.DeleteField{},
		}, database.ModeUpdate))

		snap, data := read(t, db, ref)
		assert.Equal(t, int64(101), data["count"])
		assert.Equal(t, 2.5, data["score"])
		assert.Equal(t, int64(5), data["missing"])
		assert.Equal(t, []any{"a", "b", "c"}, data["tags"])
		assert.NotContains(t, data, "name")
		if assert.IsType(t, gotime.Time{}, data["ts"]) {
			assert.True(t, snap.UpdateTime.Equal(data["ts"].(gotime.Time)))
		}

		assert.NoError(t, db.Write(ctx, ref, document.Raw{
			"count": document.Maximum{Value: int64(50)},
			"score": document.Minimum{Value: 1.0},
			"tags":  document.ArrayRemove{Elements: []any{"a"}},
		}, database.ModeUpdate))

		_, data = read(t, db, ref)
		assert.Equal(t, int64(101), data["count"])
		assert.Equal(t, 1.0, data["score"])
		assert.Equal(t, []any{"b", "c"}, data["tags"])
	})
}

// RunNestedMergeTest runs the nested merge test for the given db.
func RunNestedMergeTest(t *testing.T, db database.Database) {
	t.Run("nested merge test", func(t *testing.T) {
		ctx := context.Background()
		ref := newRef(t)

		assert.NoError(t, db.Write(ctx, ref, document.Raw{
			"nested": document.Raw{"a": int64(1), "b": int64(2)},
			"plain":  map[string]any{"x": int64(1), "y": int64(2)},
		}, database.ModeSet))

		assert.NoError(t, db.Write(ctx, ref, document.Raw{
			"nested": document.Raw{"a": int64(10)},
			"plain":  map[string]any{"x": int64(5)},
		}, database.ModeUpdate))

		_, data := read(t, db, ref)
		assert.Equal(t, map[string]any{"a": int64(10), "b": int64(2)}, data["nested"])
		assert.Equal(t, map[string]any{"x": int64(5)}, data["plain"])

		assert.NoError(t, db.Write(ctx, ref, document.Raw{
			"nested": document.Raw{
				"b":     document.DeleteField{},
				"count": document.Increment{By: int64(1)},
			},
		}, database.ModeMerge))

		_, data = read(t, db, ref)
		assert.Equal(t, map[string]any{"a": int64(10), "count": int64(1)}, data["nested"])

		assert.NoError(t, db.Write(ctx, ref, document.Raw{"nested": nil}, database.ModeUpdate))
		_, data = read(t, db, ref)
		assert.Contains(t, data, "nested")
		assert.Nil(t, data["nested"])
	})
}

// RunDeleteTest runs the delete test for the given db.
func RunDeleteTest(t *testing.T, db database.Database) {
	t.Run("idempotent delete test", func(t *testing.T) {
		ctx := context.Background()
		ref := newRef(t)

		assert.NoError(t, db.Delete(ctx, ref))

		assert.NoError(t, db.Write(ctx, ref, document.Raw{"a": int64(1)}, database.ModeCreate))
		assert.NoError(t, db.Delete(ctx, ref))
		snap, _ := read(t, db, ref)
		assert.False(t, snap.Exists)

		assert.NoError(t, db.Delete(ctx, ref))

		// a deleted document can be created again
		assert.NoError(t, db.Write(ctx, ref, document.Raw{"a": int64(2)}, database.ModeCreate))
	})
}

// RunMetadataTest runs the metadata test for the given db.
func RunMetadataTest(t *testing.T, db database.Database) {
	t.Run("create and update time test", func(t *testing.T) {
		ctx := context.Background()
		ref := newRef(t)

		assert.NoError(t, db.Write(ctx, ref, document.Raw{"a": int64(1)}, database.ModeCreate))
		created, _ := read(t, db, ref)
		assert.False(t, created.CreateTime.IsZero())
		assert.True(t, created.CreateTime.Equal(created.UpdateTime))

		gotime.Sleep(5 * gotime.Millisecond)
		assert.NoError(t, db.Write(ctx, ref, document.Raw{"a": int64(2)}, database.ModeUpdate))
		updated, _ := read(t, db, ref)
		assert.True(t, created.CreateTime.Equal(updated.CreateTime))
		assert.True(t, updated.UpdateTime.After(created.UpdateTime))

		gotime.Sleep(5 * gotime.Millisecond)
		assert.NoError(t, db.Write(ctx, ref, document.Raw{"b": int64(1)}, database.ModeSet))
		replaced, _ := read(t, db, ref)
		assert.True(t, created.CreateTime.Equal(replaced.CreateTime))
		assert.True(t, replaced.UpdateTime.After(updated.UpdateTime))
	})

	t.Run("caller timestamp precision test", func(t *testing.T) {
		ctx := context.Background()
		ref := newRef(t)
		at := gotime.Date(2020, 1, 1, 0, 0, 0, 123456789, gotime.UTC)

		assert.NoError(t, db.Write(ctx, ref, document.Raw{"at": at}, database.ModeSet))
		snap, err := db.Read(ctx, ref)
		assert.NoError(t, err)
		stored, ok := snap.Data["at"].(gotime.Time)
		assert.True(t, ok)

		// Backends storing BSON keep milliseconds only.
		assert.True(t, stored.Truncate(gotime.Millisecond).Equal(at.Truncate(gotime.Millisecond)))
		assert.False(t, stored.After(at))
	})
}

// RunAsyncTest runs the async test for the given db.
func RunAsyncTest(t *testing.T, db database.Database) {
	t.Run("async operations test", func(t *testing.T) {
		ctx := context.Background()
		async := database.NewAsync(db, 4)
		ref := newRef(t)

		_, err := async.WriteAsync(ctx, ref, document.Raw{"count": int64(0)}, database.ModeCreate).Await(ctx)
		assert.NoError(t, err)

		const n = 10
		wg := sync.WaitGroup{}
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := async.WriteAsync(ctx, ref, document.Raw{
					"count": document.Increment{By: int64(1)},
				}, database.ModeUpdate).Await(ctx)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		snap, err := async.ReadAsync(ctx, ref).Await(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(n), document.Canonical(snap.Data["count"]))

		_, err = async.DeleteAsync(ctx, ref).Await(ctx)
		assert.NoError(t, err)
		snap, err = async.ReadAsync(ctx, ref).Await(ctx)
		assert.NoError(t, err)
		assert.False(t, snap.Exists)
	})

	t.Run("canceled context test", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		async := database.NewAsync(db, 0)
		ref := newRef(t)
		_, err := async.WriteAsync(ctx, ref, document.Raw{"a": int64(1)}, database.ModeSet).Await(context.Background())
		assert.ErrorIs(t, err, context.Canceled)

		snap, err := db.Read(context.Background(), ref)
		assert.NoError(t, err)
		assert.False(t, snap.Exists)
	})
}
