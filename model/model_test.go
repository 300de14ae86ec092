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

package model_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/memory"
	"github.com/yorkie-team/docmodel/internal/testmodel"
	"github.com/yorkie-team/docmodel/metrics/prometheus"
	"github.com/yorkie-team/docmodel/model"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/codec"
	"github.com/yorkie-team/docmodel/pkg/document/field"
	"github.com/yorkie-team/docmodel/pkg/document/path"
	"github.com/yorkie-team/docmodel/pkg/document/schema"
	"github.com/yorkie-team/docmodel/pkg/errors"
)

// recorder is a database that records writes and stores nothing.
type recorder struct {
	mu     sync.Mutex
	writes []document.Raw
	modes  []database.Mode
}

func (r *recorder) Write(_ context.Context, _ path.DocumentRef, doc document.Raw, mode database.Mode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, doc)
	r.modes = append(r.modes, mode)
	return nil
}

func (r *recorder) Read(_ context.Context, ref path.DocumentRef) (*document.Snapshot, error) {
	return document.Missing(ref, time.Now()), nil
}

func (r *recorder) Delete(context.Context, path.DocumentRef) error {
	return nil
}

func (r *recorder) Close() error {
	return nil
}

var samples = model.MustRegister[testmodel.Sample](testmodel.SampleSchema)

var comments = model.MustRegister[testmodel.Comment](testmodel.CommentSchema)

func newDB(t *testing.T) *memory.DB {
	db, err := memory.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestRegister(t *testing.T) {
	t.Run("register test", func(t *testing.T) {
		registry := schema.NewRegistry()
		m, err := model.Register[testmodel.Sample](testmodel.SampleSchema, model.WithRegistry(registry))
		assert.NoError(t, err)
		assert.Equal(t, "Sample", m.Name())
		assert.Equal(t, []string{"Sample"}, registry.Names())

		// registering the same descriptor again is allowed
		_, err = model.Register[testmodel.Sample](testmodel.SampleSchema, model.WithRegistry(registry))
		assert.NoError(t, err)
	})

	t.Run("invalid registration test", func(t *testing.T) {
		registry := schema.NewRegistry()

		_, err := model.Register[testmodel.Sample](nil, model.WithRegistry(registry))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		// a descriptor without a location can only be nested
		_, err = model.Register[testmodel.Nested](testmodel.NestedSchema, model.WithRegistry(registry))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		other := schema.New("Sample").Location("others").MustBuild()
		assert.NoError(t, registry.Register(other))
		_, err = model.Register[testmodel.Sample](testmodel.SampleSchema, model.WithRegistry(registry))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
		assert.Equal(t, errors.ErrCodeInvalidArgument, errors.StatusOf(err))
	})

	t.Run("keys test", func(t *testing.T) {
		ref, err := samples.Ref(model.Doc("s1"))
		assert.NoError(t, err)
		assert.Equal(t, "samples/s1", ref.String())

		ref, err = comments.Ref(model.Doc("c1", "s1"))
		assert.NoError(t, err)
		assert.Equal(t, "samples/s1/comments/c1", ref.String())

		_, err = comments.Ref(model.Doc("c1"))
		assert.ErrorIs(t, err, path.ErrInvalidLocation)

		key := comments.NewKey("s1")
		assert.NotEmpty(t, key.ID)
		assert.Equal(t, []string{"s1"}, key.Parents)
		assert.Equal(t, "s1/"+key.ID, key.String())
	})
}

func TestBlockingVerbs(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read round trip test", func(t *testing.T) {
		db := newDB(t)
		key := samples.NewKey()

		err := samples.Create(ctx, db, key, testmodel.SampleCreate{
			StringValue:  field.Set("hello"),
			IntegerValue: field.Set(int64(7)),
			FloatValue:   field.Set(1.5),
			ListValue:    field.Set([]string{"a", "b"}),
			MapValue:     field.Set(map[string]any{"k": "v"}),
			SimpleNested: field.Set(testmodel.NestedCreate{
				FirstField:  field.Set("nested"),
				SecondField: field.Set(int64(2)),
			}),
		})
		require.NoError(t, err)

		snap, err := samples.Read(ctx, db, key)
		require.NoError(t, err)
		assert.True(t, snap.Exists)
		assert.Equal(t, key.ID, snap.ID())
		assert.False(t, snap.CreateTime.IsZero())

		sample, err := snap.Data()
		require.NoError(t, err)
		assert.Equal(t, key.ID, sample.ID)
		assert.Equal(t, "hello", sample.StringValue)
		assert.Equal(t, int64(7), sample.IntegerValue)
		require.NotNil(t, sample.FloatValue)
		assert.Equal(t, 1.5, *sample.FloatValue)
		assert.Equal(t, []string{"a", "b"}, sample.ListValue)
		assert.Equal(t, map[string]any{"k": "v"}, sample.MapValue)
		assert.Equal(t, "nested", sample.SimpleNested.FirstField)
		require.NotNil(t, sample.SimpleNested.SecondField)
		assert.Equal(t, int64(2), *sample.SimpleNested.SecondField)

		// server fields
		assert.NotNil(t, sample.CreateTime)
		assert.Nil(t, sample.UpdateTime)
	})

	t.Run("create with defaults test", func(t *testing.T) {
		db := newDB(t)
		key := samples.NewKey()

		require.NoError(t, samples.Create(ctx, db, key, testmodel.SampleCreate{}))

		snap, err := samples.Read(ctx, db, key)
		require.NoError(t, err)
		sample, err := snap.Data()
		require.NoError(t, err)
		assert.Equal(t, "default", sample.StringValue)
		assert.Equal(t, int64(0), sample.IntegerValue)
		assert.Nil(t, sample.FloatValue)
		assert.Equal(t, []string{}, sample.ListValue)
		assert.Equal(t, "first", sample.SimpleNested.FirstField)
		assert.Nil(t, sample.SimpleNested.SecondField)
	})

	t.Run("read missing document test", func(t *testing.T) {
		db := newDB(t)

		snap, err := samples.Read(ctx, db, model.Doc("missing"))
		assert.NoError(t, err)
		assert.False(t, snap.Exists)
		assert.False(t, snap.ReadTime.IsZero())

		_, err = snap.Data()
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Equal(t, errors.ErrCodeNotFound, errors.StatusOf(err))
	})

	t.Run("create policies test", func(t *testing.T) {
		db := newDB(t)
		key := samples.NewKey()

		require.NoError(t, samples.Create(ctx, db, key, testmodel.SampleCreate{
			StringValue: field.Set("first"),
			FloatValue:  field.Set(2.5),
		}))

		// exclusive create never clobbers
		err := samples.Create(ctx, db, key, testmodel.SampleCreate{}, model.Exclusive())
		assert.ErrorIs(t, err, model.ErrAlreadyExists)

		// default create overwrites
		require.NoError(t, samples.Create(ctx, db, key, testmodel.SampleCreate{
			StringValue: field.Set("second"),
		}))
		snap, err := samples.Read(ctx, db, key)
		require.NoError(t, err)
		sample, err := snap.Data()
		require.NoError(t, err)
		assert.Equal(t, "second", sample.StringValue)
		assert.Nil(t, sample.FloatValue)

		// exclusive create of a new document
		assert.NoError(t, samples.Create(ctx, db, samples.NewKey(), testmodel.SampleCreate{}, model.Exclusive()))
	})

	t.Run("update test", func(t *testing.T) {
		db := newDB(t)
		key := samples.NewKey()

		require.NoError(t, samples.Create(ctx, db, key, testmodel.SampleCreate{
			StringValue:  field.Set("hello"),
			IntegerValue: field.Set(int64(7)),
			ListValue:    field.Set([]string{"a"}),
			SimpleNested: field.Set(testmodel.NestedCreate{
				FirstField:  field.Set("nested"),
				SecondField: field.Set(int64(2)),
			}),
		}))

		require.NoError(t, samples.Update(ctx, db, key, testmodel.SampleUpdate{
			IntegerValue: field.Increment(int64(100)),
			ListValue:    field.Union("a", "b"),
			SimpleNested: field.Set(testmodel.NestedUpdate{FirstField: field.Set("x")}),
		}))

		snap, err := samples.Read(ctx, db, key)
		require.NoError(t, err)
		sample, err := snap.Data()
		require.NoError(t, err)
		assert.Equal(t, "hello", sample.StringValue)
		assert.Equal(t, int64(107), sample.IntegerValue)
		assert.Equal(t, []string{"a", "b"}, sample.ListValue)
		assert.Equal(t, "x", sample.SimpleNested.FirstField)
		require.NotNil(t, sample.SimpleNested.SecondField)
		assert.Equal(t, int64(2), *sample.SimpleNested.SecondField)
		assert.NotNil(t, sample.SimpleNested.UpdateTime)
		require.NotNil(t, sample.UpdateTime)
		assert.Equal(t, snap.UpdateTime, *sample.UpdateTime)

		// explicit null clears an optional field, absent keeps it
		require.NoError(t, samples.Update(ctx, db, key, testmodel.SampleUpdate{
			FloatValue: field.NullOf[float64](),
		}))
		snap, err = samples.Read(ctx, db, key)
		require.NoError(t, err)
		sample, err = snap.Data()
		require.NoError(t, err)
		assert.Nil(t, sample.FloatValue)
		assert.Equal(t, int64(107), sample.IntegerValue)
	})

	t.Run("update missing document test", func(t *testing.T) {
		db := newDB(t)
		key := samples.NewKey()

		err := samples.Update(ctx, db, key, testmodel.SampleUpdate{StringValue: field.Set("x")})
		assert.ErrorIs(t, err, model.ErrNotFound)

		snap, err := samples.Read(ctx, db, key)
		assert.NoError(t, err)
		assert.False(t, snap.Exists)
	})

	t.Run("idempotent delete test", func(t *testing.T) {
		db := newDB(t)
		key := samples.NewKey()

		assert.NoError(t, samples.Delete(ctx, db, key))
		assert.NoError(t, samples.Delete(ctx, db, key))

		require.NoError(t, samples.Create(ctx, db, key, testmodel.SampleCreate{}))
		assert.NoError(t, samples.Delete(ctx, db, key))
		assert.NoError(t, samples.Delete(ctx, db, key))

		snap, err := samples.Read(ctx, db, key)
		assert.NoError(t, err)
		assert.False(t, snap.Exists)
	})

	t.Run("set test", func(t *testing.T) {
		db := newDB(t)
		key := samples.NewKey()
		second := int64(3)

		require.NoError(t, samples.Set(ctx, db, key, testmodel.Sample{
			StringValue:  "set",
			IntegerValue: 3,
			ListValue:    []string{"x"},
			SimpleNested: testmodel.Nested{FirstField: "n", SecondField: &second},
		}))

		snap, err := samples.Read(ctx, db, key)
		require.NoError(t, err)
		sample, err := snap.Data()
		require.NoError(t, err)
		assert.Equal(t, &testmodel.Sample{
			ID:           key.ID,
			StringValue:  "set",
			IntegerValue: 3,
			ListValue:    []string{"x"},
			SimpleNested: testmodel.Nested{FirstField: "n", SecondField: &second},
		}, sample)
	})

	t.Run("encode error is raised before any write test", func(t *testing.T) {
		rec := &recorder{}

		err := samples.Update(ctx, rec, samples.NewKey(), testmodel.SampleUpdate{
			StringValue: field.ServerTimestamp[string](),
		})
		assert.ErrorIs(t, err, codec.ErrEncode)
		assert.Equal(t, errors.ErrCodeInvalidArgument, errors.StatusOf(err))

		err = samples.Create(ctx, rec, samples.NewKey(), nil)
		assert.ErrorIs(t, err, codec.ErrEncode)

		assert.Empty(t, rec.writes)
	})

	t.Run("decode error test", func(t *testing.T) {
		db := newDB(t)
		key := samples.NewKey()
		ref, err := samples.Ref(key)
		require.NoError(t, err)

		// integer_value is missing
		require.NoError(t, db.Write(ctx, ref, document.Raw{
			"string_value":  "hello",
			"list_value":    []any{},
			"simple_nested": document.Raw{"first_field": "x"},
			"create_time":   nil,
			"update_time":   nil,
		}, database.ModeSet))

		_, err = samples.Read(ctx, db, key)
		assert.ErrorIs(t, err, codec.ErrDecode)
		assert.Equal(t, errors.ErrCodeFailedPrecondition, errors.StatusOf(err))
	})

	t.Run("subcollection test", func(t *testing.T) {
		db := newDB(t)
		parent := samples.NewKey()
		key := comments.NewKey(parent.ID)

		require.NoError(t, comments.Create(ctx, db, key, testmodel.CommentWrite{
			Body: field.Set("hi"),
			Tags: field.Set([]string{"go"}),
		}))
		require.NoError(t, comments.Update(ctx, db, key, testmodel.CommentWrite{
			Likes: field.Increment(int64(1)),
		}))

		snap, err := comments.Read(ctx, db, key)
		require.NoError(t, err)
		comment, err := snap.Data()
		require.NoError(t, err)
		assert.Equal(t, "hi", comment.Body)
		assert.Equal(t, int64(1), comment.Likes)
		assert.Equal(t, []string{"go"}, comment.Tags)
		assert.Equal(t, "samples/"+parent.ID+"/comments/"+key.ID, snap.Ref.String())

		// the parent document does not exist, nor is it needed
		parentSnap, err := samples.Read(ctx, db, parent)
		require.NoError(t, err)
		assert.False(t, parentSnap.Exists)
	})
}

func TestAsyncVerbs(t *testing.T) {
	ctx := context.Background()

	t.Run("async round trip test", func(t *testing.T) {
		db := newDB(t)
		async := database.NewAsync(db, 0)
		key := samples.NewKey()

		_, err := samples.CreateAsync(ctx, async, key, testmodel.SampleCreate{
			StringValue: field.Set("async"),
		}).Await(ctx)
		require.NoError(t, err)

		_, err = samples.UpdateAsync(ctx, async, key, testmodel.SampleUpdate{
			IntegerValue: field.Increment(int64(5)),
		}).Await(ctx)
		require.NoError(t, err)

		snap, err := samples.ReadAsync(ctx, async, key).Await(ctx)
		require.NoError(t, err)
		sample, err := snap.Data()
		require.NoError(t, err)
		assert.Equal(t, "async", sample.StringValue)
		assert.Equal(t, int64(5), sample.IntegerValue)

		_, err = samples.DeleteAsync(ctx, async, key).Await(ctx)
		require.NoError(t, err)
		_, err = samples.DeleteAsync(ctx, async, key).Await(ctx)
		require.NoError(t, err)

		snap, err = samples.ReadAsync(ctx, async, key).Await(ctx)
		require.NoError(t, err)
		assert.False(t, snap.Exists)
		_, err = snap.Data()
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("async errors test", func(t *testing.T) {
		db := newDB(t)
		async := database.NewAsync(db, 0)
		key := samples.NewKey()

		_, err := samples.UpdateAsync(ctx, async, key, testmodel.SampleUpdate{
			StringValue: field.Set("x"),
		}).Await(ctx)
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = samples.UpdateAsync(ctx, async, key, testmodel.SampleUpdate{
			StringValue: field.ServerTimestamp[string](),
		}).Await(ctx)
		assert.ErrorIs(t, err, codec.ErrEncode)

		require.NoError(t, samples.Create(ctx, db, key, testmodel.SampleCreate{}))
		_, err = samples.CreateAsync(ctx, async, key, testmodel.SampleCreate{}, model.Exclusive()).Await(ctx)
		assert.ErrorIs(t, err, model.ErrAlreadyExists)
	})

	t.Run("canceled context test", func(t *testing.T) {
		db := newDB(t)
		async := database.NewAsync(db, 0)
		key := samples.NewKey()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := samples.CreateAsync(canceled, async, key, testmodel.SampleCreate{}).Await(ctx)
		assert.ErrorIs(t, err, context.Canceled)

		snap, err := samples.Read(ctx, db, key)
		require.NoError(t, err)
		assert.False(t, snap.Exists)
	})

	t.Run("blocking and non-blocking parity test", func(t *testing.T) {
		blocking := &recorder{}
		nonBlocking := &recorder{}
		async := database.NewAsync(nonBlocking, 0)
		key := samples.NewKey()

		create := testmodel.SampleCreate{
			StringValue: field.Set("parity"),
			ListValue:   field.Set([]string{"a"}),
		}
		update := testmodel.SampleUpdate{
			IntegerValue: field.Increment(int64(100)),
			ListValue:    field.Union("b"),
			SimpleNested: field.Set(testmodel.NestedUpdate{FirstField: field.Set("x")}),
		}
		record := testmodel.Sample{StringValue: "record", SimpleNested: testmodel.Nested{FirstField: "n"}}

		require.NoError(t, samples.Create(ctx, blocking, key, create, model.Merge()))
		require.NoError(t, samples.Update(ctx, blocking, key, update))
		require.NoError(t, samples.Set(ctx, blocking, key, record))

		_, err := samples.CreateAsync(ctx, async, key, create, model.Merge()).Await(ctx)
		require.NoError(t, err)
		_, err = samples.UpdateAsync(ctx, async, key, update).Await(ctx)
		require.NoError(t, err)
		_, err = samples.SetAsync(ctx, async, key, record).Await(ctx)
		require.NoError(t, err)

		assert.Equal(t, blocking.writes, nonBlocking.writes)
		assert.Equal(t, blocking.modes, nonBlocking.modes)
		assert.Equal(t, []database.Mode{database.ModeMerge, database.ModeUpdate, database.ModeSet}, blocking.modes)
	})
}

func TestMetrics(t *testing.T) {
	t.Run("verbs are observed test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		require.NoError(t, err)

		registry := schema.NewRegistry()
		m, err := model.Register[testmodel.Sample](testmodel.SampleSchema,
			model.WithRegistry(registry),
			model.WithMetrics(metrics),
		)
		require.NoError(t, err)

		ctx := context.Background()
		db := newDB(t)
		_, err = m.Read(ctx, db, model.Doc("missing"))
		assert.NoError(t, err)
		assert.ErrorIs(t, m.Update(ctx, db, model.Doc("missing"), testmodel.SampleUpdate{}), model.ErrNotFound)

		families, err := metrics.Registry().Gather()
		require.NoError(t, err)

		results := map[string]float64{}
		for _, family := range families {
			if family.GetName() != "docmodel_model_verb_total" {
				continue
			}
			for _, metric := range family.GetMetric() {
				labels := map[string]string{}
				for _, label := range metric.GetLabel() {
					labels[label.GetName()] = label.GetValue()
				}
				results[labels["verb"]+"/"+labels["result"]] = metric.GetCounter().GetValue()
			}
		}
		assert.Equal(t, map[string]float64{"read/ok": 1, "update/not_found": 1}, results)
	})
}
