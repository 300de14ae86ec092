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

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yorkie-team/docmodel/pkg/document/schema"
)

func newNested() *schema.Descriptor {
	return schema.New("Nested").
		Field("first_field", schema.String()).
		Optional("second_field", schema.Int()).
		UpdateTime("update_time").
		MustBuild()
}

func TestBuilder(t *testing.T) {
	t.Run("build descriptor test", func(t *testing.T) {
		nested := newNested()
		desc, err := schema.New("Sample").
			Location("users/{}/samples").
			Field("id", schema.String()).ID("id").
			Field("integer_value", schema.Int()).
			Optional("list_value", schema.Array(schema.String())).
			Field("simple_nested", schema.Nested(nested)).
			Default(func() any { return nil }).
			CreateTime("create_time").
			UpdateTime("update_time").
			Build()
		assert.NoError(t, err)

		assert.Equal(t, "Sample", desc.Name())
		assert.Equal(t, "id", desc.IDField())
		assert.Equal(t, "create_time", desc.CreateTimeField())
		assert.Equal(t, "update_time", desc.UpdateTimeField())
		assert.Equal(t, 6, desc.Len())

		var names []string
		for _, f := range desc.Fields() {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{
			"id", "integer_value", "list_value", "simple_nested", "create_time", "update_time",
		}, names)

		id, ok := desc.Field("id")
		assert.True(t, ok)
		assert.Equal(t, schema.RoleID, id.Role)

		ct, ok := desc.Field("create_time")
		assert.True(t, ok)
		assert.True(t, ct.IsServerManaged())
		assert.True(t, ct.Optional)
		assert.Equal(t, schema.KindTimestamp, ct.Type.Kind())

		sn, ok := desc.Field("simple_nested")
		assert.True(t, ok)
		assert.Equal(t, nested, sn.Type.Schema())
		assert.True(t, sn.HasDefault())

		lv, _ := desc.Field("list_value")
		elem, ok := lv.Type.Elem()
		assert.True(t, ok)
		assert.Equal(t, schema.KindString, elem.Kind())
		assert.Equal(t, "array<string>", lv.Type.String())

		doc, err := desc.Document("s1", "u1")
		assert.NoError(t, err)
		assert.Equal(t, "users/u1/samples/s1", doc.String())
	})

	t.Run("undeclared identifier test", func(t *testing.T) {
		_, err := schema.New("Sample").
			Field("name", schema.String()).
			ID("id").
			Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		var schemaErr *schema.SchemaError
		assert.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "id", schemaErr.Field)
	})

	t.Run("non-string identifier test", func(t *testing.T) {
		_, err := schema.New("Sample").
			Field("id", schema.Int()).ID("id").
			Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})

	t.Run("server-managed field declared as settable test", func(t *testing.T) {
		_, err := schema.New("Sample").
			Field("update_time", schema.Timestamp()).
			UpdateTime("update_time").
			Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
		assert.Contains(t, err.Error(), "server-managed")

		_, err = schema.New("Sample").
			CreateTime("create_time").
			Field("create_time", schema.Timestamp()).
			Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})

	t.Run("misdeclared fields test", func(t *testing.T) {
		_, err := schema.New("Sample").
			Field("a", schema.String()).
			Field("a", schema.Int()).
			Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		_, err = schema.New("Sample").Field("", schema.String()).Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		_, err = schema.New("Sample").Field("n", schema.Nested(nil)).Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		_, err = schema.New("Sample").DefaultValue(1).Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		_, err = schema.New("Sample").CreateTime("t").DefaultValue(1).Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		_, err = schema.New("Sample").CreateTime("t").UpdateTime("t").Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		_, err = schema.New("Sample").CreateTime("created").CreateTime("created_at").Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
		assert.ErrorContains(t, err, `create time already declared as "created"`)

		_, err = schema.New("Sample").UpdateTime("updated").UpdateTime("updated_at").Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
		assert.ErrorContains(t, err, `update time already declared as "updated"`)

		_, err = schema.New("Sample").Location("users/{}").Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)

		_, err = schema.New("").Build()
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})

	t.Run("must build panics test", func(t *testing.T) {
		assert.Panics(t, func() {
			schema.New("Sample").Field("id", schema.Bool()).ID("id").MustBuild()
		})
	})
}

func TestRegistry(t *testing.T) {
	t.Run("register and lookup test", func(t *testing.T) {
		registry := schema.NewRegistry()
		nested := newNested()

		assert.NoError(t, registry.Register(nested))
		found, ok := registry.Lookup("Nested")
		assert.True(t, ok)
		assert.Equal(t, nested, found)

		_, ok = registry.Lookup("Missing")
		assert.False(t, ok)
		assert.Equal(t, []string{"Nested"}, registry.Names())
	})

	t.Run("duplicate name test", func(t *testing.T) {
		registry := schema.NewRegistry()
		assert.NoError(t, registry.Register(newNested()))
		assert.ErrorIs(t, registry.Register(newNested()), schema.ErrInvalidSchema)
		assert.ErrorIs(t, registry.Register(nil), schema.ErrInvalidSchema)
	})
}
