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

// Package testmodel provides sample records used by tests.
package testmodel

import (
	"time"

	"github.com/yorkie-team/docmodel/pkg/document/codec"
	"github.com/yorkie-team/docmodel/pkg/document/field"
	"github.com/yorkie-team/docmodel/pkg/document/schema"
)

// NestedSchema describes Nested.
var NestedSchema = schema.New("Nested").
	Field("first_field", schema.String()).DefaultValue("first").
	Optional("second_field", schema.Int()).
	UpdateTime("update_time").
	MustBuild()

// SampleSchema describes Sample.
var SampleSchema = schema.New("Sample").
	Location("samples").
	Field("id", schema.String()).ID("id").
	Field("string_value", schema.String()).DefaultValue("default").
	Field("integer_value", schema.Int()).DefaultValue(int64(0)).
	Optional("float_value", schema.Float()).
	Field("list_value", schema.Array(schema.String())).Default(func() any { return []string{} }).
	Optional("map_value", schema.Map()).
	Field("simple_nested", schema.Nested(NestedSchema)).Default(func() any { return NestedCreate{} }).
	CreateTime("create_time").
	UpdateTime("update_time").
	MustBuild()

// CommentSchema describes Comment, stored under a sample.
var CommentSchema = schema.New("Comment").
	Location("samples/{}/comments").
	Field("id", schema.String()).ID("id").
	Field("body", schema.String()).
	Optional("likes", schema.Int()).
	Optional("tags", schema.Array(schema.String())).
	CreateTime("create_time").
	UpdateTime("update_time").
	MustBuild()

// Nested is a record embedded in Sample.
type Nested struct {
	FirstField  string
	SecondField *int64
	UpdateTime  *time.Time
}

// DecodeValues fills this record from decoded values.
func (n *Nested) DecodeValues(v *codec.Values) error {
	n.FirstField = v.String("first_field")
	n.SecondField = v.IntPtr("second_field")
	n.UpdateTime = v.TimePtr("update_time")
	return nil
}

// Field returns the state of the given field.
func (n Nested) Field(name string) field.State {
	switch name {
	case "first_field":
		return field.Set(n.FirstField)
	case "second_field":
		return field.Of(n.SecondField)
	case "update_time":
		return field.Of(n.UpdateTime)
	}
	return nil
}

// NestedCreate is the create payload of Nested.
type NestedCreate struct {
	FirstField  field.Value[string]
	SecondField field.Value[int64]
}

// Field returns the state of the given field.
func (c NestedCreate) Field(name string) field.State {
	switch name {
	case "first_field":
		return c.FirstField
	case "second_field":
		return c.SecondField
	}
	return nil
}

// NestedUpdate is the update payload of Nested.
type NestedUpdate struct {
	FirstField  field.Value[string]
	SecondField field.Value[int64]
}

// Field returns the state of the given field.
func (u NestedUpdate) Field(name string) field.State {
	switch name {
	case "first_field":
		return u.FirstField
	case "second_field":
		return u.SecondField
	}
	return nil
}

// Sample is a record with a field of every common type.
type Sample struct {
	ID           string
	StringValue  string
	IntegerValue int64
	FloatValue   *float64
	ListValue    []string
	MapValue     map[string]any
	SimpleNested Nested
	CreateTime   *time.Time
	UpdateTime   *time.Time
}

// DecodeValues fills this record from decoded values.
func (s *Sample) DecodeValues(v *codec.Values) error {
	s.ID = v.ID()
	s.StringValue = v.String("string_value")
	s.IntegerValue = v.Int("integer_value")
	s.FloatValue = v.FloatPtr("float_value")
	s.ListValue = v.Strings("list_value")
	s.MapValue = v.Map("map_value")
	if nested := v.Nested("simple_nested"); nested != nil {
		if err := s.SimpleNested.DecodeValues(nested); err != nil {
			return err
		}
	}
	s.CreateTime = v.TimePtr("create_time")
	s.UpdateTime = v.TimePtr("update_time")
	return nil
}

// Field returns the state of the given field.
func (s Sample) Field(name string) field.State {
	switch name {
	case "string_value":
		return field.Set(s.StringValue)
	case "integer_value":
		return field.Set(s.IntegerValue)
	case "float_value":
		return field.Of(s.FloatValue)
	case "list_value":
		if s.ListValue == nil {
			return nil
		}
		return field.Set(s.ListValue)
	case "map_value":
		if s.MapValue == nil {
			return nil
		}
		return field.Set(s.MapValue)
	case "simple_nested":
		return field.Set[codec.Payload](s.SimpleNested)
	case "create_time":
		return field.Of(s.CreateTime)
	case "update_time":
		return field.Of(s.UpdateTime)
	}
	return nil
}

// SampleCreate is the create payload of Sample.
type SampleCreate struct {
	StringValue  field.Value[string]
	IntegerValue field.Value[int64]
	FloatValue   field.Value[float64]
	ListValue    field.Value[[]string]
	MapValue     field.Value[map[string]any]
	SimpleNested field.Value[NestedCreate]
}

// Field returns the state of the given field.
func (c SampleCreate) Field(name string) field.State {
	switch name {
	case "string_value":
		return c.StringValue
	case "integer_value":
		return c.IntegerValue
	case "float_value":
		return c.FloatValue
	case "list_value":
		return c.ListValue
	case "map_value":
		return c.MapValue
	case "simple_nested":
		return c.SimpleNested
	}
	return nil
}

// SampleUpdate is the update payload of Sample.
type SampleUpdate struct {
	StringValue  field.Value[string]
	IntegerValue field.Value[int64]
	FloatValue   field.Value[float64]
	ListValue    field.Value[[]string]
	MapValue     field.Value[map[string]any]
	SimpleNested field.Value[NestedUpdate]
	CreateTime   field.Value[time.Time]
	UpdateTime   field.Value[time.Time]
}

// Field returns the state of the given field.
func (u SampleUpdate) Field(name string) field.State {
	switch name {
	case "string_value":
		return u.StringValue
	case "integer_value":
		return u.IntegerValue
	case "float_value":
		return u.FloatValue
	case "list_value":
		return u.ListValue
	case "map_value":
		return u.MapValue
	case "simple_nested":
		return u.SimpleNested
	case "create_time":
		return u.CreateTime
	case "update_time":
		return u.UpdateTime
	}
	return nil
}

// Comment is a record stored under a Sample.
type Comment struct {
	ID         string
	Body       string
	Likes      int64
	Tags       []string
	CreateTime *time.Time
	UpdateTime *time.Time
}

// DecodeValues fills this record from decoded values.
func (c *Comment) DecodeValues(v *codec.Values) error {
	c.ID = v.ID()
	c.Body = v.String("body")
	c.Likes = v.Int("likes")
	c.Tags = v.Strings("tags")
	c.CreateTime = v.TimePtr("create_time")
	c.UpdateTime = v.TimePtr("update_time")
	return nil
}

// CommentWrite is the create and update payload of Comment.
type CommentWrite struct {
	Body  field.Value[string]
	Likes field.Value[int64]
	Tags  field.Value[[]string]
}

// Field returns the state of the given field.
func (w CommentWrite) Field(name string) field.State {
	switch name {
	case "body":
		return w.Body
	case "likes":
		return w.Likes
	case "tags":
		return w.Tags
	}
	return nil
}
