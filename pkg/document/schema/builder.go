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

	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// Builder declares the fields of a record type.
//
//	desc, err := schema.New("Post").
//		Location("users/{}/posts").
//		Field("id", schema.String()).ID("id").
//		Field("title", schema.String()).
//		Optional("tags", schema.Array(schema.String())).
//		CreateTime("create_time").
//		UpdateTime("update_time").
//		Build()
type Builder struct {
	name       string
	location   string
	fields     []Field
	idField    string
	createTime string
	updateTime string
	errs       []error
}

// New returns a builder of the record type of the given name.
func New(name string) *Builder {
	return &Builder{name: name}
}

// Location sets the storage location template, e.g. "users/{}/posts".
func (b *Builder) Location(template string) *Builder {
	b.location = template
	return b
}

// Field declares a required field.
func (b *Builder) Field(name string, t Type) *Builder {
	b.fields = append(b.fields, Field{Name: name, Type: t})
	return b
}

// Optional declares an optional field.
func (b *Builder) Optional(name string, t Type) *Builder {
	b.fields = append(b.fields, Field{Name: name, Type: t, Optional: true})
	return b
}

// Default sets the default factory of the last declared field.
func (b *Builder) Default(fn func() any) *Builder {
	if len(b.fields) == 0 {
		b.fail("", "default declared before any field")
		return b
	}
	b.fields[len(b.fields)-1].Default = fn
	return b
}

// DefaultValue sets a constant default of the last declared field.
func (b *Builder) DefaultValue(v any) *Builder {
	return b.Default(func() any { return v })
}

// ID marks the declared field of the given name as the document ID.
func (b *Builder) ID(name string) *Builder {
	b.idField = name
	return b
}

// CreateTime declares the server-managed create-time field.
func (b *Builder) CreateTime(name string) *Builder {
	if b.createTime != "" {
		b.fail(name, "create time already declared as %q", b.createTime)
		return b
	}
	b.createTime = name
	b.fields = append(b.fields, Field{
		Name:     name,
		Type:     Timestamp(),
		Optional: true,
		Role:     RoleCreateTime,
	})
	return b
}

// UpdateTime declares the server-managed update-time field.
func (b *Builder) UpdateTime(name string) *Builder {
	if b.updateTime != "" {
		b.fail(name, "update time already declared as %q", b.updateTime)
		return b
	}
	b.updateTime = name
	b.fields = append(b.fields, Field{
		Name:     name,
		Type:     Timestamp(),
		Optional: true,
		Role:     RoleUpdateTime,
	})
	return b
}

func (b *Builder) fail(fieldName, format string, args ...any) {
	b.errs = append(b.errs, &SchemaError{
		Schema: b.name,
		Field:  fieldName,
		Reason: fmt.Sprintf(format, args...),
	})
}

// Build validates the declarations and returns the descriptor.
func (b *Builder) Build() (*Descriptor, error) {
	if b.name == "" {
		b.fail("", "empty schema name")
	}

	d := &Descriptor{
		name:            b.name,
		index:           make(map[string]int, len(b.fields)),
		createTimeField: b.createTime,
		updateTimeField: b.updateTime,
	}

	if b.location != "" {
		loc, err := path.ParseLocation(b.location)
		if err != nil {
			b.fail("", "location: %s", err)
		}
		d.location = loc
	}

	for _, f := range b.fields {
		b.validateField(f)

		if i, ok := d.index[f.Name]; ok {
			prev := d.fields[i]
			if prev.IsServerManaged() || f.IsServerManaged() {
				b.fail(f.Name, "server-managed field also declared as settable")
			} else {
				b.fail(f.Name, "declared twice")
			}
			continue
		}

		d.index[f.Name] = len(d.fields)
		d.fields = append(d.fields, f)
	}

	if b.idField != "" {
		i, ok := d.index[b.idField]
		switch {
		case !ok:
			b.fail(b.idField, "identifier field is not declared")
		case d.fields[i].IsServerManaged():
			b.fail(b.idField, "identifier field cannot be server-managed")
		case d.fields[i].Type.Kind() != KindString:
			b.fail(b.idField, "identifier field must be a string, not %s", d.fields[i].Type)
		case d.fields[i].HasDefault():
			b.fail(b.idField, "identifier field cannot have a default")
		default:
			d.fields[i].Role = RoleID
			d.idField = b.idField
		}
	}

	if b.createTime != "" && b.createTime == b.updateTime {
		b.fail(b.createTime, "used as both create time and update time")
	}

	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	return d, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *Builder) validateField(f Field) {
	if f.Name == "" {
		b.fail("", "empty field name")
		return
	}

	if f.IsServerManaged() && f.HasDefault() {
		b.fail(f.Name, "server-managed field cannot have a default")
	}

	b.validateType(f.Name, f.Type)
}

func (b *Builder) validateType(name string, t Type) {
	switch t.Kind() {
	case KindNested:
		if t.Schema() == nil {
			b.fail(name, "nested type without a schema")
		}
	case KindArray:
		elem, ok := t.Elem()
		if !ok {
			b.fail(name, "array type without an element type")
			return
		}
		b.validateType(name, elem)
	}
}
