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

// Package schema provides descriptors of record types: the ordered fields of a
// record, which of them the database manages, and where records are stored.
package schema

import (
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// Role is the role of a field in a record.
type Role int

// Below are the roles of fields.
const (
	// RoleSettable fields are supplied by the caller.
	RoleSettable Role = iota

	// RoleID is the field holding the document ID. It is never written to the
	// document body.
	RoleID

	// RoleCreateTime is the server-managed time of creation.
	RoleCreateTime

	// RoleUpdateTime is the server-managed time of the last update.
	RoleUpdateTime
)

// Field is a declared field of a record.
type Field struct {
	Name     string
	Type     Type
	Optional bool
	Role     Role

	// Default returns the value used on create when the caller leaves the
	// field absent. For nested fields it returns a payload of the sub-schema.
	Default func() any
}

// IsServerManaged returns whether the database computes this field.
func (f Field) IsServerManaged() bool {
	return f.Role == RoleCreateTime || f.Role == RoleUpdateTime
}

// HasDefault returns whether this field declares a default.
func (f Field) HasDefault() bool {
	return f.Default != nil
}

// Descriptor is the immutable metadata of a record type, shared by every
// record of that type.
type Descriptor struct {
	name     string
	location path.Location
	fields   []Field
	index    map[string]int

	idField         string
	createTimeField string
	updateTimeField string
}

// Name returns the name of the record type.
func (d *Descriptor) Name() string {
	return d.name
}

// Location returns the storage location template. Sub-schemas used only as
// nested types have no location.
func (d *Descriptor) Location() path.Location {
	return d.location
}

// Fields returns the declared fields in declaration order.
func (d *Descriptor) Fields() []Field {
	fields := make([]Field, len(d.fields))
	copy(fields, d.fields)
	return fields
}

// Len returns the number of declared fields.
func (d *Descriptor) Len() int {
	return len(d.fields)
}

// Field returns the declared field of the given name.
func (d *Descriptor) Field(name string) (Field, bool) {
	i, ok := d.index[name]
	if !ok {
		return Field{}, false
	}
	return d.fields[i], true
}

// IDField returns the name of the identifier field, or an empty string.
func (d *Descriptor) IDField() string {
	return d.idField
}

// CreateTimeField returns the name of the create-time field, or an empty
// string.
func (d *Descriptor) CreateTimeField() string {
	return d.createTimeField
}

// UpdateTimeField returns the name of the update-time field, or an empty
// string.
func (d *Descriptor) UpdateTimeField() string {
	return d.updateTimeField
}

// Document returns the storage location of the document of the given ID.
func (d *Descriptor) Document(id string, parents ...string) (path.DocumentRef, error) {
	return d.location.Document(id, parents...)
}
