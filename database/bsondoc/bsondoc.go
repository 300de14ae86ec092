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

// Package bsondoc converts documents to and from BSON for the databases that
// store them as BSON.
package bsondoc

import (
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yorkie-team/docmodel/pkg/document"
)

var (
	tTime  = reflect.TypeOf(time.Time{})
	tArray = reflect.TypeOf([]interface{}{})
	tMap   = reflect.TypeOf(map[string]interface{}{})
)

// Registry is the registry used to marshal and unmarshal documents.
var Registry = NewRegistryBuilder().Build()

// NewRegistryBuilder returns a new registry builder that decodes untyped
// values into the plain Go types of documents: times as time.Time, arrays as
// []interface{} and embedded documents as map[string]interface{}.
func NewRegistryBuilder() *bsoncodec.RegistryBuilder {
	rb := bsoncodec.NewRegistryBuilder()

	bsoncodec.DefaultValueEncoders{}.RegisterDefaultEncoders(rb)
	bsoncodec.DefaultValueDecoders{}.RegisterDefaultDecoders(rb)
	bson.PrimitiveCodecs{}.RegisterPrimitiveCodecs(rb)

	rb.RegisterTypeMapEntry(bsontype.DateTime, tTime)
	rb.RegisterTypeMapEntry(bsontype.Array, tArray)
	rb.RegisterTypeMapEntry(bsontype.EmbeddedDocument, tMap)

	return rb
}

// Marshal encodes v with Registry.
func Marshal(v interface{}) ([]byte, error) {
	return bson.MarshalWithRegistry(Registry, v)
}

// Unmarshal decodes data into v with Registry.
func Unmarshal(data []byte, v interface{}) error {
	return bson.UnmarshalWithRegistry(Registry, data, v)
}

// Normalize converts a decoded BSON value into the canonical form of
// document values: embedded documents become map[string]any, integers int64,
// date times time.Time in UTC and binaries []byte.
func Normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.M:
		return normalizeMap(val)
	case map[string]interface{}:
		return normalizeMap(val)
	case document.Raw:
		return normalizeMap(val)
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = Normalize(e.Value)
		}
		return m
	case primitive.A:
		return normalizeArray(val)
	case []interface{}:
		return normalizeArray(val)
	case primitive.DateTime:
		return val.Time().UTC()
	case time.Time:
		return val.UTC()
	case primitive.Binary:
		data := make([]byte, len(val.Data))
		copy(data, val.Data)
		return data
	case int32:
		return int64(val)
	case int:
		return int64(val)
	default:
		return v
	}
}

// ToRaw converts a decoded BSON document into a document.Raw.
func ToRaw(v interface{}) document.Raw {
	if m, ok := Normalize(v).(map[string]interface{}); ok {
		return m
	}
	return document.Raw{}
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, e := range m {
		out[k] = Normalize(e)
	}
	return out
}

func normalizeArray(a []interface{}) []interface{} {
	out := make([]interface{}, len(a))
	for i, e := range a {
		out[i] = Normalize(e)
	}
	return out
}
