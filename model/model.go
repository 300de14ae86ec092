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

// Package model binds typed records to documents. A Model pairs the
// descriptor of a record with its Go type and runs the create, read, update,
// delete and set verbs over a database, in a blocking and a non-blocking form
// that share the same encoding and decoding.
package model

import (
	"strings"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/internal/logging"
	"github.com/yorkie-team/docmodel/metrics/prometheus"
	"github.com/yorkie-team/docmodel/pkg/document/codec"
	"github.com/yorkie-team/docmodel/pkg/document/path"
	"github.com/yorkie-team/docmodel/pkg/document/schema"
)

var (
	// ErrNotFound is returned when the document of a read or update does not
	// exist.
	ErrNotFound = database.ErrDocumentNotFound

	// ErrAlreadyExists is returned when an exclusive create finds an existing
	// document.
	ErrAlreadyExists = database.ErrAlreadyExists
)

// Option configures a Model.
type Option func(*options)

type options struct {
	registry *schema.Registry
	metrics  *prometheus.Metrics
	logger   logging.Logger
}

// WithRegistry registers the descriptor in the given registry instead of the
// default one.
func WithRegistry(registry *schema.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithMetrics records the verbs of the model in the given metrics.
func WithMetrics(metrics *prometheus.Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithLogger logs the verbs of the model with the given logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Model binds a descriptor to the record type R. PR is the pointer type of R
// that decodes it.
type Model[R any, PR interface {
	*R
	codec.Decodable
}] struct {
	desc    *schema.Descriptor
	metrics *prometheus.Metrics
	logger  logging.Logger
}

// Register registers the given descriptor and returns the model of R.
func Register[R any, PR interface {
	*R
	codec.Decodable
}](desc *schema.Descriptor, opts ...Option) (*Model[R, PR], error) {
	o := &options{registry: schema.DefaultRegistry()}
	for _, opt := range opts {
		opt(o)
	}

	if desc == nil {
		return nil, &schema.SchemaError{Reason: "nil descriptor"}
	}
	if desc.Location().IsZero() {
		return nil, &schema.SchemaError{Schema: desc.Name(), Reason: "model needs a location"}
	}
	if err := o.registry.Register(desc); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = logging.New("model", logging.NewField("model", desc.Name()))
	}

	return &Model[R, PR]{
		desc:    desc,
		metrics: o.metrics,
		logger:  logger,
	}, nil
}

// MustRegister is like Register but panics if the descriptor cannot be
// registered.
func MustRegister[R any, PR interface {
	*R
	codec.Decodable
}](desc *schema.Descriptor, opts ...Option) *Model[R, PR] {
	m, err := Register[R, PR](desc, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Schema returns the descriptor of this model.
func (m *Model[R, PR]) Schema() *schema.Descriptor {
	return m.desc
}

// Name returns the name of this model.
func (m *Model[R, PR]) Name() string {
	return m.desc.Name()
}

// NewKey returns the key of a new document with a generated ID.
func (m *Model[R, PR]) NewKey(parents ...string) Key {
	return Doc(path.NewID(), parents...)
}

// Ref returns the reference of the document identified by key.
func (m *Model[R, PR]) Ref(key Key) (path.DocumentRef, error) {
	return m.desc.Document(key.ID, key.Parents...)
}

// Key identifies a document of a model: its ID and the IDs of the parent
// documents that fill the location of the model, root first.
type Key struct {
	ID      string
	Parents []string
}

// Doc returns the key of the document with the given ID.
func Doc(id string, parents ...string) Key {
	return Key{ID: id, Parents: parents}
}

// String returns the parent IDs and the ID of this key joined by slashes.
func (k Key) String() string {
	return strings.Join(append(append([]string{}, k.Parents...), k.ID), "/")
}
