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

package model

import (
	"context"
	gotime "time"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/codec"
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

const (
	verbCreate = "create"
	verbRead   = "read"
	verbUpdate = "update"
	verbDelete = "delete"
	verbSet    = "set"
)

// WriteOption configures a create.
type WriteOption func(*writeOptions)

type writeOptions struct {
	mode database.Mode
}

// Exclusive makes a create fail with ErrAlreadyExists when the document
// exists, instead of overwriting it.
func Exclusive() WriteOption {
	return func(o *writeOptions) {
		o.mode = database.ModeCreate
	}
}

// Merge makes a create merge into an existing document instead of
// overwriting it.
func Merge() WriteOption {
	return func(o *writeOptions) {
		o.mode = database.ModeMerge
	}
}

// write is an encoded write, ready to be sent to a database.
type write struct {
	ref  path.DocumentRef
	doc  document.Raw
	mode database.Mode
}

func (m *Model[R, PR]) prepareCreate(key Key, payload codec.Payload, opts ...WriteOption) (*write, error) {
	o := &writeOptions{mode: database.ModeSet}
	for _, opt := range opts {
		opt(o)
	}

	ref, err := m.Ref(key)
	if err != nil {
		return nil, err
	}

	doc, err := codec.EncodeCreate(m.desc, payload)
	if err != nil {
		return nil, err
	}

	return &write{ref: ref, doc: doc, mode: o.mode}, nil
}

func (m *Model[R, PR]) prepareUpdate(key Key, payload codec.Payload) (*write, error) {
	ref, err := m.Ref(key)
	if err != nil {
		return nil, err
	}

	doc, err := codec.EncodeUpdate(m.desc, payload)
	if err != nil {
		return nil, err
	}

	return &write{ref: ref, doc: doc, mode: database.ModeUpdate}, nil
}

func (m *Model[R, PR]) prepareSet(key Key, record codec.Payload) (*write, error) {
	ref, err := m.Ref(key)
	if err != nil {
		return nil, err
	}

	doc, err := codec.Encode(m.desc, record)
	if err != nil {
		return nil, err
	}

	return &write{ref: ref, doc: doc, mode: database.ModeSet}, nil
}

// finishRead decodes the raw snapshot of a read.
func (m *Model[R, PR]) finishRead(snap *document.Snapshot) (*Snapshot[R], error) {
	result := &Snapshot[R]{
		Ref:        snap.Ref,
		Exists:     snap.Exists,
		CreateTime: snap.CreateTime,
		UpdateTime: snap.UpdateTime,
		ReadTime:   snap.ReadTime,
	}
	if !snap.Exists {
		return result, nil
	}

	values, err := codec.Decode(m.desc, snap)
	if err != nil {
		return nil, err
	}

	result.data, err = codec.Unmarshal[R, PR](values)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// done records a finished verb and returns its error.
func (m *Model[R, PR]) done(verb string, key Key, start gotime.Time, err error) error {
	if m.metrics != nil {
		m.metrics.ObserveVerb(verb, m.desc.Name(), gotime.Since(start), err)
	}

	if err != nil {
		m.logger.Debugf("%s %s: %v", verb, key, err)
	} else {
		m.logger.Debugf("%s %s", verb, key)
	}
	return err
}

// Create encodes the creation payload and writes it. By default an existing
// document is overwritten; see Exclusive and Merge.
func (m *Model[R, PR]) Create(
	ctx context.Context,
	db database.Database,
	key Key,
	payload codec.Payload,
	opts ...WriteOption,
) error {
	start := gotime.Now()
	w, err := m.prepareCreate(key, payload, opts...)
	if err != nil {
		return m.done(verbCreate, key, start, err)
	}

	return m.done(verbCreate, key, start, db.Write(ctx, w.ref, w.doc, w.mode))
}

// Read reads the document as a record. A missing document is not an error;
// the returned snapshot reports it.
func (m *Model[R, PR]) Read(ctx context.Context, db database.Database, key Key) (*Snapshot[R], error) {
	start := gotime.Now()
	ref, err := m.Ref(key)
	if err != nil {
		return nil, m.done(verbRead, key, start, err)
	}

	snap, err := db.Read(ctx, ref)
	if err != nil {
		return nil, m.done(verbRead, key, start, err)
	}

	result, err := m.finishRead(snap)
	return result, m.done(verbRead, key, start, err)
}

// Update encodes the update payload and merges the fields it sets into the
// document. It fails with ErrNotFound if the document does not exist.
func (m *Model[R, PR]) Update(ctx context.Context, db database.Database, key Key, payload codec.Payload) error {
	start := gotime.Now()
	w, err := m.prepareUpdate(key, payload)
	if err != nil {
		return m.done(verbUpdate, key, start, err)
	}

	return m.done(verbUpdate, key, start, db.Write(ctx, w.ref, w.doc, w.mode))
}

// Delete deletes the document. Deleting a missing document succeeds.
func (m *Model[R, PR]) Delete(ctx context.Context, db database.Database, key Key) error {
	start := gotime.Now()
	ref, err := m.Ref(key)
	if err != nil {
		return m.done(verbDelete, key, start, err)
	}

	return m.done(verbDelete, key, start, db.Delete(ctx, ref))
}

// Set overwrites the document with the given record as it is, without
// defaults or server timestamps.
func (m *Model[R, PR]) Set(ctx context.Context, db database.Database, key Key, record codec.Payload) error {
	start := gotime.Now()
	w, err := m.prepareSet(key, record)
	if err != nil {
		return m.done(verbSet, key, start, err)
	}

	return m.done(verbSet, key, start, db.Write(ctx, w.ref, w.doc, w.mode))
}
