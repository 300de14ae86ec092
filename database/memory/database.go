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

// Package memory implements the database interface in memory, for tests and
// short-lived tools.
package memory

import (
	"context"
	"fmt"
	"sync/atomic"
	gotime "time"

	"github.com/hashicorp/go-memdb"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/apply"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// docInfo is a stored document with its metadata.
type docInfo struct {
	Path      string
	Data      document.Raw
	CreatedAt gotime.Time
	UpdatedAt gotime.Time
}

// DB is an in-memory database for testing or temporarily.
type DB struct {
	db     *memdb.MemDB
	closed atomic.Bool
}

// New returns a new in-memory database.
func New() (*DB, error) {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &DB{
		db: memDB,
	}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	d.closed.Store(true)
	return nil
}

// Write writes the given document with the given mode.
func (d *DB) Write(
	_ context.Context,
	ref path.DocumentRef,
	doc document.Raw,
	mode database.Mode,
) error {
	if d.closed.Load() {
		return database.ErrClosed
	}
	if ref.IsZero() {
		return fmt.Errorf("empty document reference: %w", database.ErrInvalidDocument)
	}

	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "id", ref.String())
	if err != nil {
		return fmt.Errorf("find document %s: %w", ref, err)
	}

	var existing *docInfo
	if raw != nil {
		existing = raw.(*docInfo)
	}

	switch {
	case mode == database.ModeCreate && existing != nil:
		return fmt.Errorf("%s: %w", ref, database.ErrAlreadyExists)
	case mode == database.ModeUpdate && existing == nil:
		return fmt.Errorf("%s: %w", ref, database.ErrDocumentNotFound)
	}

	now := gotime.Now().UTC()
	info := &docInfo{
		Path:      ref.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// NOTE: go-memdb returns references to the stored objects, so the stored
	// data is never modified in place; apply.Write builds a new document.
	var data document.Raw
	if existing != nil {
		data = existing.Data
		info.CreatedAt = existing.CreatedAt
	}

	info.Data, err = apply.Write(data, doc, mode, now)
	if err != nil {
		return fmt.Errorf("write %s: %w", ref, err)
	}

	if err := txn.Insert(tblDocuments, info); err != nil {
		return fmt.Errorf("insert document %s: %w", ref, err)
	}

	txn.Commit()
	return nil
}

// Read returns the snapshot of the given document.
func (d *DB) Read(_ context.Context, ref path.DocumentRef) (*document.Snapshot, error) {
	if d.closed.Load() {
		return nil, database.ErrClosed
	}

	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "id", ref.String())
	if err != nil {
		return nil, fmt.Errorf("find document %s: %w", ref, err)
	}

	now := gotime.Now().UTC()
	if raw == nil {
		return document.Missing(ref, now), nil
	}

	info := raw.(*docInfo)
	return &document.Snapshot{
		Ref:        ref,
		Exists:     true,
		Data:       info.Data.DeepCopy(),
		CreateTime: info.CreatedAt,
		UpdateTime: info.UpdatedAt,
		ReadTime:   now,
	}, nil
}

// Delete deletes the given document. Deleting a missing document succeeds.
func (d *DB) Delete(_ context.Context, ref path.DocumentRef) error {
	if d.closed.Load() {
		return database.ErrClosed
	}

	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, "id", ref.String())
	if err != nil {
		return fmt.Errorf("find document %s: %w", ref, err)
	}
	if raw == nil {
		return nil
	}

	if err := txn.Delete(tblDocuments, raw); err != nil {
		return fmt.Errorf("delete document %s: %w", ref, err)
	}

	txn.Commit()
	return nil
}
