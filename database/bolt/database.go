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

// Package bolt implements the database interface on a bbolt file. Documents
// are stored as BSON under their full path.
package bolt

import (
	"context"
	"errors"
	"fmt"
	gotime "time"

	"go.etcd.io/bbolt"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/apply"
	"github.com/yorkie-team/docmodel/database/bsondoc"
	"github.com/yorkie-team/docmodel/internal/logging"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// record is the stored form of a document.
type record struct {
	Data      document.Raw `bson:"data"`
	CreatedAt gotime.Time  `bson:"created_at"`
	UpdatedAt gotime.Time  `bson:"updated_at"`
}

// DB is a database stored in a bbolt file.
type DB struct {
	config *Config
	db     *bbolt.DB
	bucket []byte
	logger logging.Logger
}

// Dial opens the database file of the given config, creating it if needed.
func Dial(conf *Config) (*DB, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(conf.Path, 0600, &bbolt.Options{
		Timeout: conf.ParseOpenTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", conf.Path, err)
	}

	bucket := []byte(conf.Bucket)
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket %s: %w", conf.Bucket, err)
	}

	logger := logging.New("bolt", logging.NewField("path", conf.Path))
	logger.Debugf("opened bucket %s", conf.Bucket)

	return &DB{
		config: conf,
		db:     db,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Close closes the database file.
func (d *DB) Close() error {
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("close %s: %w", d.config.Path, err)
	}
	return nil
}

// Write writes the given document with the given mode.
func (d *DB) Write(
	_ context.Context,
	ref path.DocumentRef,
	doc document.Raw,
	mode database.Mode,
) error {
	if ref.IsZero() {
		return fmt.Errorf("empty document reference: %w", database.ErrInvalidDocument)
	}

	key := []byte(ref.String())
	err := d.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(d.bucket)

		existing, err := decode(b.Get(key))
		if err != nil {
			return fmt.Errorf("decode %s: %w", ref, err)
		}

		switch {
		case mode == database.ModeCreate && existing != nil:
			return fmt.Errorf("%s: %w", ref, database.ErrAlreadyExists)
		case mode == database.ModeUpdate && existing == nil:
			return fmt.Errorf("%s: %w", ref, database.ErrDocumentNotFound)
		}

		// BSON keeps milliseconds.
		now := gotime.Now().UTC().Truncate(gotime.Millisecond)
		rec := &record{CreatedAt: now, UpdatedAt: now}

		var data document.Raw
		if existing != nil {
			data = existing.Data
			rec.CreatedAt = existing.CreatedAt
		}

		rec.Data, err = apply.Write(data, doc, mode, now)
		if err != nil {
			return fmt.Errorf("write %s: %w", ref, err)
		}

		value, err := bsondoc.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s: %v: %w", ref, err, database.ErrInvalidDocument)
		}

		return b.Put(key, value)
	})

	return d.mapError(err)
}

// Read returns the snapshot of the given document.
func (d *DB) Read(_ context.Context, ref path.DocumentRef) (*document.Snapshot, error) {
	var rec *record
	err := d.db.View(func(tx *bbolt.Tx) error {
		var err error
		rec, err = decode(tx.Bucket(d.bucket).Get([]byte(ref.String())))
		if err != nil {
			return fmt.Errorf("decode %s: %w", ref, err)
		}
		return nil
	})
	if err != nil {
		return nil, d.mapError(err)
	}

	now := gotime.Now().UTC()
	if rec == nil {
		return document.Missing(ref, now), nil
	}

	return &document.Snapshot{
		Ref:        ref,
		Exists:     true,
		Data:       rec.Data,
		CreateTime: rec.CreatedAt,
		UpdateTime: rec.UpdatedAt,
		ReadTime:   now,
	}, nil
}

// Delete deletes the given document. Deleting a missing document succeeds.
func (d *DB) Delete(_ context.Context, ref path.DocumentRef) error {
	return d.mapError(d.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(d.bucket).Delete([]byte(ref.String()))
	}))
}

func (d *DB) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return database.ErrClosed
	}
	if !errors.Is(err, database.ErrAlreadyExists) && !errors.Is(err, database.ErrDocumentNotFound) {
		d.logger.Error(err)
	}
	return err
}

// decode decodes a stored record. It returns nil for a missing record.
func decode(value []byte) (*record, error) {
	if value == nil {
		return nil, nil
	}

	rec := &record{}
	if err := bsondoc.Unmarshal(value, rec); err != nil {
		return nil, err
	}
	rec.Data = bsondoc.ToRaw(rec.Data)
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}
