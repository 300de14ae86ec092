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

// Package database provides the interface of the document databases that
// records are stored in.
package database

import (
	"context"

	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
	"github.com/yorkie-team/docmodel/pkg/errors"
)

var (
	// ErrDocumentNotFound is returned when the document could not be found.
	ErrDocumentNotFound = errors.NotFound("document not found").WithCode("ErrDocumentNotFound")

	// ErrAlreadyExists is returned when an exclusive create finds an existing
	// document.
	ErrAlreadyExists = errors.AlreadyExists("document already exists").WithCode("ErrDocumentAlreadyExists")

	// ErrInvalidDocument is returned when a written document contains a value
	// the database cannot store.
	ErrInvalidDocument = errors.InvalidArgument("invalid document").WithCode("ErrInvalidDocument")

	// ErrClosed is returned when the database is used after Close.
	ErrClosed = errors.Unavailable("database is closed").WithCode("ErrDatabaseClosed")
)

// Mode is the way a write combines with the stored document.
type Mode int

const (
	// ModeSet replaces the stored document, creating it if needed.
	ModeSet Mode = iota

	// ModeMerge merges into the stored document, creating it if needed.
	ModeMerge

	// ModeCreate creates the document and fails with ErrAlreadyExists if it
	// exists.
	ModeCreate

	// ModeUpdate merges into the stored document and fails with
	// ErrDocumentNotFound if it does not exist.
	ModeUpdate
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSet:
		return "set"
	case ModeMerge:
		return "merge"
	case ModeCreate:
		return "create"
	case ModeUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// IsMerge returns whether writes of this mode keep the fields they do not
// mention.
func (m Mode) IsMerge() bool {
	return m == ModeMerge || m == ModeUpdate
}

// Database represents a document database. Documents are written as raw
// field mappings whose values may be transforms resolved by the database.
type Database interface {
	// Write writes the given document with the given mode.
	Write(ctx context.Context, ref path.DocumentRef, doc document.Raw, mode Mode) error

	// Read returns the snapshot of the document. A missing document is not an
	// error: its snapshot does not exist.
	Read(ctx context.Context, ref path.DocumentRef) (*document.Snapshot, error)

	// Delete deletes the document. Deleting a missing document succeeds.
	Delete(ctx context.Context, ref path.DocumentRef) error

	// Close all resources of this database.
	Close() error
}
