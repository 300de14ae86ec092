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

package database

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
	"github.com/yorkie-team/docmodel/pkg/future"
)

// DefaultMaxConcurrency is the default number of operations an Async runs at
// the same time.
const DefaultMaxConcurrency = 64

// AsyncDatabase is the non-blocking form of Database. Every call returns
// immediately with a future of its result.
type AsyncDatabase interface {
	WriteAsync(ctx context.Context, ref path.DocumentRef, doc document.Raw, mode Mode) *future.Future[struct{}]
	ReadAsync(ctx context.Context, ref path.DocumentRef) *future.Future[*document.Snapshot]
	DeleteAsync(ctx context.Context, ref path.DocumentRef) *future.Future[struct{}]
}

// Async runs the operations of a Database in the background, with a bound on
// the number of operations in flight.
type Async struct {
	db        Database
	semaphore *semaphore.Weighted
}

// NewAsync creates a new Async over the given database. A maxConcurrency of
// zero or less means DefaultMaxConcurrency.
func NewAsync(db Database, maxConcurrency int64) *Async {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}

	return &Async{
		db:        db,
		semaphore: semaphore.NewWeighted(maxConcurrency),
	}
}

// Database returns the underlying database.
func (a *Async) Database() Database {
	return a.db
}

// WriteAsync writes the given document in the background.
func (a *Async) WriteAsync(
	ctx context.Context,
	ref path.DocumentRef,
	doc document.Raw,
	mode Mode,
) *future.Future[struct{}] {
	return run(ctx, a.semaphore, func() (struct{}, error) {
		return struct{}{}, a.db.Write(ctx, ref, doc, mode)
	})
}

// ReadAsync reads the given document in the background.
func (a *Async) ReadAsync(ctx context.Context, ref path.DocumentRef) *future.Future[*document.Snapshot] {
	return run(ctx, a.semaphore, func() (*document.Snapshot, error) {
		return a.db.Read(ctx, ref)
	})
}

// DeleteAsync deletes the given document in the background.
func (a *Async) DeleteAsync(ctx context.Context, ref path.DocumentRef) *future.Future[struct{}] {
	return run(ctx, a.semaphore, func() (struct{}, error) {
		return struct{}{}, a.db.Delete(ctx, ref)
	})
}

func run[T any](ctx context.Context, sem *semaphore.Weighted, fn func() (T, error)) *future.Future[T] {
	return future.Go(func() (T, error) {
		var zero T
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			return zero, err
		}
		defer sem.Release(1)

		return fn()
	})
}
