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
	"github.com/yorkie-team/docmodel/pkg/future"
)

// The non-blocking verbs encode before they return, so an encoding error is
// already resolved in the returned future and nothing is sent.

// CreateAsync is the non-blocking form of Create.
func (m *Model[R, PR]) CreateAsync(
	ctx context.Context,
	db database.AsyncDatabase,
	key Key,
	payload codec.Payload,
	opts ...WriteOption,
) *future.Future[struct{}] {
	start := gotime.Now()
	w, err := m.prepareCreate(key, payload, opts...)
	if err != nil {
		return future.Resolved(struct{}{}, m.done(verbCreate, key, start, err))
	}

	return m.await(verbCreate, key, start, db.WriteAsync(ctx, w.ref, w.doc, w.mode))
}

// ReadAsync is the non-blocking form of Read.
func (m *Model[R, PR]) ReadAsync(ctx context.Context, db database.AsyncDatabase, key Key) *future.Future[*Snapshot[R]] {
	start := gotime.Now()
	ref, err := m.Ref(key)
	if err != nil {
		return future.Resolved[*Snapshot[R]](nil, m.done(verbRead, key, start, err))
	}

	return future.Handle(db.ReadAsync(ctx, ref), func(snap *document.Snapshot, err error) (*Snapshot[R], error) {
		if err != nil {
			return nil, m.done(verbRead, key, start, err)
		}

		result, err := m.finishRead(snap)
		return result, m.done(verbRead, key, start, err)
	})
}

// UpdateAsync is the non-blocking form of Update.
func (m *Model[R, PR]) UpdateAsync(
	ctx context.Context,
	db database.AsyncDatabase,
	key Key,
	payload codec.Payload,
) *future.Future[struct{}] {
	start := gotime.Now()
	w, err := m.prepareUpdate(key, payload)
	if err != nil {
		return future.Resolved(struct{}{}, m.done(verbUpdate, key, start, err))
	}

	return m.await(verbUpdate, key, start, db.WriteAsync(ctx, w.ref, w.doc, w.mode))
}

// DeleteAsync is the non-blocking form of Delete.
func (m *Model[R, PR]) DeleteAsync(ctx context.Context, db database.AsyncDatabase, key Key) *future.Future[struct{}] {
	start := gotime.Now()
	ref, err := m.Ref(key)
	if err != nil {
		return future.Resolved(struct{}{}, m.done(verbDelete, key, start, err))
	}

	return m.await(verbDelete, key, start, db.DeleteAsync(ctx, ref))
}

// SetAsync is the non-blocking form of Set.
func (m *Model[R, PR]) SetAsync(
	ctx context.Context,
	db database.AsyncDatabase,
	key Key,
	record codec.Payload,
) *future.Future[struct{}] {
	start := gotime.Now()
	w, err := m.prepareSet(key, record)
	if err != nil {
		return future.Resolved(struct{}{}, m.done(verbSet, key, start, err))
	}

	return m.await(verbSet, key, start, db.WriteAsync(ctx, w.ref, w.doc, w.mode))
}

func (m *Model[R, PR]) await(verb string, key Key, start gotime.Time, f *future.Future[struct{}]) *future.Future[struct{}] {
	return future.Handle(f, func(_ struct{}, err error) (struct{}, error) {
		return struct{}{}, m.done(verb, key, start, err)
	})
}
