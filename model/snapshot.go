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
	"fmt"
	"time"

	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// Snapshot is the result of reading a document as a record.
type Snapshot[R any] struct {
	// Ref is the reference of the document that was read.
	Ref path.DocumentRef

	// Exists is false when the document does not exist.
	Exists bool

	// The times reported by the database. Only ReadTime is set when the
	// document does not exist.
	CreateTime time.Time
	UpdateTime time.Time
	ReadTime   time.Time

	data *R
}

// ID returns the ID of the document.
func (s *Snapshot[R]) ID() string {
	return s.Ref.ID()
}

// Data returns the record, or ErrNotFound if the document does not exist.
func (s *Snapshot[R]) Data() (*R, error) {
	if !s.Exists {
		return nil, fmt.Errorf("%s: %w", s.Ref, ErrNotFound)
	}
	return s.data, nil
}
