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

package document

import (
	"time"

	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// Snapshot is the raw result of reading one document.
type Snapshot struct {
	// Ref is the reference of the document that was read.
	Ref path.DocumentRef

	// Exists is false when no document is stored at Ref.
	Exists bool

	// Data is the stored field mapping in canonical form.
	Data Raw

	// CreateTime is the time the document was first written.
	CreateTime time.Time

	// UpdateTime is the time the document was last written.
	UpdateTime time.Time

	// ReadTime is the time the document was read.
	ReadTime time.Time
}

// Missing returns the snapshot of a document that does not exist.
func Missing(ref path.DocumentRef, readTime time.Time) *Snapshot {
	return &Snapshot{
		Ref:      ref,
		Exists:   false,
		ReadTime: readTime,
	}
}

// ID returns the ID of the document.
func (s *Snapshot) ID() string {
	return s.Ref.ID()
}
