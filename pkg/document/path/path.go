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

// Package path provides the locations of documents and collections in a
// document database. A path is a slash separated list of segments where
// segments alternate between collection IDs and document IDs.
package path

import (
	"fmt"
	"strings"

	"github.com/rs/xid"

	"github.com/yorkie-team/docmodel/pkg/errors"
)

const separator = "/"

var (
	// ErrInvalidPath is returned when the given path is malformed.
	ErrInvalidPath = errors.InvalidArgument("invalid path").WithCode("ErrInvalidPath")

	// ErrNotDocument is returned when a path of a document is expected.
	ErrNotDocument = errors.InvalidArgument("path is not a document").WithCode("ErrNotDocument")

	// ErrNotCollection is returned when a path of a collection is expected.
	ErrNotCollection = errors.InvalidArgument("path is not a collection").WithCode("ErrNotCollection")
)

// Path is an immutable list of path segments.
type Path struct {
	segments []string
}

// New creates a new Path from the given segments.
func New(segments ...string) (Path, error) {
	if len(segments) == 0 {
		return Path{}, fmt.Errorf("empty path: %w", ErrInvalidPath)
	}

	for _, segment := range segments {
		if err := validateSegment(segment); err != nil {
			return Path{}, err
		}
	}

	copied := make([]string, len(segments))
	copy(copied, segments)
	return Path{segments: copied}, nil
}

// Parse parses the given slash separated string into a Path. Leading and
// trailing slashes are ignored.
func Parse(s string) (Path, error) {
	trimmed := strings.Trim(s, separator)
	if trimmed == "" {
		return Path{}, fmt.Errorf("%q: %w", s, ErrInvalidPath)
	}

	return New(strings.Split(trimmed, separator)...)
}

func validateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("empty segment: %w", ErrInvalidPath)
	}
	if strings.Contains(segment, separator) {
		return fmt.Errorf("segment %q contains %q: %w", segment, separator, ErrInvalidPath)
	}
	return nil
}

// Segments returns a copy of the segments of this path.
func (p Path) Segments() []string {
	copied := make([]string, len(p.segments))
	copy(copied, p.segments)
	return copied
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// IsZero returns whether this path has no segments.
func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// ID returns the last segment.
func (p Path) ID() string {
	if p.IsZero() {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// RootID returns the first segment.
func (p Path) RootID() string {
	if p.IsZero() {
		return ""
	}
	return p.segments[0]
}

// ParentID returns the segment before the last one, or an empty string for
// root paths.
func (p Path) ParentID() string {
	if len(p.segments) < 2 {
		return ""
	}
	return p.segments[len(p.segments)-2]
}

// IsRoot returns whether this path is a top-level collection.
func (p Path) IsRoot() bool {
	return len(p.segments) == 1
}

// IsDocument returns whether this path points to a document.
func (p Path) IsDocument() bool {
	return !p.IsZero() && len(p.segments)%2 == 0
}

// IsCollection returns whether this path points to a collection.
func (p Path) IsCollection() bool {
	return len(p.segments)%2 == 1
}

// Parent returns the parent path. The second return value is false when this
// path is a root path.
func (p Path) Parent() (Path, bool) {
	if len(p.segments) < 2 {
		return Path{}, false
	}
	return Path{segments: p.segments[:len(p.segments)-1]}, true
}

// Child returns a new path with the given segment appended.
func (p Path) Child(segment string) (Path, error) {
	if err := validateSegment(segment); err != nil {
		return Path{}, err
	}

	segments := make([]string, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	return Path{segments: append(segments, segment)}, nil
}

// String returns the slash separated form of this path.
func (p Path) String() string {
	return strings.Join(p.segments, separator)
}

// NewID returns a new unique document ID.
func NewID() string {
	return xid.New().String()
}
