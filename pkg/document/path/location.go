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

package path

import (
	"fmt"
	"strings"

	"github.com/yorkie-team/docmodel/pkg/errors"
)

// Placeholder marks a parent document ID in a location template.
const Placeholder = "{}"

// ErrInvalidLocation is returned when a location template is malformed or is
// resolved with the wrong number of parent IDs.
var ErrInvalidLocation = errors.InvalidArgument("invalid location").WithCode("ErrInvalidLocation")

// Location is a template of a collection path such as "users/{}/posts". Each
// placeholder is filled with a parent document ID, root-first.
type Location struct {
	template string
	segments []string
	params   int
}

// ParseLocation parses the given template.
func ParseLocation(template string) (Location, error) {
	trimmed := strings.Trim(template, separator)
	if trimmed == "" {
		return Location{}, fmt.Errorf("empty template: %w", ErrInvalidLocation)
	}

	segments := strings.Split(trimmed, separator)
	if len(segments)%2 == 0 {
		return Location{}, fmt.Errorf("%q does not end with a collection: %w", template, ErrInvalidLocation)
	}

	params := 0
	for i, segment := range segments {
		isDocument := i%2 == 1
		switch {
		case segment == "":
			return Location{}, fmt.Errorf("%q has an empty segment: %w", template, ErrInvalidLocation)
		case isDocument && segment == Placeholder:
			params++
		case segment == Placeholder:
			return Location{}, fmt.Errorf("%q has a placeholder at a collection position: %w", template, ErrInvalidLocation)
		}
	}

	return Location{
		template: trimmed,
		segments: segments,
		params:   params,
	}, nil
}

// MustParseLocation is like ParseLocation but panics on error.
func MustParseLocation(template string) Location {
	l, err := ParseLocation(template)
	if err != nil {
		panic(err)
	}
	return l
}

// IsZero returns whether this location is unset.
func (l Location) IsZero() bool {
	return len(l.segments) == 0
}

// Params returns the number of parent IDs this location needs.
func (l Location) Params() int {
	return l.params
}

// Collection resolves the location into a collection with the given parent IDs.
func (l Location) Collection(parents ...string) (CollectionRef, error) {
	if l.IsZero() {
		return CollectionRef{}, fmt.Errorf("no location: %w", ErrInvalidLocation)
	}
	if len(parents) != l.params {
		return CollectionRef{}, fmt.Errorf(
			"%q needs %d parent IDs, got %d: %w",
			l.template, l.params, len(parents), ErrInvalidLocation,
		)
	}

	segments := make([]string, len(l.segments))
	next := 0
	for i, segment := range l.segments {
		if segment == Placeholder {
			segment = parents[next]
			next++
		}
		segments[i] = segment
	}

	return Collection(segments...)
}

// Document resolves the location into the document of the given ID.
func (l Location) Document(id string, parents ...string) (DocumentRef, error) {
	col, err := l.Collection(parents...)
	if err != nil {
		return DocumentRef{}, err
	}

	return col.Document(id)
}

// String returns the template.
func (l Location) String() string {
	return l.template
}
