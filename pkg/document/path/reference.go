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

import "fmt"

// CollectionRef is a reference to a collection.
type CollectionRef struct {
	path Path
}

// DocumentRef is a reference to a document.
type DocumentRef struct {
	path Path
}

// Collection returns a reference to the collection of the given segments.
func Collection(segments ...string) (CollectionRef, error) {
	p, err := New(segments...)
	if err != nil {
		return CollectionRef{}, err
	}

	return CollectionFromPath(p)
}

// CollectionFromPath returns a reference to the collection of the given path.
// If the path points to a document, its parent collection is returned.
func CollectionFromPath(p Path) (CollectionRef, error) {
	if p.IsDocument() {
		parent, _ := p.Parent()
		return CollectionRef{path: parent}, nil
	}
	if !p.IsCollection() {
		return CollectionRef{}, fmt.Errorf("%q: %w", p, ErrNotCollection)
	}

	return CollectionRef{path: p}, nil
}

// Document returns a reference to the document of the given segments.
func Document(segments ...string) (DocumentRef, error) {
	p, err := New(segments...)
	if err != nil {
		return DocumentRef{}, err
	}
	if !p.IsDocument() {
		return DocumentRef{}, fmt.Errorf("%q: %w", p, ErrNotDocument)
	}

	return DocumentRef{path: p}, nil
}

// ParseDocument parses the given slash separated string into a DocumentRef.
func ParseDocument(s string) (DocumentRef, error) {
	p, err := Parse(s)
	if err != nil {
		return DocumentRef{}, err
	}
	if !p.IsDocument() {
		return DocumentRef{}, fmt.Errorf("%q: %w", s, ErrNotDocument)
	}

	return DocumentRef{path: p}, nil
}

// Path returns the path of this collection.
func (c CollectionRef) Path() Path {
	return c.path
}

// ID returns the ID of this collection.
func (c CollectionRef) ID() string {
	return c.path.ID()
}

// Document returns a reference to the document of the given ID in this
// collection.
func (c CollectionRef) Document(id string) (DocumentRef, error) {
	p, err := c.path.Child(id)
	if err != nil {
		return DocumentRef{}, err
	}

	return DocumentRef{path: p}, nil
}

// NewDocument returns a reference to a document with a generated ID.
func (c CollectionRef) NewDocument() DocumentRef {
	p, _ := c.path.Child(NewID())
	return DocumentRef{path: p}
}

// Parent returns the document that contains this collection. The second return
// value is false for root collections.
func (c CollectionRef) Parent() (DocumentRef, bool) {
	p, ok := c.path.Parent()
	if !ok {
		return DocumentRef{}, false
	}
	return DocumentRef{path: p}, true
}

// String returns the slash separated form of this collection.
func (c CollectionRef) String() string {
	return c.path.String()
}

// Path returns the path of this document.
func (d DocumentRef) Path() Path {
	return d.path
}

// ID returns the ID of this document.
func (d DocumentRef) ID() string {
	return d.path.ID()
}

// IsZero returns whether this reference points nowhere.
func (d DocumentRef) IsZero() bool {
	return d.path.IsZero()
}

// Collection returns a reference to the sub-collection of the given ID.
func (d DocumentRef) Collection(id string) (CollectionRef, error) {
	p, err := d.path.Child(id)
	if err != nil {
		return CollectionRef{}, err
	}

	return CollectionRef{path: p}, nil
}

// Parent returns the collection that contains this document.
func (d DocumentRef) Parent() CollectionRef {
	p, _ := d.path.Parent()
	return CollectionRef{path: p}
}

// String returns the slash separated form of this document.
func (d DocumentRef) String() string {
	return d.path.String()
}
