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

package schema

import (
	"sort"
	"sync"
)

// Registry maps record type names to their descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*Descriptor)}
}

// Register adds the given descriptor. Names are unique within a registry;
// registering the same descriptor again is a no-op.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return &SchemaError{Reason: "nil descriptor"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.descriptors[d.Name()]; ok {
		if existing == d {
			return nil
		}
		return &SchemaError{Schema: d.Name(), Reason: "already registered"}
	}
	r.descriptors[d.Name()] = d
	return nil
}

// Lookup returns the descriptor registered under the given name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[name]
	return d, ok
}

// Names returns the sorted names of the registered descriptors.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
