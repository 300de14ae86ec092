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

// Package future provides a handle to the result of an operation running in
// the background.
package future

import (
	"context"
	"sync"
)

// Future is the pending result of an operation. It resolves exactly once.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// New returns an unresolved future and the function that resolves it. Only
// the first call of resolve has an effect.
func New[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}
	var once sync.Once
	return f, func(value T, err error) {
		once.Do(func() {
			f.value = value
			f.err = err
			close(f.done)
		})
	}
}

// Go runs fn in a new goroutine and returns its future.
func Go[T any](fn func() (T, error)) *Future[T] {
	f, resolve := New[T]()
	go func() {
		resolve(fn())
	}()
	return f
}

// Resolved returns a future that already holds the given result.
func Resolved[T any](value T, err error) *Future[T] {
	f, resolve := New[T]()
	resolve(value, err)
	return f
}

// Done returns a channel closed when the future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done. The operation keeps
// running in the background when ctx is done first.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Handle returns a future resolved with fn applied to the result of f,
// whether f succeeded or not.
func Handle[T, U any](f *Future[T], fn func(T, error) (U, error)) *Future[U] {
	next, resolve := New[U]()
	go func() {
		<-f.done
		resolve(fn(f.value, f.err))
	}()
	return next
}
