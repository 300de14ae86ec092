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

package future_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yorkie-team/docmodel/pkg/future"
)

func TestFuture(t *testing.T) {
	t.Run("await result test", func(t *testing.T) {
		f := future.Go(func() (int, error) {
			return 10, nil
		})
		value, err := f.Await(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 10, value)

		// a resolved future can be awaited again
		value, err = f.Await(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 10, value)
	})

	t.Run("await error test", func(t *testing.T) {
		errFailed := errors.New("failed")
		f := future.Resolved(0, errFailed)
		<-f.Done()
		_, err := f.Await(context.Background())
		assert.ErrorIs(t, err, errFailed)
	})

	t.Run("resolve once test", func(t *testing.T) {
		f, resolve := future.New[string]()
		resolve("first", nil)
		resolve("second", nil)
		value, err := f.Await(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "first", value)
	})

	t.Run("cancel await test", func(t *testing.T) {
		f, resolve := future.New[int]()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, context.Canceled)

		resolve(1, nil)
		value, err := f.Await(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, value)
	})

	t.Run("handle test", func(t *testing.T) {
		errFailed := errors.New("failed")
		f := future.Handle(future.Resolved(0, errFailed), func(v int, err error) (string, error) {
			if err != nil {
				return "recovered", nil
			}
			return strconv.Itoa(v), nil
		})
		value, err := f.Await(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "recovered", value)
	})
}
