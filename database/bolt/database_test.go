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

package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/bolt"
	"github.com/yorkie-team/docmodel/database/testcases"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

func TestConfig(t *testing.T) {
	t.Run("validate test", func(t *testing.T) {
		// 1. success
		config := bolt.NewConfig("docmodel.db")
		assert.NoError(t, config.Validate())

		// 2. invalid open timeout
		config.OpenTimeout = "1"
		assert.Error(t, config.Validate())

		// 3. empty path
		config.OpenTimeout = "1s"
		config.Path = ""
		assert.Error(t, config.Validate())

		// 4. bucket with a slash
		config.Path = "docmodel.db"
		config.Bucket = "a/b"
		assert.ErrorContains(t, config.Validate(), "Bucket must be a name without slashes")
	})
}

func TestDB(t *testing.T) {
	db, err := bolt.Dial(bolt.NewConfig(filepath.Join(t.TempDir(), "docmodel.db")))
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, db.Close())
	}()

	t.Run("RunWriteModes test", func(t *testing.T) {
		testcases.RunWriteModesTest(t, db)
	})

	t.Run("RunTransforms test", func(t *testing.T) {
		testcases.RunTransformsTest(t, db)
	})

	t.Run("RunNestedMerge test", func(t *testing.T) {
		testcases.RunNestedMergeTest(t, db)
	})

	t.Run("RunDelete test", func(t *testing.T) {
		testcases.RunDeleteTest(t, db)
	})

	t.Run("RunMetadata test", func(t *testing.T) {
		testcases.RunMetadataTest(t, db)
	})

	t.Run("RunAsync test", func(t *testing.T) {
		testcases.RunAsyncTest(t, db)
	})
}

func TestPersistence(t *testing.T) {
	t.Run("reopen database test", func(t *testing.T) {
		ctx := context.Background()
		config := bolt.NewConfig(filepath.Join(t.TempDir(), "docmodel.db"))
		ref, err := path.Document("samples", "s1")
		assert.NoError(t, err)

		db, err := bolt.Dial(config)
		assert.NoError(t, err)
		assert.NoError(t, db.Write(ctx, ref, document.Raw{
			"nested": document.Raw{"a": int64(1)},
		}, database.ModeCreate))
		before, err := db.Read(ctx, ref)
		assert.NoError(t, err)
		assert.NoError(t, db.Close())

		_, err = db.Read(ctx, ref)
		assert.ErrorIs(t, err, database.ErrClosed)

		db, err = bolt.Dial(config)
		assert.NoError(t, err)
		defer func() {
			assert.NoError(t, db.Close())
		}()

		after, err := db.Read(ctx, ref)
		assert.NoError(t, err)
		assert.True(t, after.Exists)
		assert.Equal(t, map[string]any{"a": int64(1)}, after.Data["nested"])
		assert.True(t, before.CreateTime.Equal(after.CreateTime))
	})
}
