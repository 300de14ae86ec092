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

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/pkg/document"
)

// execute runs the CLI with the given arguments and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	flagOutput, flagData, flagMerge, flagCreate = "", "{}", false, false

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestParseDocument(t *testing.T) {
	t.Run("parse document test", func(t *testing.T) {
		doc, err := parseDocument(`{"n": 1, "f": 1.5, "tags": ["a", 2], "nested": {"k": "v"}}`)
		require.NoError(t, err)
		assert.Equal(t, document.Raw{
			"n":      int64(1),
			"f":      1.5,
			"tags":   []any{"a", int64(2)},
			"nested": document.Raw{"k": "v"},
		}, doc)

		_, err = parseDocument(`[1, 2]`)
		assert.Error(t, err)
		_, err = parseDocument(`null`)
		assert.Error(t, err)
	})
}

func TestCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "docmodel.db")
	flags := []string{"--backend", "bolt", "--bolt-path", dbPath, "--log-level", "error"}

	t.Run("put and get test", func(t *testing.T) {
		_, err := execute(t, append([]string{"put", "users/u1", "--data", `{"name": "kim", "age": 30}`}, flags...)...)
		require.NoError(t, err)

		_, err = execute(t, append([]string{"put", "users/u1", "--merge", "--data", `{"city": "seoul"}`}, flags...)...)
		require.NoError(t, err)

		out, err := execute(t, append([]string{"get", "users/u1", "-o", "json"}, flags...)...)
		require.NoError(t, err)

		view := &documentView{}
		require.NoError(t, json.Unmarshal([]byte(out), view))
		assert.Equal(t, "users/u1", view.Path)
		assert.Equal(t, "kim", view.Data["name"])
		assert.Equal(t, "seoul", view.Data["city"])
		assert.EqualValues(t, 30, view.Data["age"])

		out, err = execute(t, append([]string{"get", "users/u1"}, flags...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "seoul")
	})

	t.Run("exclusive put test", func(t *testing.T) {
		_, err := execute(t, append([]string{"put", "users/u2", "--create"}, flags...)...)
		require.NoError(t, err)

		_, err = execute(t, append([]string{"put", "users/u2", "--create"}, flags...)...)
		assert.ErrorIs(t, err, database.ErrAlreadyExists)
	})

	t.Run("delete test", func(t *testing.T) {
		_, err := execute(t, append([]string{"delete", "users/u1"}, flags...)...)
		require.NoError(t, err)
		_, err = execute(t, append([]string{"delete", "users/u1"}, flags...)...)
		require.NoError(t, err)

		_, err = execute(t, append([]string{"get", "users/u1"}, flags...)...)
		assert.ErrorIs(t, err, database.ErrDocumentNotFound)
	})

	t.Run("invalid arguments test", func(t *testing.T) {
		_, err := execute(t, append([]string{"get", "users"}, flags...)...)
		assert.Error(t, err)

		_, err = execute(t, append([]string{"put", "users/u3", "--merge", "--create"}, flags...)...)
		assert.Error(t, err)

		_, err = execute(t, "version", "-o", "xml")
		assert.ErrorContains(t, err, "--output must be 'yaml' or 'json'")
	})

	t.Run("version test", func(t *testing.T) {
		out, err := execute(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "docmodel:")
	})
}
