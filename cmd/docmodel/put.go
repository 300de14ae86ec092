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
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

var (
	flagData   string
	flagMerge  bool
	flagCreate bool
)

func newPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put [document path] --data [JSON object]",
		Short: "Write a document from a JSON object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagMerge && flagCreate {
				return errors.New("--merge and --create cannot be used together")
			}

			ref, err := path.ParseDocument(args[0])
			if err != nil {
				return err
			}

			doc, err := parseDocument(flagData)
			if err != nil {
				return err
			}

			mode := database.ModeSet
			if flagMerge {
				mode = database.ModeMerge
			} else if flagCreate {
				mode = database.ModeCreate
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if err := db.Write(context.Background(), ref, doc, mode); err != nil {
				return err
			}

			cmd.Printf("%s written (%s)\n", ref, mode)
			return nil
		},
	}
}

// parseDocument parses a JSON object into a document. Integral numbers become
// int64 and nested objects become nested documents, so a merge descends into
// them.
func parseDocument(data string) (document.Raw, error) {
	decoder := json.NewDecoder(bytes.NewBufferString(data))
	decoder.UseNumber()

	var object map[string]any
	if err := decoder.Decode(&object); err != nil {
		return nil, fmt.Errorf("parse --data: %w", err)
	}
	if object == nil {
		return nil, errors.New("--data must be a JSON object")
	}

	return toDocument(object), nil
}

func toDocument(object map[string]any) document.Raw {
	doc := make(document.Raw, len(object))
	for k, v := range object {
		if nested, ok := v.(map[string]any); ok {
			doc[k] = toDocument(nested)
			continue
		}
		doc[k] = toValue(v)
	}
	return doc
}

func toValue(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		f, _ := val.Float64()
		return f
	case []any:
		values := make([]any, len(val))
		for i, e := range val {
			values[i] = toValue(e)
		}
		return values
	case map[string]any:
		values := make(map[string]any, len(val))
		for k, e := range val {
			values[k] = toValue(e)
		}
		return values
	default:
		return v
	}
}

func init() {
	cmd := newPutCmd()
	cmd.Flags().StringVarP(&flagData, "data", "d", "{}", "Fields of the document as a JSON object")
	cmd.Flags().BoolVar(&flagMerge, "merge", false, "Merge into the stored document instead of replacing it")
	cmd.Flags().BoolVar(&flagCreate, "create", false, "Fail if the document already exists")
	rootCmd.AddCommand(cmd)
}
